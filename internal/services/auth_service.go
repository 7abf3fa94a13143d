package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "task-board-api.com/task-board-api/internal/errors"
	model "task-board-api.com/task-board-api/internal/models"
	repository "task-board-api.com/task-board-api/internal/repositories"
	"task-board-api.com/task-board-api/internal/token"
)

type AuthService struct {
	users      *repository.UserRepository
	refs       *repository.ReferenceRepository
	tokens     *token.Service
	bcryptCost int
}

func NewAuthService(
	users *repository.UserRepository,
	refs *repository.ReferenceRepository,
	tokens *token.Service,
	bcryptCost int,
) *AuthService {
	return &AuthService{
		users:      users,
		refs:       refs,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// Register creates an account with the requested role. Role input is
// case-insensitive and normalized once here, before any lookup; the role
// row must exist and be active.
func (s *AuthService) Register(ctx context.Context, email, password, roleInput string) (*model.User, error) {
	roleCode := strings.ToUpper(strings.TrimSpace(roleInput))
	if roleCode == "" {
		roleCode = model.RoleUser
	}

	role, err := s.refs.FindRole(ctx, roleCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidRole
		}
		return nil, err
	}
	if !role.IsActive {
		return nil, apperrors.ErrInvalidRole
	}

	_, err = s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, apperrors.ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		RoleCode:     role.Code,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues a session token carrying the live
// role code. Unknown email and wrong password produce the identical error.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !user.IsActive {
		return "", nil, apperrors.ErrAccountDeactivated
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.ID, user.RoleCode)
	if err != nil {
		return "", nil, err
	}

	return signed, user, nil
}
