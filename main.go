package main

import "task-board-api.com/task-board-api/cmd"

func main() {
	cmd.Execute()
}
