package main

import "github.com/kanbananza/landing/cmd/kanbananza/cmd"

func main() {
	cmd.Execute()
}
