package main

import "github.com/okale/chainplan/pkg/interfaces/cli/commands"

func main() {
	commands.Execute()
}
