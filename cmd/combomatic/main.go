package main

import "github.com/casey/combomatic/internal/cli"

func main() {
	cli.Execute()
}
