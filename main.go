package main

import "toolctl/internal/cli"

func main() {
	cli.Execute()
}
