package main

import "siteforge.dev/cli/internal/interfaces/cli"

func main() {
	cli.Execute()
}
