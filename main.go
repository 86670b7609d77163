package main

import "github.com/custodia-labs/readable-cli/internal/cli"

func main() {
	cli.Execute()
}
