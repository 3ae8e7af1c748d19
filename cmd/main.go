package main

import "github.com/emiliopalmerini/compass/internal/cli"

func main() {
	cli.Execute()
}
