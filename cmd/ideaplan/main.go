package main

import "github.com/goliatone/go-ideaplan/internal/cli"

func main() {
	cli.Execute()
}
