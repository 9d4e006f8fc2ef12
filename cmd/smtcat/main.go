package main

import "github.com/trail-of-forks/smtcat/internal/cli"

func main() {
	cli.Execute()
}
