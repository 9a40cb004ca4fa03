package main

import "treasurysoa/internal/cli"

func main() {
	cli.Execute()
}
