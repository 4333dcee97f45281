package main

import "content-templates/internal/cli"

func main() {
	cli.Execute()
}
