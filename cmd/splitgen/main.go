package main

import "github.com/mvp-joe/splitgen/internal/cli"

func main() {
	cli.Execute()
}
