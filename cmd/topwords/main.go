package main

import "topwords/internal/cli"

func main() {
	cli.Execute()
}
