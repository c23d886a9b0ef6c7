package main

import "github.com/sadopc/fittrack/internal/cli"

func main() {
	cli.Execute()
}
