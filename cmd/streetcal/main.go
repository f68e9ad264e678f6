package main

import "github.com/jwhitfield/streetcal/internal/cli"

func main() {
	cli.Execute()
}
