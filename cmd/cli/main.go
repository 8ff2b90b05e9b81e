package main

import (
	"github.com/headcheck/headcheck/internal/cli"
)

func main() {
	cli.Execute()
}
