package main

import (
	"fmt"
	"os"

	"github.com/saeidalz13/battleship-solo/internal/cli"
)

func main() {
	if err := cli.BuildCLI().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
