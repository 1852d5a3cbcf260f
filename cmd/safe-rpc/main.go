package main

import (
	"fmt"
	"os"

	"github.com/trebuchet-org/safe-propose/internal/cli"
)

func main() {
	rootCmd := cli.NewRPCRootCmd()
	if err := cli.Execute(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
