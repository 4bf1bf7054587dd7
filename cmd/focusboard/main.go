package main

import (
	"fmt"
	"os"

	"github.com/sandeepkv93/focusboard/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "focusboard failed: %v\n", err)
		os.Exit(1)
	}
}
