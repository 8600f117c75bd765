package main

import (
	"fmt"
	"os"

	"github.com/bjaus/picofmt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "picofmt:", err)
		os.Exit(1)
	}
}
