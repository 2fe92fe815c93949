package main

import (
	"fmt"
	"os"

	"github.com/movetools/virtual-m8/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersionInfo(version)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
