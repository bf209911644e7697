package main

import (
	"fmt"
	"os"

	"github.com/harrison/lsv/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lsv: %v\n", err)
		os.Exit(1)
	}
}
