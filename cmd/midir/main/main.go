package main

import (
	"os"

	"github.com/arthur-debert/midir/cmd/midir"
	"github.com/arthur-debert/midir/pkg/output"
)

func main() {
	rootCmd := midir.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		output.NewRenderer(os.Stderr, output.FormatAuto).Error(err)
		os.Exit(1)
	}
}
