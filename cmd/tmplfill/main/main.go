package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/tmplfill/cmd/tmplfill"
	"github.com/arthur-debert/tmplfill/pkg/style"
)

func main() {
	rootCmd := tmplfill.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
