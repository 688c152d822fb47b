package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/tmplfill/cmd/tmplfill"
	"github.com/arthur-debert/tmplfill/internal/version"
)

func main() {
	rootCmd := tmplfill.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "TMPLFILL",
		Section: "1",
		Source:  "tmplfill " + version.Version,
		Manual:  "tmplfill manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
