package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by the release build via -ldflags.
var version = "devel"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the convlint version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("convlint", version)
		},
	}
}
