package main

import (
	"fmt"

	"github.com/drowe/disktemps/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the disktemps version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("disktemps " + version.Version)
	},
}
