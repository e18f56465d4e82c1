package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/typedcoll"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of typedcoll",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "typedcoll version %s\n", typedcoll.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
