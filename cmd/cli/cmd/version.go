package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"printcost/api"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the printcost version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("printcost %s\n", api.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
