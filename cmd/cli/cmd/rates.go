package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"printcost/adapters/ratefile"
)

var ratesFile string

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Inspect the active rate tables",
}

var ratesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the merged rate tables as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		estimateRates = ratesFile
		tables, machines, err := loadRates()
		if err != nil {
			return err
		}

		payload := map[string]any{
			"tables":   tables,
			"machines": machines,
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

var ratesMachinesCmd = &cobra.Command{
	Use:   "machines",
	Short: "List the configured machine profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		estimateRates = ratesFile
		_, machines, err := loadRates()
		if err != nil {
			return err
		}

		ids := make([]string, 0, len(machines))
		for id := range machines {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			m := machines[id]
			path := "legacy chart"
			if m.HasPhysics() {
				path = fmt.Sprintf("physics, %.0f sheets/h", m.SpeedSheetsPerHour)
			}
			fmt.Printf("%-10s %-24s %-14s sheet %.0fx%.0fmm (%s)\n",
				id, m.Name, m.Class, m.MaxSheetWidthMM, m.MaxSheetHeightMM, path)
		}
		return nil
	},
}

var ratesCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate an HCL rate file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := ratefile.Load(args[0]); err != nil {
			return err
		}
		fmt.Printf("%s: OK\n", args[0])
		return nil
	},
}

func init() {
	ratesCmd.PersistentFlags().StringVar(&ratesFile, "rates", "", "HCL rate file merged over the built-in rates")
	ratesCmd.AddCommand(ratesShowCmd, ratesMachinesCmd, ratesCheckCmd)
	rootCmd.AddCommand(ratesCmd)
}
