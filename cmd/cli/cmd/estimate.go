package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"printcost/adapters/ratefile"
	"printcost/core/engine"
	"printcost/core/output"
	"printcost/core/rates"
	"printcost/core/types"
	"printcost/internal/config"
	"printcost/internal/errors"
)

var (
	estimateFile   string
	estimateOutput string
	estimateRates  string
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the cost of a print job",
	Long: `Estimate reads a job specification from a JSON file, validates it, and
prints one cost result per requested quantity.

Example:
  printcost estimate -f job.json
  printcost estimate -f job.json -o json --rates shop-rates.hcl`,
	RunE: runEstimate,
}

func runEstimate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(estimateFile)
	if err != nil {
		return errors.Input("reading specification file: " + err.Error())
	}

	var raw types.RawJobSpecification
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Input("parsing specification file: " + err.Error())
	}

	tables, machines, err := loadRates()
	if err != nil {
		return err
	}

	results, err := engine.New(tables, machines).EstimateRaw(&raw)
	if err != nil {
		if v, ok := errors.AsValidation(err); ok {
			fmt.Fprintln(os.Stderr, "Specification invalid:")
			for _, violation := range v.Violations {
				fmt.Fprintf(os.Stderr, "  - %s\n", violation)
			}
		}
		return err
	}

	format := estimateOutput
	if format == "" {
		format = config.Get().Output.DefaultFormat
	}
	formatter, err := output.For(format)
	if err != nil {
		return err
	}
	if t, ok := formatter.(*output.TableFormatter); ok {
		t.ShowBreakdown = config.Get().Output.ShowBreakdown
	}

	rendered, err := formatter.Format(results)
	if err != nil {
		return err
	}
	fmt.Print(rendered)
	return nil
}

// loadRates returns the rate snapshot and machine set, merging the HCL rate
// file from the --rates flag or the configuration when one is set.
func loadRates() (*rates.RateTables, types.MachineSet, error) {
	path := estimateRates
	if path == "" {
		path = config.Get().Rates.Path
	}
	if path == "" {
		return rates.Default(), rates.DefaultMachines(), nil
	}
	return ratefile.Load(path)
}

func init() {
	estimateCmd.Flags().StringVarP(&estimateFile, "file", "f", "", "job specification JSON file (required)")
	estimateCmd.Flags().StringVarP(&estimateOutput, "output", "o", "", "output format (table, json)")
	estimateCmd.Flags().StringVar(&estimateRates, "rates", "", "HCL rate file merged over the built-in rates")
	_ = estimateCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(estimateCmd)
}
