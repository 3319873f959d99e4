package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"revcast/internal/forecast"
	"revcast/internal/httpapi"
)

var simulateFile string

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a single simulation from a JSON request file (or stdin) and print the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		var input []byte
		var err error
		if simulateFile == "" || simulateFile == "-" {
			input, err = io.ReadAll(os.Stdin)
		} else {
			input, err = os.ReadFile(simulateFile)
		}
		if err != nil {
			return fmt.Errorf("failed to read request: %w", err)
		}

		var req httpapi.SimulationRequest
		if err := json.Unmarshal(input, &req); err != nil {
			return fmt.Errorf("failed to parse request: %w", err)
		}

		resolved, verr := req.Validate(cfg)
		if verr != nil {
			return fmt.Errorf("%s: %s", verr.Code, verr.Message)
		}

		engine := forecast.NewEngine(cfg.HistogramBuckets)
		result := engine.Run(resolved.Opportunities, forecast.Params{
			NumSimulations:  resolved.NumSimulations,
			TimeHorizonDays: resolved.TimeHorizonDays,
			RevenueTargets:  resolved.RevenueTargets,
			Today:           time.Now(),
		})

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	},
}

func init() {
	simulateCmd.Flags().StringVarP(&simulateFile, "file", "f", "", "path to a JSON simulation request ('-' for stdin)")
	rootCmd.AddCommand(simulateCmd)
}
