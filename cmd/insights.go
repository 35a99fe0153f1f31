package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dinesight/dinesight/internal/insights"
	"github.com/dinesight/dinesight/internal/models"
	"github.com/spf13/cobra"
)

var insightsInputFile string

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Generates ranked marketing insights for a restaurant menu",
	Long: `insights reads a menu context document (menu, sales history, competitor and
trend data) and prints the ranked recommendations the analyzers produce for
it. Analyzers that lack the context they need simply contribute nothing.`,
	Run: func(cmd *cobra.Command, args []string) {
		if insightsInputFile == "" {
			fmt.Fprintln(os.Stderr, "Error: --input is required")
			os.Exit(1)
		}

		raw, err := os.ReadFile(insightsInputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
			os.Exit(1)
		}

		var data models.MenuInsightData
		if err := json.Unmarshal(raw, &data); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing input file: %v\n", err)
			os.Exit(1)
		}

		engine := insights.NewDefaultEngine()
		results := engine.GenerateComprehensiveInsights(context.Background(), &data)
		printJSON(results)
	},
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding output: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	insightsCmd.Flags().StringVar(&insightsInputFile, "input", "", "Path to a menu context JSON file")
}
