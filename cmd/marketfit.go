package cmd

import (
	"fmt"
	"os"

	"github.com/dinesight/dinesight/internal/catalog"
	"github.com/dinesight/dinesight/internal/insights"
	"github.com/dinesight/dinesight/internal/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var marketfitCmd = &cobra.Command{
	Use:   "marketfit",
	Short: "Scores product market fit and projects subscription ROI",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		tier, ok := catalog.PricingTiers[cfg.PricingTier]
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown pricing tier %q\n", cfg.PricingTier)
			os.Exit(1)
		}

		report := insights.DefaultMarketFit()
		roi := insights.CalculateROI(cfg.MonthlyRevenue, tier)

		printJSON(struct {
			MarketFit models.MarketFitReport `json:"market_fit"`
			ROI       models.ROIEstimate     `json:"roi"`
		}{report, roi})
	},
}

func init() {
	flags := marketfitCmd.Flags()
	flags.Float64("monthly-revenue", 0, "Current monthly revenue for ROI projection")
	flags.String("pricing-tier", "growth", "Subscription tier: starter, growth or scale")

	viper.BindPFlag("monthly_revenue", flags.Lookup("monthly-revenue"))
	viper.BindPFlag("pricing_tier", flags.Lookup("pricing-tier"))
}
