package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/dinesight/dinesight/internal/generator"
	"github.com/dinesight/dinesight/internal/models"
	"github.com/dinesight/dinesight/internal/repositories"
	"github.com/dinesight/dinesight/internal/repositories/memory"
	"github.com/dinesight/dinesight/internal/repositories/postgres"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Wipes and regenerates the mock restaurant universe",
	Long: `seed deletes all previously generated mock data and repopulates the store
from the built-in restaurant archetypes. The same seed always produces the
same dataset.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		ctx := context.Background()

		store, err := openStore(ctx, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
			os.Exit(1)
		}

		opts := []generator.Option{generator.WithProgress()}

		output, err := generator.DetermineOutput(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error configuring output: %v\n", err)
			os.Exit(1)
		}
		if output != nil {
			defer output.Close()
			opts = append(opts, generator.WithOutput(output))
		}

		if cfg.ParquetExport {
			exporter, err := generator.NewParquetExporter(cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error configuring parquet export: %v\n", err)
				os.Exit(1)
			}
			opts = append(opts, generator.WithParquetExport(exporter))
		}

		gen := generator.New(store, int64(cfg.Seed), opts...)
		summary, err := gen.GenerateAll(ctx, cfg.RestaurantCount, cfg.IncludeMedia)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating mock data: %v\n", err)
			os.Exit(1)
		}

		printJSON(summary)
	},
}

func openStore(ctx context.Context, cfg *models.Config) (*repositories.Store, error) {
	switch cfg.StorageBackend {
	case "postgres":
		return postgres.NewStore(ctx, &cfg.Database)
	case "memory", "":
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.StorageBackend)
	}
}

func init() {
	flags := seedCmd.Flags()
	flags.Int("seed", 42, "Random seed for generation")
	flags.Int("restaurants", 5, "Number of restaurants to generate")
	flags.Bool("include-media", false, "Generate gallery media assets")
	flags.String("storage-backend", "memory", "Where generated rows land: memory or postgres")
	flags.String("output-destination", "none", "Entity event stream: console, file, kafka or none")
	flags.String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	flags.Bool("parquet-export", false, "Export the dataset as parquet files")
	flags.String("export-target", "local", "Parquet export target: local or s3")

	// each flag binds to the underscore key its Config field unmarshals from
	viper.BindPFlag("seed", flags.Lookup("seed"))
	viper.BindPFlag("restaurant_count", flags.Lookup("restaurants"))
	viper.BindPFlag("include_media", flags.Lookup("include-media"))
	viper.BindPFlag("storage_backend", flags.Lookup("storage-backend"))
	viper.BindPFlag("output_destination", flags.Lookup("output-destination"))
	viper.BindPFlag("kafka_broker_list", flags.Lookup("kafka-broker-list"))
	viper.BindPFlag("parquet_export", flags.Lookup("parquet-export"))
	viper.BindPFlag("export_target", flags.Lookup("export-target"))
}
