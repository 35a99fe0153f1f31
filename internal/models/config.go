package models

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

type Config struct {
	Seed            int  `mapstructure:"seed"`
	RestaurantCount int  `mapstructure:"restaurant_count"`
	IncludeMedia    bool `mapstructure:"include_media"`

	// storage_backend selects where generated rows land: "postgres" or "memory".
	StorageBackend string         `mapstructure:"storage_backend"`
	Database       DatabaseConfig `mapstructure:"database"`

	// Optional entity event stream emitted while seeding.
	OutputDestination string `mapstructure:"output_destination"` // console, file, kafka, none
	OutputPath        string `mapstructure:"output_path"`
	OutputFolder      string `mapstructure:"output_folder"`
	KafkaBrokerList   string `mapstructure:"kafka_broker_list"`
	SessionTimeoutMs  int    `mapstructure:"session_timeout_ms"`

	// Optional parquet dataset export, local or cloud.
	ParquetExport bool               `mapstructure:"parquet_export"`
	ExportTarget  string             `mapstructure:"export_target"` // local, s3
	CloudStorage  CloudStorageConfig `mapstructure:"cloud_storage"`

	// marketfit command inputs.
	MonthlyRevenue float64 `mapstructure:"monthly_revenue"`
	PricingTier    string  `mapstructure:"pricing_tier"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv()

	viper.SetDefault("seed", 42)
	viper.SetDefault("restaurant_count", 5)
	viper.SetDefault("storage_backend", "memory")
	viper.SetDefault("output_destination", "none")
	viper.SetDefault("output_folder", "data")
	viper.SetDefault("export_target", "local")
	viper.SetDefault("pricing_tier", "growth")

	if err := viper.ReadInConfig(); err != nil {
		// config file is optional; flags and env cover the defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(dc *mapstructure.DecoderConfig) {
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(dc.DecodeHook)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
