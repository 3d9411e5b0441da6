package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceDir   string   `mapstructure:"service_dir"`
	OutputFile   string   `mapstructure:"output_file"`
	Format       string   `mapstructure:"format"`
	Title        string   `mapstructure:"title"`
	CategoryFile string   `mapstructure:"category_file"`
	Exclude      []string `mapstructure:"exclude"`
}

var AppConfig Config

// Load populates AppConfig from defaults, an optional .env file and
// SVCDOCS_* environment variables (environment wins).
func Load() error {
	// .env file is optional, so we don't fail if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("service_dir", "internal/service")
	viper.SetDefault("output_file", "service_documentation.html")
	viper.SetDefault("format", "html")
	viper.SetDefault("title", "Service Layer Documentation")
	viper.SetDefault("category_file", "")
	viper.SetDefault("exclude", []string{})

	viper.SetEnvPrefix("SVCDOCS")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.Unmarshal(&AppConfig); err != nil {
		return fmt.Errorf("unable to decode config: %w", err)
	}

	return nil
}
