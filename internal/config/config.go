// Package config loads the storefront configuration from config.yaml
// with environment overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full storefront configuration.
type Config struct {
	// Listen is the presentation layer's bind address.
	Listen string `mapstructure:"listen"`

	Store struct {
		// Path is the durable slot database location.
		Path string `mapstructure:"path"`
		// Name appears in order messages and the storefront header.
		Name string `mapstructure:"name"`
		// WhatsAppNumber receives checkout orders.
		WhatsAppNumber string `mapstructure:"whatsapp_number"`
	} `mapstructure:"store"`

	Seed struct {
		// Dir holds CUE seed files; blank means the embedded catalog.
		Dir string `mapstructure:"dir"`
	} `mapstructure:"seed"`
}

// Load reads config.yaml from the working directory or its parent, then
// applies QUICKCART_* environment overrides. Missing files are fine:
// every key has a default.
func Load() (Config, error) {
	viper.SetDefault("listen", "127.0.0.1:8080")
	viper.SetDefault("store.path", "quickcart.db")
	viper.SetDefault("store.name", "Satya General Store")
	viper.SetDefault("store.whatsapp_number", "919876543210")
	viper.SetDefault("seed.dir", "")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	_ = viper.ReadInConfig()

	viper.SetEnvPrefix("quickcart")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.BindEnv("listen", "QUICKCART_LISTEN")
	_ = viper.BindEnv("store.path", "QUICKCART_STORE_PATH")
	_ = viper.BindEnv("store.name", "QUICKCART_STORE_NAME")
	_ = viper.BindEnv("store.whatsapp_number", "QUICKCART_WHATSAPP_NUMBER")
	_ = viper.BindEnv("seed.dir", "QUICKCART_SEED_DIR")

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return c, nil
}
