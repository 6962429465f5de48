package config

import (
	"reflect"
	"strings"

	"inventory-reconciler/core/logger"
	"inventory-reconciler/core/metrics"
	"inventory-reconciler/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration shared by every command.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Storage holds configuration for the optional archive bucket.
	Storage storage.Config `mapstructure:"storage"`
	// Metrics holds the optional Prometheus textfile export.
	Metrics metrics.Config `mapstructure:"metrics"`
}

// LoadConfig loads the shared configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if err := Load(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// Load fills out, a pointer to a struct with mapstructure and default tags,
// from environment variables and the .env file in path. Commands embed Config
// with `mapstructure:",squash"` to add their own sections.
func Load(path string, out any) error {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, out, "")

	// Map environment variables to nested keys (e.g. STORAGE_BUCKET -> storage.bucket)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v.Unmarshal(out)
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name, opts, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")

		// Squashed structs share the parent prefix
		if field.Type.Kind() == reflect.Struct && strings.Contains(opts, "squash") {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), prefix)
			continue
		}
		if name == "" {
			continue
		}

		key := name
		if prefix != "" {
			key = prefix + "." + name
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
