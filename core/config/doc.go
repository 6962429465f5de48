// Package config provides configuration management for the inventory reconciler.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// section.
//
// # Configuration Structure
//
// The Config struct holds the sections shared by every command:
//   - Log: logging level and format (LOG_LEVEL, LOG_FORMAT)
//   - Storage: MinIO/S3 archive of reconciled files (STORAGE_ENABLED, STORAGE_ENDPOINT, ...)
//   - Metrics: Prometheus textfile written after each run (METRICS_TEXTFILE)
//
// Commands add their own sections by embedding Config with
// `mapstructure:",squash"` and calling Load.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Bucket)
package config
