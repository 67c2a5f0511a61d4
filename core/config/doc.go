// Package config provides configuration management for the corporate-web engine.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults declared as struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: reporting HTTP server settings (port, latest-rows window)
//   - Database: MySQL connection details for the DB-backed table store
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Simulation: cycle count, seeding, and corporate entities
//   - Ledger: revenue ledger source (http export, storage object)
//   - Store: persisted table backend (csv, mysql, object)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Simulation.Cycles)
package config
