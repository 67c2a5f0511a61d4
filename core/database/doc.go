// Package database handles database connections for the MySQL-backed
// asset table store.
//
// It provides a wrapper around GORM that configures the MySQL connection
// (encoded credentials, connection/IO timeouts, pool limits) from the
// application configuration and verifies it with an initial ping.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
