// Package database opens the GORM connection backing the sync history.
//
// Connect supports two drivers: sqlite (the default, a local file) and mysql.
// Columns and MissingColumns read a table's live schema so callers can verify
// a migrated table before writing to it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("History disabled", zap.Error(err))
//	}
package database
