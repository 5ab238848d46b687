// Package config loads application settings from the environment.
//
// Values come from environment variables, optionally seeded from a .env file.
// Defaults live in the `default` struct tags of each section and are bound
// reflectively, so every key is also addressable through its environment
// variable (rein.client_secret is REIN_CLIENT_SECRET).
//
// # Sections
//
//   - Server: HTTP port, API key and timeouts
//   - Log: level and encoding
//   - Database: sync history store (sqlite or mysql)
//   - Storage: MinIO/S3 snapshot mirror
//   - Rein: ERP base URL, HMAC credentials, request budget and CDN
//   - Sync: cache path, scheduler interval and mirror prefix
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Rein.BaseURL)
package config
