package checks

import (
	"net/url"

	"rein-stock/core/rein"
)

// CheckCredentials reports which ERP settings are missing or malformed.
// The secret is never echoed.
func CheckCredentials(cfg rein.Config) Result {
	var missing []string
	if cfg.ClientID == "" {
		missing = append(missing, "rein.client_id")
	}
	if cfg.ClientSecret == "" {
		missing = append(missing, "rein.client_secret")
	}
	if cfg.Database == "" {
		missing = append(missing, "rein.database")
	}
	if u, err := url.Parse(cfg.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		missing = append(missing, "rein.base_url")
	}

	if len(missing) > 0 {
		return Result{Status: StatusError, Detail: "ERP credentials are incomplete", Missing: missing}
	}
	return Result{Status: StatusOK, Detail: cfg.BaseURL}
}
