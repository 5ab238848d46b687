package rein

// Config holds configuration for the REIN ERP API.
type Config struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string `mapstructure:"base_url" default:"https://api.rein.net.br"`
	// ClientID identifies this integration to the API.
	ClientID string `mapstructure:"client_id" default:""`
	// ClientSecret is the shared HMAC key. It is never sent over the wire.
	ClientSecret string `mapstructure:"client_secret" default:""`
	// Database is the tenant name included in every signature.
	Database string `mapstructure:"database" default:""`
	// TimeoutSeconds is the per-request HTTP timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
	// RequestsPerMinute is the request budget shared by every caller of the client.
	RequestsPerMinute int `mapstructure:"requests_per_minute" default:"60"`
	// CDNBase is the root of the public image CDN.
	CDNBase string `mapstructure:"cdn_base" default:"https://cdn.rein.net.br/app/core"`
	// CDNVersion is the application version segment of image URLs.
	CDNVersion string `mapstructure:"cdn_version" default:"6.5.4"`
}
