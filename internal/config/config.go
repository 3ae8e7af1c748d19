package config

import "github.com/kelseyhightower/envconfig"

// Database holds Turso database configuration. The URL may also be a
// local file: path for development.
type Database struct {
	URL       string `envconfig:"COMPASS_DATABASE_URL" required:"true"`
	AuthToken string `envconfig:"COMPASS_AUTH_TOKEN"`
}

// Server holds configuration for the web server.
type Server struct {
	Database Database
	// DefaultUser namespaces documents when no X-Compass-User header
	// is present. Real identity wiring lives in front of this service.
	DefaultUser string `envconfig:"COMPASS_DEFAULT_USER" default:"scholar"`
}

// LoadServer loads server configuration from environment variables.
func LoadServer() (*Server, error) {
	var cfg Server
	if err := envconfig.Process("", &cfg.Database); err != nil {
		return nil, err
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
