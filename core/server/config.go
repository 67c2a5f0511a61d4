package server

// Config holds configuration for the reporting HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// LatestRows is the default number of most recent assets shown by the
	// reporting surface when no explicit count is requested.
	LatestRows int `mapstructure:"latest_rows" default:"15"`
}
