package ledger

// Source kinds selectable via configuration.
const (
	SourceHTTP   = "http"
	SourceObject = "object"
	SourceNone   = "none"
)

// Config holds configuration for the revenue ledger source.
type Config struct {
	// Source selects the ledger backend (http, object, none).
	Source string `mapstructure:"source" default:"http"`
	// URL is the CSV export URL used by the http source.
	URL string `mapstructure:"url" default:""`
	// Object is the object name used by the object source.
	Object string `mapstructure:"object" default:"ledger/revenue.csv"`
	// TimeoutSeconds bounds the http fetch.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// IsValidSource checks if the configured source kind is valid.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceHTTP, SourceObject, SourceNone:
		return true
	default:
		return false
	}
}
