package cycle

import "strings"

// Config holds configuration for the simulation driver.
type Config struct {
	// Cycles is the number of reconciliation cycles per run.
	Cycles int `mapstructure:"cycles" default:"5"`
	// SeedPerCorp is how many zero-value assets each corporate entity
	// receives when the table starts empty.
	SeedPerCorp int `mapstructure:"seed_per_corp" default:"5"`
	// CorpIDs is the comma-separated set of corporate entities.
	CorpIDs string `mapstructure:"corp_ids" default:"AtlasCorp-A,AtlasCorp-B,AtlasCorp-C"`
}

// Corps returns the configured corporate entities, trimmed, empties dropped.
func (c Config) Corps() []string {
	parts := strings.Split(c.CorpIDs, ",")
	corps := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			corps = append(corps, trimmed)
		}
	}
	return corps
}
