package models

import "time"

// TimeLayout is the wall-clock format used when persisting creation timestamps.
const TimeLayout = "2006-01-02 15:04:05"

// Asset types that the factory can produce.
const (
	TypeTextContent = "text_content"
	TypeImageDesign = "image_design"
	TypeScript      = "script"
	TypeTemplate    = "template"
	TypeTool        = "tool"
)

// Types lists every asset type, in the order the factory samples from.
var Types = []string{
	TypeTextContent,
	TypeImageDesign,
	TypeScript,
	TypeTemplate,
	TypeTool,
}

// CorpIDs is the default set of corporate entities owning assets.
var CorpIDs = []string{"AtlasCorp-A", "AtlasCorp-B", "AtlasCorp-C"}

// Asset is one row of the corporate asset table.
// AssetID, CorpID, AssetType and CreationTime are fixed at construction;
// only the value fields and the reinvestment counter change afterwards.
type Asset struct {
	// AssetID has the form <2-letter-type-prefix>-<4-digit-number>.
	// Uniqueness is best effort; collisions are tolerated.
	AssetID string `json:"asset_id"`

	// CorpID is the corporate entity owning this asset.
	CorpID string `json:"corp_id"`

	// AssetType is one of the Types constants.
	AssetType string `json:"asset_type"`

	// CreationTime is set once when the factory builds the asset.
	CreationTime time.Time `json:"creation_time"`

	// MonetizedValue is overwritten from the revenue ledger on a match.
	MonetizedValue float64 `json:"monetized_value"`

	// Reinvested counts how many new assets this row has spawned. It never decreases.
	Reinvested int `json:"reinvested"`

	// TransferableValue mirrors MonetizedValue whenever a ledger match exists.
	// Unmatched rows keep their last known value.
	TransferableValue float64 `json:"transferable_value"`
}

// TypePrefix returns the two-letter identifier prefix for an asset type.
// Prefixes are not unique across types ("template" and "text_content" both
// yield "te"); ledger matching tolerates the overlap.
func TypePrefix(assetType string) string {
	if len(assetType) < 2 {
		return assetType
	}
	return assetType[:2]
}

// IsValidType reports whether t is a known asset type.
func IsValidType(t string) bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}
