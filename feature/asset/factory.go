package asset

import (
	"fmt"
	"math/rand"
	"time"

	"corporate-web/feature/asset/models"
)

// Factory constructs new asset records. Randomness and the clock are
// injected so construction is deterministic under test.
type Factory struct {
	rng *rand.Rand
	now func() time.Time
}

// NewFactory creates a factory. A nil rng falls back to a time-seeded
// source; a nil now falls back to time.Now.
func NewFactory(rng *rand.Rand, now func() time.Time) *Factory {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &Factory{rng: rng, now: now}
}

// Create builds a new asset owned by corpID with the given initial
// monetized value. The type is sampled uniformly from models.Types and
// the identifier is <prefix>-<1000..9999>. Identifiers are not checked
// for collisions.
func (f *Factory) Create(corpID string, initialValue float64) models.Asset {
	assetType := models.Types[f.rng.Intn(len(models.Types))]
	id := fmt.Sprintf("%s-%d", models.TypePrefix(assetType), 1000+f.rng.Intn(9000))

	return models.Asset{
		AssetID:           id,
		CorpID:            corpID,
		AssetType:         assetType,
		CreationTime:      f.now(),
		MonetizedValue:    initialValue,
		Reinvested:        0,
		TransferableValue: 0,
	}
}
