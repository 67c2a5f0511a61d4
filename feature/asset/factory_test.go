package asset_test

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	"corporate-web/feature/asset"
	"corporate-web/feature/asset/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock returns a clock pinned to a known instant.
func fixedClock() func() time.Time {
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestFactory_Create_IDFormat(t *testing.T) {
	f := asset.NewFactory(rand.New(rand.NewSource(1)), fixedClock())

	for i := 0; i < 100; i++ {
		a := f.Create("AtlasCorp-A", 0)

		parts := strings.SplitN(a.AssetID, "-", 2)
		require.Len(t, parts, 2, "id %q must be prefix-number", a.AssetID)
		assert.Equal(t, models.TypePrefix(a.AssetType), parts[0])

		n, err := strconv.Atoi(parts[1])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1000)
		assert.LessOrEqual(t, n, 9999)
	}
}

func TestFactory_Create_Defaults(t *testing.T) {
	f := asset.NewFactory(rand.New(rand.NewSource(7)), fixedClock())

	a := f.Create("AtlasCorp-B", 0)

	assert.Equal(t, "AtlasCorp-B", a.CorpID)
	assert.True(t, models.IsValidType(a.AssetType))
	assert.Equal(t, time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC), a.CreationTime)
	assert.Zero(t, a.MonetizedValue)
	assert.Zero(t, a.Reinvested)
	assert.Zero(t, a.TransferableValue)
}

func TestFactory_Create_InitialValue(t *testing.T) {
	f := asset.NewFactory(rand.New(rand.NewSource(7)), fixedClock())

	a := f.Create("AtlasCorp-C", 12.5)
	assert.Equal(t, 12.5, a.MonetizedValue)
	// Transferable value starts at zero regardless of the initial value.
	assert.Zero(t, a.TransferableValue)
}

func TestFactory_Create_Deterministic(t *testing.T) {
	// Two factories with the same seed and clock mint identical records.
	f1 := asset.NewFactory(rand.New(rand.NewSource(42)), fixedClock())
	f2 := asset.NewFactory(rand.New(rand.NewSource(42)), fixedClock())

	for i := 0; i < 10; i++ {
		assert.Equal(t, f1.Create("AtlasCorp-A", 0), f2.Create("AtlasCorp-A", 0))
	}
}

func TestFactory_Create_TypeDistribution(t *testing.T) {
	f := asset.NewFactory(rand.New(rand.NewSource(3)), fixedClock())

	seen := make(map[string]int)
	for i := 0; i < 500; i++ {
		a := f.Create("AtlasCorp-A", 0)
		seen[a.AssetType]++
	}

	// Uniform sampling over five types should hit every type in 500 draws.
	for _, typ := range models.Types {
		assert.Greater(t, seen[typ], 0, fmt.Sprintf("type %s never produced", typ))
	}
}

func TestTypePrefix_Overlap(t *testing.T) {
	// template and text_content intentionally share a prefix.
	assert.Equal(t, "te", models.TypePrefix(models.TypeTemplate))
	assert.Equal(t, "te", models.TypePrefix(models.TypeTextContent))
	assert.Equal(t, "im", models.TypePrefix(models.TypeImageDesign))
	assert.Equal(t, "sc", models.TypePrefix(models.TypeScript))
	assert.Equal(t, "to", models.TypePrefix(models.TypeTool))
}
