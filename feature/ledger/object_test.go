package ledger_test

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"corporate-web/core/storage/mocks"
	"corporate-web/feature/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestObjectSource_Fetch(t *testing.T) {
	client := new(mocks.Client)
	body := io.NopCloser(strings.NewReader("asset_id,monetized_value\nim-3000,4\n"))
	client.On("GetObject", mock.Anything, "corporate-web", "ledger/revenue.csv", mock.Anything).
		Return(body, nil)

	src := ledger.NewObjectSource(client, "corporate-web", "ledger/revenue.csv")
	l, err := src.Fetch(context.Background())
	require.NoError(t, err)

	v, ok := l.Value("im-3000")
	assert.True(t, ok)
	assert.Equal(t, 4.0, v)
	client.AssertExpectations(t)
}

func TestObjectSource_Fetch_Error(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "corporate-web", "ledger/revenue.csv", mock.Anything).
		Return(nil, fmt.Errorf("bucket unreachable"))

	src := ledger.NewObjectSource(client, "corporate-web", "ledger/revenue.csv")
	_, err := src.Fetch(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bucket unreachable")
}
