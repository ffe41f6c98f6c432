package static

import (
	"context"
	"testing"

	"github.com/SscSPs/securities_vault/internal/apperrors"
	"github.com/SscSPs/securities_vault/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPriceOracle(t *testing.T) {
	asset := domain.AssetID("0x000000000000000000000000000000000000aaaa")
	oracle := PriceOracle{asset: decimal.NewFromInt(3)}

	price, err := oracle.Price(context.Background(), asset)
	assert.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromInt(3)))

	_, err = oracle.Price(context.Background(), "0x000000000000000000000000000000000000bbbb")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
