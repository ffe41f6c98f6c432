// Package static serves fixed prices from configuration.
package static

import (
	"context"
	"fmt"

	"github.com/SscSPs/securities_vault/internal/apperrors"
	"github.com/SscSPs/securities_vault/internal/core/domain"
	"github.com/SscSPs/securities_vault/internal/core/ports"
	"github.com/shopspring/decimal"
)

type PriceOracle map[domain.AssetID]decimal.Decimal

var _ ports.PriceOracle = PriceOracle(nil)

func (o PriceOracle) Price(ctx context.Context, asset domain.AssetID) (decimal.Decimal, error) {
	price, ok := o[asset]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no price for %s", apperrors.ErrNotFound, asset)
	}
	return price, nil
}
