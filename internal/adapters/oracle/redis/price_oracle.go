// Package redis reads asset prices published into Redis by an external feed.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/securities_vault/internal/apperrors"
	"github.com/SscSPs/securities_vault/internal/core/domain"
	"github.com/SscSPs/securities_vault/internal/core/ports"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// PriceOracle looks prices up under <prefix><asset> as decimal strings.
type PriceOracle struct {
	client goredis.UniversalClient
	prefix string
}

var _ ports.PriceOracle = (*PriceOracle)(nil)

func NewPriceOracle(client goredis.UniversalClient, prefix string) *PriceOracle {
	return &PriceOracle{client: client, prefix: prefix}
}

func (o *PriceOracle) key(asset domain.AssetID) string {
	return o.prefix + asset.String()
}

// Price returns apperrors.ErrNotFound when no price is published for asset.
func (o *PriceOracle) Price(ctx context.Context, asset domain.AssetID) (decimal.Decimal, error) {
	raw, err := o.client.Get(ctx, o.key(asset)).Result()
	if errors.Is(err, goredis.Nil) {
		return decimal.Zero, fmt.Errorf("%w: no price for %s", apperrors.ErrNotFound, asset)
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("reading price of %s: %w", asset, err)
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("price of %s is not a decimal: %w", asset, err)
	}
	return price, nil
}

// SetPrice publishes a price for asset.
func (o *PriceOracle) SetPrice(ctx context.Context, asset domain.AssetID, price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
	}
	return o.client.Set(ctx, o.key(asset), price.String(), 0).Err()
}
