package ports

import (
	"context"

	"github.com/SscSPs/securities_vault/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AssetGateway moves an external fungible asset in and out of custody.
// Both calls are all-or-nothing: a returned error means nothing moved.
// Implementations may call back into the ledger while a transfer is in flight.
type AssetGateway interface {
	// Pull transfers amount of asset from the owner into custody (transfer-from semantics).
	Pull(ctx context.Context, asset domain.AssetID, from domain.Address, amount decimal.Decimal) error

	// Push transfers amount of asset from custody to the recipient.
	Push(ctx context.Context, asset domain.AssetID, to domain.Address, amount decimal.Decimal) error
}

// PriceOracle reports the unit price of an asset.
type PriceOracle interface {
	Price(ctx context.Context, asset domain.AssetID) (decimal.Decimal, error)
}
