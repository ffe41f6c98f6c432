package domain

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/SscSPs/securities_vault/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Address identifies an account or an asset contract.
// Canonical form is "0x" followed by 40 lower-case hex characters.
type Address string

// AssetID identifies a fungible asset by its contract address.
type AssetID = Address

// ZeroAddress is the null identity. It is never a valid account or asset.
const ZeroAddress Address = "0x0000000000000000000000000000000000000000"

// ParseAddress validates and normalises a hex address.
// The zero address and empty strings are rejected with apperrors.ErrValidation.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: address is empty", apperrors.ErrValidation)
	}
	raw := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(raw) != 40 {
		return "", fmt.Errorf("%w: address %q must be 20 bytes of hex", apperrors.ErrValidation, s)
	}
	if _, err := hex.DecodeString(raw); err != nil {
		return "", fmt.Errorf("%w: address %q is not hex", apperrors.ErrValidation, s)
	}
	addr := Address("0x" + strings.ToLower(raw))
	if addr == ZeroAddress {
		return "", fmt.Errorf("%w: zero address", apperrors.ErrValidation)
	}
	return addr, nil
}

// IsZero reports whether a is empty or the zero address.
func (a Address) IsZero() bool {
	return a == "" || a == ZeroAddress
}

func (a Address) String() string {
	return string(a)
}

// ValidateAmount checks that amount is a positive whole number of base units.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	if !amount.IsInteger() {
		return fmt.Errorf("%w: amount %s is not a whole number of base units", apperrors.ErrValidation, amount.String())
	}
	return nil
}

// ValidateLimit checks that a deposit limit is a non-negative whole number.
func ValidateLimit(limit decimal.Decimal) error {
	if limit.IsNegative() {
		return fmt.Errorf("%w: limit must not be negative", apperrors.ErrValidation)
	}
	if !limit.IsInteger() {
		return fmt.Errorf("%w: limit %s is not a whole number of base units", apperrors.ErrValidation, limit.String())
	}
	return nil
}
