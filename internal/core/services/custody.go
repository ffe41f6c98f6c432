package services

import (
	"github.com/SscSPs/securities_vault/internal/core/domain"
)

// Custody is one custody account pushed from by several vaults. A vault
// joined to it must not recover an asset that another member manages or
// still holds deposits of.
type Custody struct {
	vaults []*vaultCore
}

// NewCustody creates an empty custody account registry.
func NewCustody() *Custody {
	return &Custody{}
}

func (c *Custody) join(v *vaultCore) {
	if c == nil {
		return
	}
	c.vaults = append(c.vaults, v)
}

func (c *Custody) managedElsewhere(self *vaultCore, asset domain.AssetID) bool {
	if c == nil {
		return false
	}
	for _, v := range c.vaults {
		if v == self {
			continue
		}
		if v.manages(asset) || !v.ledger.TotalOf(asset).IsZero() {
			return true
		}
	}
	return false
}
