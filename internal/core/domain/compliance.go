package domain

// Partition is an opaque label segregating groups of investors.
type Partition string

// DefaultPartition is assigned on whitelisting when an account has none.
const DefaultPartition Partition = "default"

// ComplianceStatus is the compliance view of a single account.
type ComplianceStatus struct {
	Account     Address   `json:"account"`
	Whitelisted bool      `json:"whitelisted"`
	Partition   Partition `json:"partition,omitempty"`
}
