package domain

import "context"

// Provider is the interface that DNS providers must implement.
// It covers full DNS record CRUD for a single domain.
type Provider interface {
	// GetDisplayName returns the human-readable provider name (e.g. "Simply.com").
	GetDisplayName() string

	// ListRecords returns all DNS records for the given domain.
	ListRecords(ctx context.Context, domain string) ([]Record, error)

	// CreateRecord creates a new DNS record and returns the created record.
	CreateRecord(ctx context.Context, domain string, opts CreateRecordOpts) (*Record, error)

	// UpdateRecord replaces an existing DNS record by its ID.
	UpdateRecord(ctx context.Context, domain string, id int, opts UpdateRecordOpts) error

	// DeleteRecord deletes a DNS record by its ID.
	DeleteRecord(ctx context.Context, domain string, id int) error
}
