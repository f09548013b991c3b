package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"simplyctl/internal/dns/domain"
	"simplyctl/internal/services/auth"
	"simplyctl/internal/simply"
)

const (
	// SimplyAccountStore is the keychain entry holding the account number.
	SimplyAccountStore = "simply-account"

	// SimplyAPIKeyStore is the keychain entry holding the API key.
	SimplyAPIKeyStore = "simply-apikey"
)

// Compile-time check that SimplyProvider satisfies domain.Provider.
var _ domain.Provider = (*SimplyProvider)(nil)

// SimplyProvider implements domain.Provider using the Simply.com API v2.
type SimplyProvider struct {
	client *simply.Client
}

// NewSimplyProvider creates a SimplyProvider with the given credentials.
func NewSimplyProvider(account, apiKey string, opts ...simply.Option) *SimplyProvider {
	return &SimplyProvider{
		client: simply.New(account, apiKey, opts...),
	}
}

// RegisterSimply registers the Simply.com provider factory with the DNS registry.
// It reads two separate keychain entries: simply-account and simply-apikey.
func RegisterSimply() {
	Register("simply", func(store auth.Store) (domain.Provider, error) {
		account, err := store.GetToken(SimplyAccountStore)
		if err != nil {
			return nil, fmt.Errorf("simply auth: account not found (run 'simplyctl auth login'): %w", err)
		}
		apiKey, err := store.GetToken(SimplyAPIKeyStore)
		if err != nil {
			return nil, fmt.Errorf("simply auth: api key not found (run 'simplyctl auth login'): %w", err)
		}
		return NewSimplyProvider(account, apiKey), nil
	})
}

// GetDisplayName returns the human-readable provider name.
func (p *SimplyProvider) GetDisplayName() string {
	return "Simply.com"
}

// ListRecords returns all DNS records for the given domain.
func (p *SimplyProvider) ListRecords(ctx context.Context, domainName string) ([]domain.Record, error) {
	records, err := p.client.ListDNSRecords(ctx, domainName)
	if err != nil {
		return nil, mapSimplyError(err)
	}

	result := make([]domain.Record, 0, len(records))
	for _, r := range records {
		result = append(result, toDomainRecord(domainName, r))
	}
	return result, nil
}

// CreateRecord creates a new DNS record and returns the created record.
func (p *SimplyProvider) CreateRecord(ctx context.Context, domainName string, opts domain.CreateRecordOpts) (*domain.Record, error) {
	req := simply.CreateRecordRequest{
		Type: string(opts.Type),
		Name: opts.Name,
		Data: opts.Data,
	}
	if opts.TTL > 0 {
		ttl := opts.TTL
		req.TTL = &ttl
	}
	if opts.Priority > 0 {
		prio := opts.Priority
		req.Priority = &prio
	}
	if opts.Comment != "" {
		comment := opts.Comment
		req.Comment = &comment
	}

	resp, err := p.client.CreateDNSRecord(ctx, domainName, req)
	if err != nil {
		return nil, mapSimplyError(err)
	}
	if len(resp.Record) == 0 {
		return nil, fmt.Errorf("simply: create succeeded but no record id returned")
	}

	return &domain.Record{
		ID:       resp.Record[0].ID,
		Domain:   domainName,
		Name:     opts.Name,
		Type:     opts.Type,
		Data:     opts.Data,
		TTL:      opts.TTL,
		Priority: opts.Priority,
		Comment:  opts.Comment,
	}, nil
}

// UpdateRecord replaces an existing DNS record by its ID.
func (p *SimplyProvider) UpdateRecord(ctx context.Context, domainName string, id int, opts domain.UpdateRecordOpts) error {
	req := simply.UpdateRecordRequest{
		Type: string(opts.Type),
		Name: opts.Name,
		Data: opts.Data,
	}
	if opts.TTL > 0 {
		ttl := opts.TTL
		req.TTL = &ttl
	}
	if opts.Priority > 0 {
		prio := opts.Priority
		req.Priority = &prio
	}

	if _, err := p.client.UpdateDNSRecord(ctx, domainName, id, req); err != nil {
		return mapSimplyError(err)
	}
	return nil
}

// DeleteRecord deletes a DNS record by its ID.
func (p *SimplyProvider) DeleteRecord(ctx context.Context, domainName string, id int) error {
	if _, err := p.client.DeleteDNSRecord(ctx, domainName, id); err != nil {
		return mapSimplyError(err)
	}
	return nil
}

// toDomainRecord converts an API record to the domain model.
func toDomainRecord(domainName string, r simply.Record) domain.Record {
	rec := domain.Record{
		ID:     r.ID,
		Domain: domainName,
		Name:   r.Name,
		Type:   domain.RecordType(r.Type),
		Data:   r.Data,
		TTL:    r.TTL,
	}
	if r.Priority != nil {
		rec.Priority = *r.Priority
	}
	if r.Comment != nil {
		rec.Comment = *r.Comment
	}
	return rec
}

// mapSimplyError converts API errors to domain sentinels where recognisable.
func mapSimplyError(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *simply.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s", domain.ErrUnauthorized, apiErr.Message)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", domain.ErrNotFound, apiErr.Message)
		}
	}
	return err
}
