package dns

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"simplyctl/internal/config"
	"simplyctl/internal/database"
	dnsdomain "simplyctl/internal/dns/domain"
	dnsproviders "simplyctl/internal/dns/providers"
	"simplyctl/internal/services/auth"
)

// --- Mock DNS provider ---

type mockDNSProvider struct {
	displayName   string
	records       []dnsdomain.Record
	createdRecord *dnsdomain.Record

	listRecordsErr error
	createErr      error
	updateErr      error
	deleteErr      error

	lastCreateOpts dnsdomain.CreateRecordOpts
	lastUpdateID   int
	lastDeleteID   int
	listedDomains  []string
}

func (m *mockDNSProvider) GetDisplayName() string { return m.displayName }

func (m *mockDNSProvider) ListRecords(_ context.Context, domain string) ([]dnsdomain.Record, error) {
	m.listedDomains = append(m.listedDomains, domain)
	return m.records, m.listRecordsErr
}

func (m *mockDNSProvider) CreateRecord(_ context.Context, domain string, opts dnsdomain.CreateRecordOpts) (*dnsdomain.Record, error) {
	m.lastCreateOpts = opts
	if m.createErr != nil {
		return nil, m.createErr
	}
	if m.createdRecord != nil {
		return m.createdRecord, nil
	}
	rec := &dnsdomain.Record{
		ID:     999,
		Domain: domain,
		Name:   opts.Name,
		Type:   opts.Type,
		Data:   opts.Data,
	}
	return rec, nil
}

func (m *mockDNSProvider) UpdateRecord(_ context.Context, _ string, id int, _ dnsdomain.UpdateRecordOpts) error {
	m.lastUpdateID = id
	return m.updateErr
}

func (m *mockDNSProvider) DeleteRecord(_ context.Context, _ string, id int) error {
	m.lastDeleteID = id
	return m.deleteErr
}

// registerMockDNSProvider resets the DNS registry and registers a mock provider factory.
func registerMockDNSProvider(t *testing.T, name string, mock *mockDNSProvider) {
	t.Helper()
	dnsproviders.Reset()
	t.Cleanup(dnsproviders.Reset)
	dnsproviders.Register(name, func(store auth.Store) (dnsdomain.Provider, error) {
		return mock, nil
	})
}

// execDNS runs the given dns subcommand args and returns stdout/stderr.
// Config and audit storage are redirected to a temp directory.
func execDNS(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()

	tmp := t.TempDir()
	config.SetPath(filepath.Join(tmp, "config.json"))
	t.Cleanup(config.ResetPath)
	database.SetPath(filepath.Join(tmp, "simplyctl.db"))
	t.Cleanup(database.ResetPath)

	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

// --- list tests ---

func TestListCommand_ListsRecords(t *testing.T) {
	mock := &mockDNSProvider{
		displayName: "Mock",
		records: []dnsdomain.Record{
			{ID: 101, Domain: "example.com", Name: "@", Type: dnsdomain.RecordTypeA, Data: "1.2.3.4", TTL: 600},
			{ID: 102, Domain: "example.com", Name: "www", Type: dnsdomain.RecordTypeCNAME, Data: "example.com", TTL: 600},
		},
	}
	registerMockDNSProvider(t, "mock", mock)

	stdout, stderr := execDNS(t, "list", "example.com", "--provider", "mock")
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}

	for _, want := range []string{"101", "102", "1.2.3.4", "CNAME", "ID", "NAME", "TYPE"} {
		if !contains(stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, stdout)
		}
	}
}

func TestListCommand_EmptyList(t *testing.T) {
	mock := &mockDNSProvider{displayName: "Mock"}
	registerMockDNSProvider(t, "mock", mock)

	stdout, _ := execDNS(t, "list", "example.com", "--provider", "mock")
	if !contains(stdout, "No records found") {
		t.Errorf("expected 'No records found' in output:\n%s", stdout)
	}
}

func TestListCommand_MultipleDomains(t *testing.T) {
	mock := &mockDNSProvider{
		displayName: "Mock",
		records: []dnsdomain.Record{
			{ID: 101, Domain: "example.com", Name: "@", Type: dnsdomain.RecordTypeA, Data: "1.2.3.4", TTL: 600},
		},
	}
	registerMockDNSProvider(t, "mock", mock)

	_, stderr := execDNS(t, "list", "example.com", "another.io", "--provider", "mock")
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}

	listed := make(map[string]bool)
	for _, d := range mock.listedDomains {
		listed[d] = true
	}
	for _, want := range []string{"example.com", "another.io"} {
		if !listed[want] {
			t.Errorf("expected %q to be listed, got %v", want, mock.listedDomains)
		}
	}
}

func TestListCommand_NoDomainNoDefault(t *testing.T) {
	mock := &mockDNSProvider{displayName: "Mock"}
	registerMockDNSProvider(t, "mock", mock)

	_, stderr := execDNS(t, "list", "--provider", "mock")
	if !contains(stderr, "no domain specified") {
		t.Errorf("expected 'no domain specified' in stderr:\n%s", stderr)
	}
}

func TestListCommand_FilterByType(t *testing.T) {
	mock := &mockDNSProvider{
		displayName: "Mock",
		records: []dnsdomain.Record{
			{ID: 101, Type: dnsdomain.RecordTypeA, Data: "1.2.3.4"},
			{ID: 102, Type: dnsdomain.RecordTypeMX, Data: "mail.example.com"},
		},
	}
	registerMockDNSProvider(t, "mock", mock)

	// Uppercase filter
	stdout, _ := execDNS(t, "list", "example.com", "--provider", "mock", "--type", "A")
	if !contains(stdout, "101") {
		t.Errorf("expected record 101 in output:\n%s", stdout)
	}
	if contains(stdout, "102") {
		t.Errorf("expected record 102 to be filtered out:\n%s", stdout)
	}

	// Lowercase filter
	stdout, _ = execDNS(t, "list", "example.com", "--provider", "mock", "--type", "a")
	if !contains(stdout, "101") {
		t.Errorf("expected record 101 in output with lowercase filter:\n%s", stdout)
	}
	if contains(stdout, "102") {
		t.Errorf("expected record 102 to be filtered out with lowercase filter:\n%s", stdout)
	}
}

func TestListCommand_JSONOutput(t *testing.T) {
	mock := &mockDNSProvider{
		displayName: "Mock",
		records: []dnsdomain.Record{
			{ID: 101, Domain: "example.com", Name: "@", Type: dnsdomain.RecordTypeA, Data: "1.2.3.4", TTL: 600},
		},
	}
	registerMockDNSProvider(t, "mock", mock)

	stdout, stderr := execDNS(t, "list", "example.com", "--provider", "mock", "-o", "json")
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	for _, want := range []string{`"id": 101`, `"data": "1.2.3.4"`, `"type": "A"`} {
		if !contains(stdout, want) {
			t.Errorf("expected %q in JSON output:\n%s", want, stdout)
		}
	}
}

func TestListCommand_InvalidOutputFormat(t *testing.T) {
	mock := &mockDNSProvider{displayName: "Mock"}
	registerMockDNSProvider(t, "mock", mock)

	_, stderr := execDNS(t, "list", "example.com", "--provider", "mock", "-o", "yaml")
	if !contains(stderr, "unsupported output format") {
		t.Errorf("expected format error in stderr:\n%s", stderr)
	}
}

func TestListCommand_ProviderError(t *testing.T) {
	mock := &mockDNSProvider{listRecordsErr: fmt.Errorf("network timeout")}
	registerMockDNSProvider(t, "mock", mock)

	_, stderr := execDNS(t, "list", "example.com", "--provider", "mock")
	if !contains(stderr, "network timeout") {
		t.Errorf("expected 'network timeout' in stderr:\n%s", stderr)
	}
}

// --- create tests ---

func TestCreateCommand_CreatesRecord(t *testing.T) {
	mock := &mockDNSProvider{
		displayName: "Mock",
		createdRecord: &dnsdomain.Record{
			ID:     201,
			Domain: "example.com",
			Name:   "www",
			Type:   dnsdomain.RecordTypeA,
			Data:   "5.6.7.8",
		},
	}
	registerMockDNSProvider(t, "mock", mock)

	stdout, stderr := execDNS(t, "create", "example.com",
		"--provider", "mock",
		"--type", "A",
		"--name", "www",
		"--data", "5.6.7.8",
	)
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !contains(stdout, "201") {
		t.Errorf("expected record ID '201' in output:\n%s", stdout)
	}
	if mock.lastCreateOpts.Type != dnsdomain.RecordTypeA || mock.lastCreateOpts.Data != "5.6.7.8" {
		t.Errorf("unexpected create opts: %+v", mock.lastCreateOpts)
	}
}

func TestCreateCommand_MissingRequiredFlags(t *testing.T) {
	mock := &mockDNSProvider{displayName: "Mock"}
	registerMockDNSProvider(t, "mock", mock)

	// Missing --data
	_, stderr := execDNS(t, "create", "example.com", "--provider", "mock", "--type", "A")
	if !contains(stderr, "data") {
		t.Errorf("expected 'data' flag error in stderr:\n%s", stderr)
	}
}

func TestCreateCommand_ProviderError(t *testing.T) {
	mock := &mockDNSProvider{createErr: fmt.Errorf("duplicate record")}
	registerMockDNSProvider(t, "mock", mock)

	_, stderr := execDNS(t, "create", "example.com",
		"--provider", "mock",
		"--type", "A",
		"--data", "1.2.3.4",
	)
	if !contains(stderr, "duplicate record") {
		t.Errorf("expected 'duplicate record' in stderr:\n%s", stderr)
	}
}

// --- update tests ---

func TestUpdateCommand_UpdatesRecord(t *testing.T) {
	mock := &mockDNSProvider{displayName: "Mock"}
	registerMockDNSProvider(t, "mock", mock)

	stdout, stderr := execDNS(t, "update", "example.com", "101",
		"--provider", "mock",
		"--type", "A",
		"--data", "9.9.9.9",
	)
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !contains(stdout, "101") {
		t.Errorf("expected record ID '101' in output:\n%s", stdout)
	}
	if mock.lastUpdateID != 101 {
		t.Errorf("lastUpdateID = %d, want 101", mock.lastUpdateID)
	}
}

func TestUpdateCommand_InvalidID(t *testing.T) {
	mock := &mockDNSProvider{displayName: "Mock"}
	registerMockDNSProvider(t, "mock", mock)

	_, stderr := execDNS(t, "update", "example.com", "abc",
		"--provider", "mock",
		"--type", "A",
		"--data", "1.1.1.1",
	)
	if !contains(stderr, "invalid record id") {
		t.Errorf("expected 'invalid record id' in stderr:\n%s", stderr)
	}
}

func TestUpdateCommand_ProviderError(t *testing.T) {
	mock := &mockDNSProvider{updateErr: fmt.Errorf("record not found")}
	registerMockDNSProvider(t, "mock", mock)

	_, stderr := execDNS(t, "update", "example.com", "999",
		"--provider", "mock",
		"--type", "A",
		"--data", "1.1.1.1",
	)
	if !contains(stderr, "record not found") {
		t.Errorf("expected 'record not found' in stderr:\n%s", stderr)
	}
}

// --- delete tests ---

func TestDeleteCommand_DeletesRecord(t *testing.T) {
	mock := &mockDNSProvider{displayName: "Mock"}
	registerMockDNSProvider(t, "mock", mock)

	stdout, stderr := execDNS(t, "delete", "example.com", "101", "--provider", "mock", "--yes")
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !contains(stdout, "101") {
		t.Errorf("expected record ID '101' in output:\n%s", stdout)
	}
	if mock.lastDeleteID != 101 {
		t.Errorf("lastDeleteID = %d, want 101", mock.lastDeleteID)
	}
}

func TestDeleteCommand_InvalidID(t *testing.T) {
	mock := &mockDNSProvider{displayName: "Mock"}
	registerMockDNSProvider(t, "mock", mock)

	_, stderr := execDNS(t, "delete", "example.com", "abc", "--provider", "mock", "--yes")
	if !contains(stderr, "invalid record id") {
		t.Errorf("expected 'invalid record id' in stderr:\n%s", stderr)
	}
}

func TestDeleteCommand_ProviderError(t *testing.T) {
	mock := &mockDNSProvider{deleteErr: fmt.Errorf("record not found")}
	registerMockDNSProvider(t, "mock", mock)

	_, stderr := execDNS(t, "delete", "example.com", "999", "--provider", "mock", "--yes")
	if !contains(stderr, "record not found") {
		t.Errorf("expected 'record not found' in stderr:\n%s", stderr)
	}
}

func TestDeleteCommand_UnknownProvider(t *testing.T) {
	dnsproviders.Reset()
	t.Cleanup(dnsproviders.Reset)

	_, stderr := execDNS(t, "delete", "example.com", "101", "--provider", "nonexistent", "--yes")
	if !contains(stderr, "unknown provider") {
		t.Errorf("expected 'unknown provider' in stderr:\n%s", stderr)
	}
}

// --- helpers ---

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
