package auditlog

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func tempRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "simplyctl.db")
	r, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestSave_AssignsIDAndTimestamp(t *testing.T) {
	r := tempRepo(t)

	entry := &AuditEntry{
		Command:    "simplyctl dns list",
		Outcome:    OutcomeSuccess,
		DurationMs: 12,
	}

	if err := r.Save(entry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if entry.ID == 0 {
		t.Error("expected ID to be assigned")
	}
	if entry.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestList(t *testing.T) {
	r := tempRepo(t)

	for i := range 3 {
		entry := &AuditEntry{
			Command:   "simplyctl dns list",
			Outcome:   OutcomeSuccess,
			Timestamp: time.Now().UTC().Add(time.Duration(i) * time.Second),
		}
		if err := r.Save(entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	entries, err := r.List(2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Timestamp.Before(entries[1].Timestamp) {
		t.Error("expected entries sorted by timestamp descending")
	}
}

func TestListByDomain(t *testing.T) {
	r := tempRepo(t)

	entries := []*AuditEntry{
		{Command: "simplyctl dns create", Domain: "example.com", Outcome: OutcomeSuccess},
		{Command: "simplyctl dns list", Domain: "another.io", Outcome: OutcomeSuccess},
		{Command: "simplyctl dns delete", Domain: "example.com", Outcome: OutcomeError},
	}
	for _, entry := range entries {
		if err := r.Save(entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	domainEntries, err := r.ListByDomain("example.com", 10)
	if err != nil {
		t.Fatalf("ListByDomain failed: %v", err)
	}
	if len(domainEntries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(domainEntries))
	}
	for _, entry := range domainEntries {
		if entry.Domain != "example.com" {
			t.Errorf("expected domain 'example.com', got %q", entry.Domain)
		}
	}
}

func TestPrune(t *testing.T) {
	r := tempRepo(t)

	oldEntry := &AuditEntry{
		Command:   "simplyctl dns list",
		Outcome:   OutcomeSuccess,
		Timestamp: time.Now().UTC().Add(-48 * time.Hour),
	}
	recentEntry := &AuditEntry{
		Command:   "simplyctl dns list",
		Outcome:   OutcomeSuccess,
		Timestamp: time.Now().UTC().Add(-1 * time.Hour),
	}

	if err := r.Save(oldEntry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := r.Save(recentEntry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	removed, err := r.Prune(24 * time.Hour)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}

	remaining, err := r.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("expected 1 remaining entry, got %d", len(remaining))
	}
}

func TestSanitizeArgs(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "separate value",
			in:   []string{"auth", "login", "--api-key", "secret123"},
			want: []string{"auth", "login", "--api-key", "<redacted>"},
		},
		{
			name: "equals form",
			in:   []string{"auth", "login", "--api-key=secret123"},
			want: []string{"auth", "login", "--api-key=<redacted>"},
		},
		{
			name: "trailing flag without value",
			in:   []string{"auth", "login", "--api-key"},
			want: []string{"auth", "login", "--api-key", "<redacted>"},
		},
		{
			name: "non-sensitive args untouched",
			in:   []string{"dns", "create", "example.com", "--type", "A", "--data", "1.2.3.4"},
			want: []string{"dns", "create", "example.com", "--type", "A", "--data", "1.2.3.4"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SanitizeArgs(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("SanitizeArgs(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
