package dns

import (
	"strings"
	"time"

	"simplyctl/internal/auditlog"
)

// recordAudit writes a best-effort audit entry for a DNS operation. Errors
// opening the repository or saving the entry are silently discarded so that
// audit failures never break the command itself.
func recordAudit(providerName, command string, args []string, domainName, recordID, recordType string, err error, start time.Time) {
	repo, openErr := auditlog.Open()
	if openErr != nil {
		return
	}
	defer repo.Close()

	entry := &auditlog.AuditEntry{
		Timestamp:  start,
		Command:    command,
		Args:       strings.Join(auditlog.SanitizeArgs(args), " "),
		Provider:   providerName,
		Domain:     domainName,
		RecordID:   recordID,
		RecordType: recordType,
		DurationMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		entry.Outcome = auditlog.OutcomeError
		entry.Detail = err.Error()
	} else {
		entry.Outcome = auditlog.OutcomeSuccess
	}
	_ = repo.Save(entry)
}
