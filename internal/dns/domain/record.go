package domain

// RecordType represents a DNS record type.
type RecordType string

const (
	RecordTypeA     RecordType = "A"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeAlias RecordType = "ALIAS"
	RecordTypeTXT   RecordType = "TXT"
	RecordTypeNS    RecordType = "NS"
	RecordTypeMX    RecordType = "MX"
	RecordTypeSRV   RecordType = "SRV"
	RecordTypeTLSA  RecordType = "TLSA"
	RecordTypeCAA   RecordType = "CAA"
	RecordTypeSSHFP RecordType = "SSHFP"
	RecordTypeDS    RecordType = "DS"
	RecordTypeLOC   RecordType = "LOC"
)

// Record represents a single DNS record.
type Record struct {
	// ID is the provider-assigned record identifier.
	ID int `json:"id"`

	// Domain is the root domain this record belongs to (e.g. "example.com").
	Domain string `json:"domain"`

	// Name is the record name relative to the domain, as returned by the
	// provider (e.g. "www", or "@" for a root record).
	Name string `json:"name"`

	// Type is the DNS record type (A, AAAA, CNAME, etc.).
	Type RecordType `json:"type"`

	// Data is the record value (IP address, hostname, text, etc.).
	Data string `json:"data"`

	// TTL is the time-to-live in seconds.
	TTL int `json:"ttl"`

	// Priority is used for record types that support it (MX, SRV, etc.).
	// Zero means not applicable.
	Priority int `json:"priority"`

	// Comment is an optional human-readable annotation on the record.
	Comment string `json:"comment"`
}
