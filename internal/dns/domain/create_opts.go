package domain

// CreateRecordOpts holds the parameters for creating a new DNS record.
type CreateRecordOpts struct {
	// Name is the subdomain portion of the record, not including the root
	// domain. Leave empty to create a record on the root domain.
	// Use "*" to create a wildcard record.
	Name string

	// Type is the DNS record type. Required.
	Type RecordType

	// Data is the record value. Required.
	Data string

	// TTL is the time-to-live in seconds.
	// Zero means use the provider default.
	TTL int

	// Priority is used for record types that support it (MX, SRV, etc.).
	Priority int

	// Comment is an optional human-readable annotation.
	Comment string
}

// UpdateRecordOpts holds the parameters for updating an existing DNS record.
// Updates are full replacements, so Type, Name and Data are required.
type UpdateRecordOpts struct {
	// Name is the new subdomain portion.
	Name string

	// Type is the new record type. Required.
	Type RecordType

	// Data is the new record value. Required.
	Data string

	// TTL is the new time-to-live in seconds.
	// Zero means use the provider default.
	TTL int

	// Priority is the new priority value.
	Priority int
}
