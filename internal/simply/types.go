package simply

// Record is a single DNS record as represented by the Simply.com API.
type Record struct {
	// ID is the remote-assigned record identifier.
	ID int `json:"record_id"`

	// Name is the record name as reported by the service (e.g. "www" or "@").
	Name string `json:"name"`

	// TTL is the time-to-live in seconds.
	TTL int `json:"ttl"`

	// Data is the record value (IP address, hostname, text, etc.).
	Data string `json:"data"`

	// Type is the DNS record type (A, AAAA, CNAME, MX, TXT, ...).
	Type string `json:"type"`

	// Priority is set for record types that carry one (MX, SRV).
	Priority *int `json:"priority,omitempty"`

	// Comment is an optional annotation stored with the record.
	Comment *string `json:"comment,omitempty"`
}

// listRecordsResponse is the envelope returned by the list endpoint.
type listRecordsResponse struct {
	Status  int      `json:"status"`
	Message string   `json:"message"`
	Records []Record `json:"records"`
}

// CreateRecordRequest is the body for creating a DNS record.
// Type, Name, and Data are required by the remote service; the client does
// not validate them locally.
type CreateRecordRequest struct {
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Data     string  `json:"data"`
	Priority *int    `json:"priority,omitempty"`
	TTL      *int    `json:"ttl,omitempty"`
	Comment  *string `json:"comment,omitempty"`
}

// CreateRecordResponse is the envelope returned by the create endpoint.
type CreateRecordResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`

	// Record holds the identifier(s) assigned to the created record(s).
	Record []CreatedRecord `json:"record,omitempty"`
}

// CreatedRecord carries the identifier of a record created by the service.
type CreatedRecord struct {
	ID int `json:"id"`
}

// UpdateRecordRequest is the body for updating an existing DNS record.
// The update endpoint does not accept a comment field.
type UpdateRecordRequest struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Data     string `json:"data"`
	Priority *int   `json:"priority,omitempty"`
	TTL      *int   `json:"ttl,omitempty"`
}

// UpdateRecordResponse is the envelope returned by the update endpoint.
// The service may omit both fields on success.
type UpdateRecordResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// DeleteRecordResponse is the envelope returned by the delete endpoint.
// It carries no payload beyond the status.
type DeleteRecordResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
