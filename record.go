package pagemeta

import (
	"context"
	"time"
)

// Record is a stored extraction result for a single page.
type Record struct {
	ID          string    `json:"id" yaml:"id"`
	SourceURL   string    `json:"sourceUrl" yaml:"sourceUrl"`
	Metadata    Metadata  `json:"metadata" yaml:"metadata"`
	Language    string    `json:"language,omitempty" yaml:"language,omitempty"`
	ContentHash string    `json:"contentHash" yaml:"contentHash"`
	ExtractedAt time.Time `json:"extractedAt" yaml:"extractedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.SourceURL == "" {
		return Errorf(EINVALID, "record source URL required")
	}
	return nil
}

// RecordService represents a service for managing extraction records.
type RecordService interface {
	// CreateRecord stores a new record. ID, ContentHash and ExtractedAt
	// are assigned by the service.
	CreateRecord(ctx context.Context, record *Record, html string) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecord permanently removes a record.
	// Returns ENOTFOUND if the record does not exist.
	DeleteRecord(ctx context.Context, id string) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
