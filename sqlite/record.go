package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/pagemeta"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pagemeta.RecordService = (*RecordService)(nil)

const recordColumns = `id, source_url, title, byline, excerpt, charset, site_name,
	published_time, language, content_hash, extracted_at`

// RecordService implements pagemeta.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// CreateRecord stores a new record. The content hash is computed from html.
func (s *RecordService) CreateRecord(ctx context.Context, record *pagemeta.Record, html string) error {
	if err := record.Validate(); err != nil {
		return err
	}

	record.ID = uuid.New().String()
	record.ExtractedAt = time.Now().UTC().Truncate(time.Second)
	record.ContentHash = hashContent(html)

	m := record.Metadata
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.SourceURL, m.Title, m.Byline, m.Excerpt, m.Charset, m.SiteName,
		m.PublishedTime, record.Language, record.ContentHash, record.ExtractedAt.Format(time.RFC3339))

	return err
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*pagemeta.Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM records WHERE id = ?`, id)

	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pagemeta.Errorf(pagemeta.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter pagemeta.RecordFilter) ([]*pagemeta.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT ` + recordColumns + ` FROM records WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY extracted_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*pagemeta.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// DeleteRecord permanently removes a record.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pagemeta.Errorf(pagemeta.ENOTFOUND, "record not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*pagemeta.Record, error) {
	var r pagemeta.Record
	var extractedAt string

	if err := row.Scan(&r.ID, &r.SourceURL, &r.Metadata.Title, &r.Metadata.Byline,
		&r.Metadata.Excerpt, &r.Metadata.Charset, &r.Metadata.SiteName,
		&r.Metadata.PublishedTime, &r.Language, &r.ContentHash, &extractedAt); err != nil {
		return nil, err
	}

	var err error
	r.ExtractedAt, err = parseRFC3339(extractedAt, "extracted_at")
	if err != nil {
		return nil, err
	}
	return &r, nil
}
