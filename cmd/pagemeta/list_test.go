package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/pagemeta"
	main "github.com/fwojciec/pagemeta/cmd/pagemeta"
	"github.com/fwojciec/pagemeta/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists records with ID, date, title and URL", func(t *testing.T) {
		t.Parallel()

		var gotFilter pagemeta.RecordFilter
		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, filter pagemeta.RecordFilter) ([]*pagemeta.Record, error) {
				gotFilter = filter
				return []*pagemeta.Record{
					{
						ID:          "rec-123",
						SourceURL:   "https://example.com/a",
						Metadata:    pagemeta.Metadata{Title: "First Story"},
						ExtractedAt: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
					},
					{
						ID:          "rec-456",
						SourceURL:   "https://example.com/b",
						ExtractedAt: time.Date(2025, 1, 16, 11, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: records,
		}

		err := (&main.ListCmd{Limit: 10}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 10, gotFilter.Limit)
		assert.Nil(t, gotFilter.SourceURL)
		assert.Equal(t,
			"rec-123  2025-01-15  First Story  https://example.com/a\n"+
				"rec-456  2025-01-16  (untitled)  https://example.com/b\n",
			stdout.String())
	})

	t.Run("filters by source URL", func(t *testing.T) {
		t.Parallel()

		var gotFilter pagemeta.RecordFilter
		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, filter pagemeta.RecordFilter) ([]*pagemeta.Record, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Records: records,
		}

		err := (&main.ListCmd{URL: "https://example.com/a"}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter.SourceURL)
		assert.Equal(t, "https://example.com/a", *gotFilter.SourceURL)
	})

	t.Run("shows helpful message when no records exist", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, _ pagemeta.RecordFilter) ([]*pagemeta.Record, error) {
				return []*pagemeta.Record{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: records,
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No records found")
	})

	t.Run("returns error when lookup fails", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, _ pagemeta.RecordFilter) ([]*pagemeta.Record, error) {
				return nil, errors.New("database error")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Records: records,
		}

		err := (&main.ListCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
