package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/mock"
	pageslog "github.com/fwojciec/pagemeta/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs title, length and language", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(_ *pagemeta.Page) (*pagemeta.Article, error) {
				return &pagemeta.Article{
					Metadata: pagemeta.Metadata{Title: "Big Story"},
					Length:   42,
					Language: "en",
				}, nil
			},
		}

		extractor := pageslog.NewLoggingExtractor(inner, logger)
		article, err := extractor.Extract(&pagemeta.Page{URL: "https://example.com/story"})

		require.NoError(t, err)
		assert.Equal(t, "Big Story", article.Title)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "url=https://example.com/story")
		assert.Contains(t, output, "title=\"Big Story\"")
		assert.Contains(t, output, "length=42")
		assert.Contains(t, output, "language=en")
	})

	t.Run("logs error for nil page", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(_ *pagemeta.Page) (*pagemeta.Article, error) {
				return nil, pagemeta.Errorf(pagemeta.EINVALID, "page required")
			},
		}

		extractor := pageslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.Extract(nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "message=page required")
	})
}

func TestLoggingMetadataExtractor_ExtractMetadata(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.MetadataExtractor{
		ExtractMetadataFn: func(_ *pagemeta.Page) (*pagemeta.Metadata, error) {
			return &pagemeta.Metadata{Title: "Story", Charset: "utf-8"}, nil
		},
	}

	extractor := pageslog.NewLoggingMetadataExtractor(inner, logger)
	m, err := extractor.ExtractMetadata(&pagemeta.Page{URL: "https://example.com/"})

	require.NoError(t, err)
	assert.Equal(t, "Story", m.Title)
	output := buf.String()
	assert.Contains(t, output, "msg=\"extract metadata\"")
	assert.Contains(t, output, "title=Story")
	assert.Contains(t, output, "charset=utf-8")
}
