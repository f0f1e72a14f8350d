package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagemeta"
)

var (
	_ pagemeta.Extractor         = (*LoggingExtractor)(nil)
	_ pagemeta.MetadataExtractor = (*LoggingMetadataExtractor)(nil)
)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   pagemeta.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagemeta.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the resulting title
// and content length.
func (e *LoggingExtractor) Extract(page *pagemeta.Page) (article *pagemeta.Article, err error) {
	defer func(begin time.Time) {
		var (
			title    string
			length   int
			language string
		)
		if article != nil {
			title = article.Title
			length = article.Length
			language = article.Language
		}
		e.logger.Info("extract",
			"url", pageURL(page),
			"title", title,
			"length", length,
			"language", language,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(page)
}

// LoggingMetadataExtractor wraps a MetadataExtractor with logging.
type LoggingMetadataExtractor struct {
	next   pagemeta.MetadataExtractor
	logger *slog.Logger
}

// NewLoggingMetadataExtractor creates a new LoggingMetadataExtractor.
func NewLoggingMetadataExtractor(next pagemeta.MetadataExtractor, logger *slog.Logger) *LoggingMetadataExtractor {
	return &LoggingMetadataExtractor{next: next, logger: logger}
}

// ExtractMetadata delegates to the wrapped extractor and logs the title.
func (e *LoggingMetadataExtractor) ExtractMetadata(page *pagemeta.Page) (m *pagemeta.Metadata, err error) {
	defer func(begin time.Time) {
		var title, charset string
		if m != nil {
			title = m.Title
			charset = m.Charset
		}
		e.logger.Info("extract metadata",
			"url", pageURL(page),
			"title", title,
			"charset", charset,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractMetadata(page)
}

func pageURL(page *pagemeta.Page) string {
	if page == nil {
		return ""
	}
	return page.URL
}
