// Package content loads and decodes résumé content documents.
package content

import (
	"context"
	"encoding/json"
	"os"

	"github.com/jonathan/resume-page/internal/fetch"
	"github.com/jonathan/resume-page/internal/schemas"
	"github.com/jonathan/resume-page/internal/types"
	schemafiles "github.com/jonathan/resume-page/schemas"
	"go.uber.org/zap"
)

// DefaultSource is the document name used when none is configured.
const DefaultSource = "content.json"

// Loader reads content documents from local files or http(s) URLs.
// Each call is an independent load: nothing is cached and failures are not retried.
type Loader struct {
	FetchOptions *fetch.Options
	Logger       *zap.Logger
}

// NewLoader creates a loader with default fetch options.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		FetchOptions: fetch.DefaultOptions(),
		Logger:       logger,
	}
}

// Load reads source and decodes it.
func (l *Loader) Load(ctx context.Context, source string) (*types.ResumeDocument, error) {
	data, err := l.Read(ctx, source)
	if err != nil {
		return nil, err
	}
	return Parse(source, data)
}

// Read returns the raw bytes of source.
func (l *Loader) Read(ctx context.Context, source string) ([]byte, error) {
	if source == "" {
		source = DefaultSource
	}

	if fetch.IsURL(source) {
		l.logger().Debug("fetching content", zap.String("url", source))
		result, err := fetch.URL(ctx, source, l.FetchOptions)
		if err != nil {
			return nil, &LoadError{
				Kind:    KindFetch,
				Source:  source,
				Message: "failed to fetch document",
				Cause:   err,
			}
		}
		return result.Body, nil
	}

	l.logger().Debug("reading content", zap.String("path", source))
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, &LoadError{
			Kind:    KindFetch,
			Source:  source,
			Message: "failed to read file",
			Cause:   err,
		}
	}
	return data, nil
}

// Parse decodes data and checks that the required info structure is present.
func Parse(source string, data []byte) (*types.ResumeDocument, error) {
	var doc types.ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{
			Kind:    KindParse,
			Source:  source,
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	if err := schemas.ValidateBytes(schemafiles.Content, data); err != nil {
		return nil, &LoadError{
			Kind:    KindMissingInfo,
			Source:  source,
			Message: "document is missing required info",
			Cause:   err,
		}
	}

	return &doc, nil
}

func (l *Loader) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}
