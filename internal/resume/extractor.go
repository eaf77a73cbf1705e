// Package resume converts uploaded résumé documents into plain text for
// the AI evaluator. Extraction is strictly best-effort: every failure
// path degrades to a fixed sentinel string so a single unreadable file
// can never abort a candidate's scoring pass.
package resume

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"hireflow/internal/util"
)

const (
	// FallbackUnreadable is returned when the document cannot be fetched
	// or yields too little text (e.g. a scanned or image-only PDF).
	FallbackUnreadable = "The resume document could not be read. It may be a scanned or image-only file; evaluate the candidate based on the application answers instead."

	// FallbackUnsupported is returned for file types the extractor does
	// not handle.
	FallbackUnsupported = "The resume file format is not supported for text extraction; evaluate the candidate based on the application answers instead."

	// minTextLength is the smallest extraction result treated as real
	// content. Anything shorter is almost certainly an image-only scan.
	minTextLength = 50

	defaultFetchTimeout = 10 * time.Second

	// maxDocumentBytes bounds how much of a résumé is read into memory.
	maxDocumentBytes = 20 << 20
)

// Extractor downloads résumé documents and extracts their text.
type Extractor struct {
	client *http.Client
}

// NewExtractor creates an extractor with the given fetch timeout.
func NewExtractor(fetchTimeout time.Duration) *Extractor {
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}
	return &Extractor{client: &http.Client{Timeout: fetchTimeout}}
}

// Extract fetches the referenced document and returns its plain text.
// It never returns an error: unreadable or unsupported documents come
// back as the fixed fallback sentences.
func (e *Extractor) Extract(ctx context.Context, reference string) string {
	if strings.TrimSpace(reference) == "" {
		return FallbackUnsupported
	}

	switch fileExtension(reference) {
	case ".pdf":
		return e.extractWith(ctx, reference, extractPDFText)
	case ".doc", ".docx":
		return e.extractWith(ctx, reference, extractWordText)
	default:
		log.Debugf("resume %s has an unsupported extension, skipping extraction", reference)
		return FallbackUnsupported
	}
}

// extractWith runs the fetch-then-parse contract shared by both formats.
func (e *Extractor) extractWith(ctx context.Context, reference string, parse func([]byte) (string, error)) string {
	data, err := e.fetch(ctx, reference)
	if err != nil {
		log.Warnf("resume fetch failed for %s: %v", reference, err)
		return FallbackUnreadable
	}

	text, err := parseSafely(data, parse)
	if err != nil {
		log.Warnf("resume text extraction failed for %s: %v", reference, err)
		return FallbackUnreadable
	}

	text = util.CleanDocumentText(text, reference)
	if len(text) < minTextLength {
		log.Warnf("resume %s produced only %d characters of text, treating as unreadable", reference, len(text))
		return FallbackUnreadable
	}
	return text
}

// parseSafely shields the caller from parser panics; the PDF and Word
// libraries both choke on malformed containers.
func parseSafely(data []byte, parse func([]byte) (string, error)) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("document parser panicked: %v", r)
		}
	}()
	return parse(data)
}

// fetch loads the document bytes. References without an http(s) scheme
// are treated as local paths, which the CLI uses when scoring from disk.
func (e *Extractor) fetch(ctx context.Context, reference string) ([]byte, error) {
	if !strings.HasPrefix(reference, "http://") && !strings.HasPrefix(reference, "https://") {
		return readLocalDocument(reference)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reference, nil)
	if err != nil {
		return nil, fmt.Errorf("building fetch request: %w", err)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching document: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, fmt.Errorf("reading document body: %w", err)
	}
	return data, nil
}

// fileExtension returns the lowercased extension of the reference URL's
// path, ignoring any query string.
func fileExtension(reference string) string {
	if u, err := url.Parse(reference); err == nil && u.Path != "" {
		return strings.ToLower(path.Ext(u.Path))
	}
	return strings.ToLower(path.Ext(reference))
}
