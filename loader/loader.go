// Package loader fetches a call export and parses it into call records.
package loader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/nish-b/found-call-explorer/model"
)

// StdinSource reads the export from standard input.
const StdinSource = "-"

// Loader retrieves and parses a call export.
type Loader struct {
	Client *http.Client
	Stdin  io.Reader
	Logger *zap.Logger
}

// New returns a Loader using the default HTTP client and os.Stdin.
func New(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{Client: http.DefaultClient, Stdin: os.Stdin, Logger: logger}
}

// Load fetches source and parses it. source is a file path, an http(s) URL,
// or "-" for stdin. Failures are *FetchError or *ParseError. Unset fields
// of l fall back to the defaults New uses.
func (l *Loader) Load(ctx context.Context, source string) ([]model.CallRecord, error) {
	logger := l.logger()
	data, err := l.fetch(ctx, source)
	if err != nil {
		logger.Warn("fetch failed", zap.String("source", source), zap.Error(err))
		return nil, &FetchError{Source: source, Err: err}
	}
	logger.Debug("fetched source", zap.String("source", source), zap.Int("bytes", len(data)))

	records, err := ParseCSV(bytes.NewReader(data))
	if err != nil {
		logger.Warn("parse failed", zap.String("source", source), zap.Error(err))
		return nil, &ParseError{Source: source, Line: parseLine(err), Err: err}
	}
	logger.Info("loaded call records", zap.String("source", source), zap.Int("records", len(records)))
	return records, nil
}

func (l *Loader) fetch(ctx context.Context, source string) ([]byte, error) {
	switch {
	case source == "":
		return nil, fmt.Errorf("no source given")
	case source == StdinSource:
		stdin := l.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		return io.ReadAll(stdin)
	case isURL(source):
		return l.fetchURL(ctx, source)
	default:
		return os.ReadFile(source)
	}
}

func (l *Loader) fetchURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func (l *Loader) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}

func isURL(source string) bool {
	s := strings.ToLower(source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
