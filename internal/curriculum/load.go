package curriculum

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
)

var (
	// ErrDataUnavailable means the data file could not be read or fetched.
	ErrDataUnavailable = errors.New("learning path data unavailable")
	// ErrDataMalformed means the data was read but is not a valid document.
	ErrDataMalformed = errors.New("learning path data malformed")
)

// rawDocument mirrors Document with pointers so that missing required
// fields can be told apart from empty ones.
type rawDocument struct {
	Meta     *Meta      `json:"meta"`
	Sections *[]Section `json:"sections"`
}

// Decode parses a learning-path document from r and checks the fields the
// renderers depend on.
func Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrDataUnavailable, err)
	}
	return Parse(data)
}

// Parse decodes and validates a document held in memory.
func Parse(data []byte) (*Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataMalformed, err)
	}
	if raw.Meta == nil {
		return nil, fmt.Errorf("%w: missing meta", ErrDataMalformed)
	}
	if raw.Sections == nil {
		return nil, fmt.Errorf("%w: missing sections", ErrDataMalformed)
	}

	doc := &Document{Meta: *raw.Meta, Sections: *raw.Sections}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Validate checks required fields and section id uniqueness.
func (d *Document) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: no document", ErrDataMalformed)
	}
	seen := make(map[string]bool, len(d.Sections))
	for i, s := range d.Sections {
		if s.ID == "" {
			return fmt.Errorf("%w: section %d has no id", ErrDataMalformed, i)
		}
		if s.Title == "" {
			return fmt.Errorf("%w: section %q has no title", ErrDataMalformed, s.ID)
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: duplicate section id %q", ErrDataMalformed, s.ID)
		}
		seen[s.ID] = true
		for j, it := range s.Items {
			if it.Title == "" {
				return fmt.Errorf("%w: item %d of section %q has no title", ErrDataMalformed, j, s.ID)
			}
		}
	}
	return nil
}

// Load reads and parses the document stored at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Fetch retrieves the document over HTTP. Transport failures and non-2xx
// responses are reported as ErrDataUnavailable.
func Fetch(ctx context.Context, client *http.Client, url string) (*Document, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: HTTP %d: %s", ErrDataUnavailable, resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return Decode(resp.Body)
}

// Open loads a document from a local path or, for http(s) sources, a URL.
func Open(ctx context.Context, source string) (*Document, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return Fetch(ctx, nil, source)
	}
	return Load(source)
}

// Save writes doc to path as indented JSON. The file is replaced atomically
// so a concurrent reader never sees a partial document.
func Save(path string, doc *Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling document: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".learning-path-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// Empty returns a document with no sections, used when no data file exists yet.
func Empty() *Document {
	return &Document{Sections: []Section{}}
}
