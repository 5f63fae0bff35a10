package site

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Fixture is a serialised bundle of static fallback strings, keyed by
// language and then by dotted content path. It backs the middle step of the
// resolution chain when the live document has no text for a path.
type Fixture struct {
	Translations map[string]map[string]string `json:"translations"`
}

//go:embed testdata/translations_fixture.json
var defaultFixtureData embed.FS

// DefaultFixture loads the built-in fallback strings.
func DefaultFixture() (*Fixture, error) {
	data, err := defaultFixtureData.ReadFile("testdata/translations_fixture.json")
	if err != nil {
		return nil, fmt.Errorf("site: read embedded fixture: %w", err)
	}
	return decodeFixture(bytes.NewReader(data))
}

// Loader reads fallback fixtures from disk, for deployments that override the
// built-in strings.
type Loader struct {
	path string
}

// NewLoader constructs a loader that reads the provided file path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load parses the configured fixture file.
func (l *Loader) Load(ctx context.Context) (*Fixture, error) {
	if l == nil || l.path == "" {
		return nil, errors.New("site: loader path cannot be empty")
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("site: open fixture %q: %w", l.path, err)
	}
	defer file.Close()

	return decodeFixture(file)
}

func decodeFixture(r io.Reader) (*Fixture, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	var fx Fixture
	if err := decoder.Decode(&fx); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if fx.Translations == nil {
		fx.Translations = map[string]map[string]string{}
	}
	return &fx, nil
}
