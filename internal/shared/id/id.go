// Package id provides centralized ID generation for the backend.
//
// Widget IDs follow the canvas "type-suffix" scheme: the widget type joined
// to a ULID with a hyphen (button-01J8...). The ULID suffix is
// timestamp-derived, so IDs sort in creation order and remain unique within
// a project. The hyphen is intentionally not a valid identifier character in
// generated source; codegen.SanitizeID maps IDs into identifier space.
//
// Design Principles:
//   - ULIDs only: Single ID format across entire system
//   - K-sortable: Creation-order queries without timestamps
//   - Debuggable: Type prefixes make logs readable
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// WidgetID identifies a widget placed on the canvas
type WidgetID string

// SessionID identifies a websocket canvas session
type SessionID string

// ProjectID identifies a saved project
type ProjectID string

// Prefixes tag non-widget IDs by kind
const (
	SessionPrefix = "sess"
	ProjectPrefix = "proj"
)

// Generator generates ULIDs with optional prefixes
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex // Protects entropy reader
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator instance
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a new ULID generator
func NewGenerator() *Generator {
	return &Generator{
		entropy: rand.Reader,
	}
}

// NewGeneratorWithEntropy creates a generator with custom entropy source.
// Useful for testing with deterministic entropy.
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{
		entropy: entropy,
	}
}

// Generate creates a new ULID
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateString creates a new ULID as a string
func (g *Generator) GenerateString() string {
	return g.Generate().String()
}

// NewWidgetID generates an ID for a widget of the given type.
// The type is part of the ID so logs and generated-code comments stay
// readable ("button-01J8...").
func NewWidgetID(widgetType string) WidgetID {
	return WidgetID(fmt.Sprintf("%s-%s", widgetType, Default().GenerateString()))
}

// NewSessionID generates a new canvas session ID
func NewSessionID() SessionID {
	return SessionID(fmt.Sprintf("%s_%s", SessionPrefix, Default().GenerateString()))
}

// NewProjectID generates a new project ID
func NewProjectID() ProjectID {
	return ProjectID(fmt.Sprintf("%s_%s", ProjectPrefix, Default().GenerateString()))
}

// String methods for ID types
func (id WidgetID) String() string  { return string(id) }
func (id SessionID) String() string { return string(id) }
func (id ProjectID) String() string { return string(id) }

// Timestamp extracts the creation time encoded in a widget ID suffix
func Timestamp(widgetID string) (time.Time, error) {
	suffix := widgetID
	if i := strings.LastIndexByte(widgetID, '-'); i >= 0 {
		suffix = widgetID[i+1:]
	}
	parsed, err := ulid.Parse(suffix)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()), nil
}
