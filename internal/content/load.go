package content

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/nfrund/salon/internal/validation"
)

//go:embed default.yaml
var defaultDocument []byte

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ErrInvalidDocument wraps every parse or validation failure.
var ErrInvalidDocument = errors.New("invalid content document")

// ParseError reports a document that could not be decoded or validated.
type ParseError struct {
	Source string
	Line   int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrInvalidDocument, e.Err}
}

// Default returns the document embedded in the binary.
func Default() (*Document, error) {
	return Parse("default.yaml", defaultDocument)
}

// Load reads and validates the document at path from fs.
func Load(fs afero.Fs, path string) (*Document, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates a YAML document. source names it in errors.
func Parse(source string, data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Source: source, Line: extractLine(err), Err: err}
	}
	if err := Validate(&doc); err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}
	return &doc, nil
}

// Validate checks field rules and cross-field constraints.
func Validate(doc *Document) error {
	if err := validation.Struct(doc); err != nil {
		return err
	}

	seen := make(map[string]int, len(doc.Packages))
	for i, p := range doc.Packages {
		if prev, ok := seen[string(p.Tier)]; ok {
			return fmt.Errorf("packages[%d]: tier %q already used by packages[%d]", i, p.Tier, prev)
		}
		seen[string(p.Tier)] = i
	}

	if doc.ItineraryExternal() && doc.Itinerary.ExternalURL == "" {
		return errors.New("itinerary: external_url is required when mode is external")
	}
	if doc.Itinerary.Mode == "timeline" && len(doc.Itinerary.Days) == 0 {
		return errors.New("itinerary: timeline mode needs at least one day")
	}
	return nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
