// Package slug turns post headlines into unique, URL-safe identifiers.
package slug

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/racedirector/racedirector/pkg"
)

const (
	SuffixLength = 20
	// used when nothing of the title survives normalization
	fallbackPrefix = "post"
)

var (
	disallowedChars = regexp.MustCompile(`[^A-Za-z0-9 -]`)
	separatorRuns   = regexp.MustCompile(`[\s-]+`)
)

// SuffixFunc returns n characters from [0-9a-zA-Z].
type SuffixFunc func(n int) (string, error)

type Generator struct {
	suffix SuffixFunc
}

// NewGenerator returns a generator using suffix for the random part.
// A nil suffix falls back to a crypto/rand backed source.
func NewGenerator(suffix SuffixFunc) *Generator {
	if suffix == nil {
		suffix = pkg.GenerateRandomAlphanumeric
	}
	return &Generator{suffix: suffix}
}

// Normalize keeps only letters, digits, spaces and hyphens, turns separator
// runs into a single hyphen and lower-cases the result.
func Normalize(title string) string {
	s := disallowedChars.ReplaceAllString(title, "")
	s = separatorRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return fallbackPrefix
	}
	return strings.ToLower(s)
}

// Generate returns Normalize(title) followed by a hyphen and a random suffix.
func (g *Generator) Generate(title string) (string, error) {
	suffix, err := g.suffix(SuffixLength)
	if err != nil {
		return "", fmt.Errorf("generate slug suffix: %w", err)
	}
	if len(suffix) != SuffixLength {
		return "", fmt.Errorf("slug suffix has %d chars, want %d", len(suffix), SuffixLength)
	}
	return Normalize(title) + "-" + suffix, nil
}
