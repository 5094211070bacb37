// Package stopwords provides the immutable set of low-information tokens
// excluded from lexical analysis.
package stopwords

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed default.txt
var defaultList string

// Set is an immutable set of lowercase tokens, loaded once per process.
type Set struct {
	words map[string]struct{}
}

// New builds a Set from a flat text blob: one token per line, lowercased,
// blank lines and surrounding whitespace ignored.
func New(blob string) *Set {
	words := make(map[string]struct{})
	for _, line := range strings.Split(blob, "\n") {
		w := strings.ToLower(strings.TrimSpace(line))
		if w == "" {
			continue
		}
		words[w] = struct{}{}
	}
	return &Set{words: words}
}

// Default returns the built-in stopword list bundled with the binary.
func Default() *Set {
	return New(defaultList)
}

// Load reads a stopword list from a file. An unreadable list is a fatal
// configuration error; there is no silent fallback once a path was given.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided stopword path is expected
	if err != nil {
		return nil, fmt.Errorf("reading stopword list: %w", err)
	}
	return New(string(data)), nil
}

// Contains reports whether the lowercase token is a stopword.
func (s *Set) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of tokens in the set.
func (s *Set) Len() int {
	return len(s.words)
}
