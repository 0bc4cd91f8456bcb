// Package corpus loads the static word list wordbook samples from.
package corpus

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// ErrEmpty is returned when a source yields no words.
var ErrEmpty = errors.New("word corpus is empty")

//go:embed words.txt
var builtin string

// Corpus is an immutable ordered list of words.
type Corpus struct {
	words []string
}

// New copies words into a Corpus.
func New(words []string) Corpus {
	return Corpus{words: slices.Clone(words)}
}

// Words returns a copy of the words in load order.
func (c Corpus) Words() []string {
	return slices.Clone(c.words)
}

// Len returns the number of words.
func (c Corpus) Len() int {
	return len(c.words)
}

// Source supplies a Corpus at startup.
type Source interface {
	Load() (Corpus, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func() (Corpus, error)

// Load calls f.
func (f SourceFunc) Load() (Corpus, error) {
	return f()
}

// Embedded returns the built-in word list.
func Embedded() Source {
	return SourceFunc(func() (Corpus, error) {
		words, err := parse(strings.NewReader(builtin))
		if err != nil {
			return Corpus{}, fmt.Errorf("read built-in words: %w", err)
		}
		return newChecked(words)
	})
}

// File returns a Source reading newline separated words from path.
func File(path string) Source {
	return SourceFunc(func() (Corpus, error) {
		file, err := os.Open(path)
		if err != nil {
			return Corpus{}, fmt.Errorf("open words file: %w", err)
		}
		defer file.Close()

		words, err := parse(file)
		if err != nil {
			return Corpus{}, fmt.Errorf("read words file: %w", err)
		}
		return newChecked(words)
	})
}

func newChecked(words []string) (Corpus, error) {
	if len(words) == 0 {
		return Corpus{}, ErrEmpty
	}
	return Corpus{words: words}, nil
}

// parse reads one word per line. Blank lines and lines starting with # are
// skipped.
func parse(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
