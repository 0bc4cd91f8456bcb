package words

import (
	"math/rand/v2"
	"slices"
	"strings"
	"unicode/utf8"
)

// SampleSize caps how many words a sample holds.
const SampleSize = 5

// Sampler picks random subsets of a corpus. It is not safe for concurrent use;
// the UI calls it from its update loop only.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler builds a Sampler around src. A nil src gets a randomly seeded
// PCG source, so successive runs draw different samples.
func NewSampler(src rand.Source) *Sampler {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Sampler{rng: rand.New(src)}
}

// NewSeededSampler returns a Sampler whose draws are reproducible for seed.
func NewSeededSampler(seed uint64) *Sampler {
	return NewSampler(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sample returns up to SampleSize words from corpus that start with letter,
// ignoring case. The draw is a uniform random subset, returned in ascending
// case-sensitive order. corpus is not modified.
func (s *Sampler) Sample(corpus []string, letter string) []string {
	matches := Filter(corpus, letter)
	s.rng.Shuffle(len(matches), func(i, j int) {
		matches[i], matches[j] = matches[j], matches[i]
	})
	if len(matches) > SampleSize {
		matches = matches[:SampleSize]
	}
	slices.Sort(matches)
	return matches
}

// Filter returns the words of corpus that start with letter, ignoring case,
// in corpus order. The result never aliases corpus.
func Filter(corpus []string, letter string) []string {
	out := []string{}
	if letter == "" {
		return out
	}
	for _, word := range corpus {
		if hasPrefixFold(word, letter) {
			out = append(out, word)
		}
	}
	return out
}

// Count reports how many words of corpus start with letter, ignoring case.
func Count(corpus []string, letter string) int {
	if letter == "" {
		return 0
	}
	n := 0
	for _, word := range corpus {
		if hasPrefixFold(word, letter) {
			n++
		}
	}
	return n
}

func hasPrefixFold(s, prefix string) bool {
	for _, want := range prefix {
		if s == "" {
			return false
		}
		got, size := utf8.DecodeRuneInString(s)
		if got != want && !strings.EqualFold(string(got), string(want)) {
			return false
		}
		s = s[size:]
	}
	return true
}
