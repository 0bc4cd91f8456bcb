package words

import (
	"fmt"
	"slices"
	"strings"
	"testing"
)

var fruit = []string{"Apple", "Avocado", "Ant", "Banana", "Apricot", "Axe", "Ace"}

func TestSample_TakesFiveSortedMatches(t *testing.T) {
	s := NewSeededSampler(1)

	got := s.Sample(fruit, "A")
	if len(got) != SampleSize {
		t.Fatalf("Sample returned %d words, want %d: %v", len(got), SampleSize, got)
	}
	if !slices.IsSorted(got) {
		t.Fatalf("Sample = %v, want ascending order", got)
	}
	for _, w := range got {
		if !strings.HasPrefix(strings.ToUpper(w), "A") {
			t.Fatalf("Sample word %q does not start with A", w)
		}
		if !slices.Contains(fruit, w) {
			t.Fatalf("Sample word %q not in corpus", w)
		}
	}
}

func TestSample_NoMatchIsEmpty(t *testing.T) {
	got := NewSeededSampler(1).Sample([]string{"Banana"}, "Z")
	if got == nil || len(got) != 0 {
		t.Fatalf("Sample = %#v, want empty non-nil slice", got)
	}
}

func TestSample_EmptyCorpus(t *testing.T) {
	if got := NewSeededSampler(1).Sample(nil, "A"); len(got) != 0 {
		t.Fatalf("Sample(nil) = %v, want empty", got)
	}
}

func TestSample_FewerMatchesThanSampleSize(t *testing.T) {
	corpus := []string{"zebra", "Banana", "zinc", "apple"}
	got := NewSeededSampler(3).Sample(corpus, "z")
	want := []string{"zebra", "zinc"}
	if !slices.Equal(got, want) {
		t.Fatalf("Sample = %v, want %v", got, want)
	}
}

func TestSample_CaseInsensitiveFilterCaseSensitiveSort(t *testing.T) {
	corpus := []string{"apple", "Apple", "banana"}
	got := NewSeededSampler(7).Sample(corpus, "a")
	want := []string{"Apple", "apple"}
	if !slices.Equal(got, want) {
		t.Fatalf("Sample = %v, want %v", got, want)
	}
}

func TestSample_DoesNotMutateCorpus(t *testing.T) {
	corpus := slices.Clone(fruit)
	NewSeededSampler(11).Sample(corpus, "a")
	if !slices.Equal(corpus, fruit) {
		t.Fatalf("corpus mutated: %v", corpus)
	}
}

func TestSample_Invariants(t *testing.T) {
	corpus := []string{
		"able", "About", "acid", "Actor", "adapt", "Adult", "agent", "Alarm",
		"bake", "Basic", "beach", "bring", "Cabin", "candy", "crisp", "dance",
		"éclair", "Éclat", "quiet", "Quilt", "x-ray",
	}
	letters := append(Letters(), "é", "É", "q")
	for seed := uint64(0); seed < 50; seed++ {
		s := NewSeededSampler(seed)
		for _, letter := range letters {
			t.Run(fmt.Sprintf("seed%d_%s", seed, letter), func(t *testing.T) {
				got := s.Sample(corpus, letter)
				if len(got) > SampleSize {
					t.Fatalf("len = %d, want <= %d", len(got), SampleSize)
				}
				if n := Count(corpus, letter); len(got) > n {
					t.Fatalf("len = %d, want <= %d matches", len(got), n)
				}
				if !slices.IsSorted(got) {
					t.Fatalf("Sample = %v, want sorted", got)
				}
				for _, w := range got {
					if !hasPrefixFold(w, letter) {
						t.Fatalf("word %q does not start with %q", w, letter)
					}
				}
			})
		}
	}
}

func TestSample_EventuallyDrawsEveryMatch(t *testing.T) {
	s := NewSeededSampler(42)
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		for _, w := range s.Sample(fruit, "a") {
			seen[w] = true
		}
	}
	for _, w := range Filter(fruit, "A") {
		if !seen[w] {
			t.Fatalf("word %q never sampled in 200 draws", w)
		}
	}
}

func TestSample_SameSeedSameDraw(t *testing.T) {
	a := NewSeededSampler(5).Sample(fruit, "A")
	b := NewSeededSampler(5).Sample(fruit, "A")
	if !slices.Equal(a, b) {
		t.Fatalf("seeded samples differ: %v vs %v", a, b)
	}
}

func TestNewSampler_NilSource(t *testing.T) {
	if got := NewSampler(nil).Sample(fruit, "B"); !slices.Equal(got, []string{"Banana"}) {
		t.Fatalf("Sample = %v, want [Banana]", got)
	}
}

func TestFilter_EmptyLetter(t *testing.T) {
	if got := Filter(fruit, ""); len(got) != 0 {
		t.Fatalf("Filter(\"\") = %v, want empty", got)
	}
	if got := Count(fruit, ""); got != 0 {
		t.Fatalf("Count(\"\") = %d, want 0", got)
	}
}

func TestCount(t *testing.T) {
	if got := Count(fruit, "a"); got != 6 {
		t.Fatalf("Count(a) = %d, want 6", got)
	}
	if got := Count(fruit, "B"); got != 1 {
		t.Fatalf("Count(B) = %d, want 1", got)
	}
}

func TestLetters(t *testing.T) {
	got := Letters()
	if len(got) != 26 || got[0] != "A" || got[25] != "Z" {
		t.Fatalf("Letters() = %v, want A..Z", got)
	}
}
