// Package words draws the per-letter word samples shown by wordbook.
package words

// Alphabet is the fixed ordered set of selectable letters.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Letters returns the alphabet as one string per letter.
func Letters() []string {
	out := make([]string, 0, len(Alphabet))
	for _, r := range Alphabet {
		out = append(out, string(r))
	}
	return out
}
