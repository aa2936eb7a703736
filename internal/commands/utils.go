package commands

import (
	"iter"
	"strings"
)

// Separators split one line of input into several commands.
const Separators = ";\n"

// Pieces yields the commands of s split on any of [Separators]. Pieces are
// trimmed and blank ones are skipped.
func Pieces(s string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		for s != "" {
			var piece string
			if k := strings.IndexAny(s, Separators); k >= 0 {
				piece, s = s[:k], s[k+1:]
			} else {
				piece, s = s, ""
			}
			if piece = strings.TrimSpace(piece); piece == "" {
				continue
			}
			if !yield(i, piece) {
				return
			}
			i++
		}
	}
}
