package iterator

import (
	"iter"
	"strings"
)

func Collect2[K, V any](it iter.Seq2[K, V]) ([]K, []V) {
	leftElems := []K{}
	rightElems := []V{}
	for left, right := range it {
		leftElems = append(leftElems, left)
		rightElems = append(rightElems, right)
	}
	return leftElems, rightElems
}

// Lines yields each line of s with its 0-based line number. Both "\n" and
// "\r\n" terminate a line. A trailing terminator yields a final empty line.
func Lines(s string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		for {
			line, rest, found := strings.Cut(s, "\n")
			if found {
				line = strings.TrimSuffix(line, "\r")
			}
			if !yield(i, line) || !found {
				return
			}
			s = rest
			i++
		}
	}
}
