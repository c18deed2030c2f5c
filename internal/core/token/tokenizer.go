// Package token splits text into whitespace-delimited tokens and implements the
// token sort and token set families of ratios on top of a plain comparator.
package token

import (
	"slices"
	"strings"
)

// Tokenize splits s on runs of Unicode whitespace. Empty fragments are dropped and
// the original order is kept.
func Tokenize(s string) []string {
	return strings.Fields(s)
}

// SortedJoin sorts tokens by code point and joins them with single spaces.
// The input slice is left untouched.
func SortedJoin(tokens []string) string {
	sorted := slices.Clone(tokens)
	// Byte-wise order of valid UTF-8 equals code point order.
	slices.Sort(sorted)
	return strings.Join(sorted, " ")
}

// Set is a collection of distinct tokens.
type Set map[string]struct{}

// NewSet builds a set from tokens, discarding duplicates.
func NewSet(tokens []string) Set {
	set := make(Set, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// Contains reports whether t is in the set.
func (s Set) Contains(t string) bool {
	_, ok := s[t]
	return ok
}

// Intersect returns the tokens present in both sets.
func (s Set) Intersect(other Set) Set {
	out := make(Set)
	for t := range s {
		if other.Contains(t) {
			out[t] = struct{}{}
		}
	}
	return out
}

// Difference returns the tokens of s that are absent from other.
func (s Set) Difference(other Set) Set {
	out := make(Set)
	for t := range s {
		if !other.Contains(t) {
			out[t] = struct{}{}
		}
	}
	return out
}

// Sorted returns the members in code point order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

// Join concatenates the non-empty parts with a single space.
func Join(parts ...string) string {
	var sb strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p)
	}
	return sb.String()
}
