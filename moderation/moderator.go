// Package moderation censors blacklisted words in chat messages before
// they reach the room log. Matching runs on a normalized view of the
// text (lowercased, leet speak folded, punctuation stripped) so spaced
// or disguised spellings are still caught, while the replacement is
// applied to the original characters to preserve spacing.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Moderator struct {
	machine     *goahocorasick.Machine
	replacement rune
}

// mapping links each normalized rune back to its index in the original
// string so matches can be censored in place.
type mapping struct {
	normalized []rune
	origIndex  []int
}

// NewModerator builds the Aho-Corasick automaton over the normalized
// blacklist. Building is CPU-bound and must happen once at startup, not
// per message.
func NewModerator(blacklist []string, replacement rune) (*Moderator, error) {
	patterns := make([][]rune, 0, len(blacklist))
	for _, word := range blacklist {
		if norm := normalize([]rune(word)); len(norm) > 0 {
			patterns = append(patterns, norm)
		}
	}

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{machine: machine, replacement: replacement}, nil
}

// Censor replaces every blacklisted span with the replacement rune and
// returns the matched normalized words. The input is returned untouched
// when nothing matches.
func (m *Moderator) Censor(original string) (string, []string) {
	origRunes := []rune(original)
	mapped := remap(origRunes)
	if len(mapped.normalized) == 0 {
		return original, nil
	}

	spans := m.machine.MultiPatternSearch(mapped.normalized, false)
	if len(spans) == 0 {
		return original, nil
	}

	var found []string
	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(mapped.origIndex) {
			continue
		}
		found = append(found, string(span.Word))

		// Censor from the first to the last original rune of the match,
		// covering any punctuation the normalization skipped in between.
		for i := mapped.origIndex[start]; i <= mapped.origIndex[end-1]; i++ {
			origRunes[i] = m.replacement
		}
	}
	return string(origRunes), found
}

func remap(origRunes []rune) mapping {
	m := mapping{
		normalized: make([]rune, 0, len(origRunes)),
		origIndex:  make([]int, 0, len(origRunes)),
	}
	for i, r := range origRunes {
		folded := foldLeet(r)
		if skippable(folded) {
			continue
		}
		m.normalized = append(m.normalized, unicode.ToLower(folded))
		m.origIndex = append(m.origIndex, i)
	}
	return m
}

func normalize(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		folded := foldLeet(r)
		if skippable(folded) {
			continue
		}
		out = append(out, unicode.ToLower(folded))
	}
	return out
}

// foldLeet maps common leet speak substitutions back to letters.
func foldLeet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	case '7':
		return 't'
	default:
		return r
	}
}

func skippable(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
