package gotopic

import "strings"

type segmentKind uint8

const (
	segmentLiteral segmentKind = iota
	segmentSingle
	segmentMulti
)

type segment struct {
	kind segmentKind
	word string
}

// Pattern is a parsed binding key.
type Pattern struct {
	text     string
	segments []segment

	// matchAll is set for fanout bindings, which ignore the routing key.
	matchAll bool
}

// ParsePattern parses a topic binding pattern such as "payment.*" or "#.error".
func ParsePattern(text string) (Pattern, error) {
	return parsePattern(text, ExchangeTypeTopic)
}

// parsePattern parses text according to the exchange kind:
//   - topic: "*" and "#" are wildcards when they are whole segments, "#" never follows "#".
//     A "#" inside a word is rejected; a "*" inside a word is a literal character.
//   - direct: every segment is a literal word.
//   - fanout: any text is accepted and the pattern matches everything.
func parsePattern(text string, kind ExchangeType) (Pattern, error) {
	if kind == ExchangeTypeFanout {
		return Pattern{text: text, matchAll: true}, nil
	}

	if text == "" {
		return Pattern{}, &InvalidPatternError{Pattern: text, Reason: reasonEmpty}
	}

	words := strings.Split(text, delimiter)
	segments := make([]segment, 0, len(words))

	for _, word := range words {
		if word == "" {
			return Pattern{}, &InvalidPatternError{Pattern: text, Reason: reasonEmptySegment}
		}

		if kind == ExchangeTypeDirect {
			segments = append(segments, segment{kind: segmentLiteral, word: word})

			continue
		}

		switch word {
		case singleWildcard:
			segments = append(segments, segment{kind: segmentSingle})
		case multiWildcard:
			if n := len(segments); n > 0 && segments[n-1].kind == segmentMulti {
				return Pattern{}, &InvalidPatternError{Pattern: text, Reason: reasonAdjacentWildcards}
			}

			segments = append(segments, segment{kind: segmentMulti})
		default:
			if strings.Contains(word, multiWildcard) {
				return Pattern{}, &InvalidPatternError{Pattern: text, Reason: reasonPartialWildcard}
			}

			segments = append(segments, segment{kind: segmentLiteral, word: word})
		}
	}

	return Pattern{text: text, segments: segments}, nil
}

// String returns the original pattern text.
func (p Pattern) String() string {
	return p.text
}

// Matches reports whether the already split routing key matches the pattern.
//
// It is the reference matcher: a segment-wise walk where "#" tries every split point.
// Results are memoised on (key position, pattern position) so several "#" stay polynomial.
func (p Pattern) Matches(words []string) bool {
	if p.matchAll {
		return true
	}

	n, m := len(words), len(p.segments)

	// 0 is unknown, 1 is no match, 2 is match.
	memo := make([]uint8, (n+1)*(m+1))

	var match func(i, j int) bool

	match = func(i, j int) bool {
		idx := i*(m+1) + j
		if memo[idx] != 0 {
			return memo[idx] == 2
		}

		var ok bool

		switch {
		case j == m:
			ok = i == n
		case p.segments[j].kind == segmentMulti:
			for k := i; k <= n && !ok; k++ {
				ok = match(k, j+1)
			}
		case i == n:
			ok = false
		case p.segments[j].kind == segmentSingle:
			ok = match(i+1, j+1)
		default:
			ok = words[i] == p.segments[j].word && match(i+1, j+1)
		}

		memo[idx] = 1
		if ok {
			memo[idx] = 2
		}

		return ok
	}

	return match(0, 0)
}

// Match validates a topic pattern and a routing key, then reports whether they match.
func Match(pattern, routingKey string) (bool, error) {
	p, err := ParsePattern(pattern)
	if err != nil {
		return false, err
	}

	words, err := ParseRoutingKey(routingKey)
	if err != nil {
		return false, err
	}

	return p.Matches(words), nil
}
