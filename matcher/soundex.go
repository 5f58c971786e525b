package matcher

import "strings"

var soundexCode = map[byte]byte{
	'b': '1', 'f': '1', 'p': '1', 'v': '1',
	'c': '2', 'g': '2', 'j': '2', 'k': '2', 'q': '2', 's': '2', 'x': '2', 'z': '2',
	'd': '3', 't': '3',
	'l': '4',
	'm': '5', 'n': '5',
	'r': '6',
}

// Soundex computes the classical four-character Soundex code for s,
// case-insensitively. Non-letter runes are ignored. An empty or
// all-non-letter input yields "".
func Soundex(s string) string {
	s = strings.ToLower(s)

	var firstLetter byte
	i := 0
	for ; i < len(s); i++ {
		if s[i] >= 'a' && s[i] <= 'z' {
			firstLetter = s[i]
			break
		}
	}
	if firstLetter == 0 {
		return ""
	}

	code := []byte{firstLetter - 'a' + 'A'}
	lastDigit := soundexCode[firstLetter]

	for i++; i < len(s) && len(code) < 4; i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			continue
		}
		digit, ok := soundexCode[c]
		switch {
		case !ok && (c == 'h' || c == 'w'):
			// h/w do not reset lastDigit: a repeated consonant across an
			// h/w still collapses, per the classical rule.
			continue
		case !ok:
			// vowel or y: resets lastDigit so a repeated consonant after
			// it is kept.
			lastDigit = 0
			continue
		case digit == lastDigit:
			continue
		default:
			code = append(code, digit)
			lastDigit = digit
		}
	}

	for len(code) < 4 {
		code = append(code, '0')
	}
	return string(code)
}
