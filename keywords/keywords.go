// Package keywords normalizes free text into word tokens and tests keyword
// containment against title names.
//
// Matching is a boolean subset test: a KeywordSet matches a name when every
// keyword is one of the name's tokens. There is no ranking.
package keywords

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MinTokenLen is the minimum number of runes a token needs to be kept.
const MinTokenLen = 2

// ErrEmptyOrTooShort is returned when no usable keyword remains after tokenizing.
var ErrEmptyOrTooShort = errors.New("keywords: empty or too short")

// Tokenize lowercases text, strips diacritics, splits it on every rune that is
// neither a letter nor a digit and drops tokens shorter than MinTokenLen.
// Tokens are unique and kept in first-seen order.
func Tokenize(text string) []string {
	text = fold(text)

	var out []string
	for _, tok := range strings.FieldsFunc(text, isSeparator) {
		if utf8.RuneCountInString(tok) < MinTokenLen || contains(out, tok) {
			continue
		}

		out = append(out, tok)
	}

	return out
}

// fold lowercases and removes combining marks. ASCII input skips normalization.
func fold(text string) string {
	ascii := true
	for i := 0; i < len(text); i++ {
		if text[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}

	if !ascii {
		// Transformers carry state; build one per call.
		t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		if folded, _, err := transform.String(t, text); err == nil {
			text = folded
		}
	}

	return strings.ToLower(text)
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func contains(tokens []string, tok string) bool {
	for _, t := range tokens {
		if t == tok {
			return true
		}
	}

	return false
}

// KeywordSet is a non-empty set of normalized keywords.
type KeywordSet struct {
	tokens []string
}

// New tokenizes text into a KeywordSet.
func New(text string) (KeywordSet, error) {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return KeywordSet{}, ErrEmptyOrTooShort
	}

	return KeywordSet{tokens: tokens}, nil
}

// Tokens returns a copy of the keywords.
func (k KeywordSet) Tokens() []string {
	return append([]string(nil), k.tokens...)
}

// Len returns the number of keywords.
func (k KeywordSet) Len() int { return len(k.tokens) }

// Matches reports whether every keyword is a token of name.
func (k KeywordSet) Matches(name string) bool {
	if len(k.tokens) == 0 {
		return false
	}

	candidate := Tokenize(name)
	for _, kw := range k.tokens {
		if !contains(candidate, kw) {
			return false
		}
	}

	return true
}

// String joins the keywords with single spaces.
func (k KeywordSet) String() string {
	return strings.Join(k.tokens, " ")
}
