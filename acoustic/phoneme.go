package acoustic

import "strings"

// Phoneme is a canonical base phone symbol such as "AE" or "SIL".
type Phoneme string

// DefaultSilence is the reserved symbol marking non-speech intervals.
const DefaultSilence Phoneme = "SIL"

// TagSeparator separates a base phone from its positional tag (e.g. "AE_B").
const TagSeparator = "_"

// BaseSymbol strips any positional tag from a resolved phone token.
// "AE_B" and "AE_I" both become "AE"; a token without a tag is returned as is.
func BaseSymbol(token string) Phoneme {
	if i := strings.Index(token, TagSeparator); i >= 0 {
		token = token[:i]
	}
	return Phoneme(token)
}

// IsSilence reports whether p is the silence symbol (case-insensitive).
func IsSilence(p, silence Phoneme) bool {
	return strings.EqualFold(string(p), string(silence))
}

// Join renders a phone sequence as a space separated string.
func Join(phonemes []Phoneme) string {
	parts := make([]string, len(phonemes))
	for i, p := range phonemes {
		parts[i] = string(p)
	}
	return strings.Join(parts, " ")
}
