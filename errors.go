package phoneclip

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ieee0824/phoneclip/matcher"
)

// ErrConfig is wrapped by every ConfigError.
var ErrConfig = errors.New("configuration error")

// ConfigError reports a request that cannot be matched because of missing
// input: an unknown utterance, an unknown word or an empty word sequence.
type ConfigError struct {
	Utterance   string
	Word        string
	Reason      string
	Suggestions []string // similar dictionary words, if any
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "utterance %q", e.Utterance)
	if e.Word != "" {
		fmt.Fprintf(&b, ", word %q", e.Word)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return b.String()
}

func (e *ConfigError) Unwrap() error { return ErrConfig }

// NoMatchError reports that no pronunciation of the word sequence occurs
// contiguously in the utterance. It wraps matcher.ErrNoMatch.
type NoMatchError struct {
	Utterance    string
	Words        []string
	Combinations int // pronunciation combinations tried
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no match for %q in utterance %q (%d pronunciation combinations tried)",
		strings.Join(e.Words, " "), e.Utterance, e.Combinations)
}

func (e *NoMatchError) Unwrap() error { return matcher.ErrNoMatch }

// IsConfigError reports whether err is a configuration error.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfig)
}

// IsNoMatch reports whether err is a no-match result.
func IsNoMatch(err error) bool {
	return errors.Is(err, matcher.ErrNoMatch)
}
