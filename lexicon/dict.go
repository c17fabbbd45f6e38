package lexicon

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ieee0824/phoneclip/acoustic"
)

// Entry represents a single pronunciation for a word.
type Entry struct {
	Word     string             // normalized word
	Phonemes []acoustic.Phoneme // phoneme sequence
}

// Dictionary holds word-to-pronunciation mappings.
// Keys are normalized words; variants keep file declaration order, which is
// also the order in which they are tried during matching.
type Dictionary struct {
	Entries map[string][]Entry // word -> list of alternative pronunciations
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		Entries: make(map[string][]Entry),
	}
}

// Normalize strips every character that is not an ASCII letter or digit and
// lower-cases the result.
func Normalize(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for i := 0; i < len(word); i++ {
		c := word[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + ('a' - 'A'))
		}
	}
	return b.String()
}

// Add appends a pronunciation variant for word. The word is normalized first;
// empty words and empty phone lists are ignored. It reports whether the
// variant was stored.
func (d *Dictionary) Add(word string, phonemes []acoustic.Phoneme) bool {
	key := Normalize(word)
	if key == "" || len(phonemes) == 0 {
		return false
	}
	d.Entries[key] = append(d.Entries[key], Entry{
		Word:     key,
		Phonemes: phonemes,
	})
	return true
}

// Load reads a pronunciation dictionary.
// Format: word<WS>phoneme1 phoneme2 phoneme3 ...
// Repeated words accumulate variants in file order.
func Load(r io.Reader) (*Dictionary, error) {
	d := NewDictionary()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		phonemes := make([]acoustic.Phoneme, len(fields)-1)
		for i, p := range fields[1:] {
			phonemes[i] = acoustic.Phoneme(p)
		}

		d.Add(fields[0], phonemes)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return d, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Lookup returns all pronunciation variants for a word.
func (d *Dictionary) Lookup(word string) []Entry {
	return d.Entries[Normalize(word)]
}

// Variants returns the phone sequences of every pronunciation of word.
func (d *Dictionary) Variants(word string) [][]acoustic.Phoneme {
	entries := d.Lookup(word)
	out := make([][]acoustic.Phoneme, len(entries))
	for i, e := range entries {
		out[i] = e.Phonemes
	}
	return out
}

// Has reports whether word has at least one pronunciation.
func (d *Dictionary) Has(word string) bool {
	return len(d.Lookup(word)) > 0
}

// Words returns all words in the dictionary, sorted.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.Entries))
	for w := range d.Entries {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
