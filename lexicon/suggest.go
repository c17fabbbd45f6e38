package lexicon

import (
	"sort"

	"github.com/antzucaro/matchr"
)

// minSuggestScore is the Jaro-Winkler similarity below which a dictionary word
// is not offered as a suggestion.
const minSuggestScore = 0.7

// Suggest returns up to n dictionary words that look like word, most similar
// first. Ties are broken alphabetically.
func (d *Dictionary) Suggest(word string, n int) []string {
	key := Normalize(word)
	if key == "" || n <= 0 {
		return nil
	}

	type scored struct {
		word  string
		score float64
	}
	var cands []scored
	for w := range d.Entries {
		if w == key {
			continue
		}
		if s := matchr.JaroWinkler(key, w, false); s >= minSuggestScore {
			cands = append(cands, scored{word: w, score: s})
		}
	}

	sort.Slice(cands, func(i, j int) bool {
		if cands[i].score != cands[j].score {
			return cands[i].score > cands[j].score
		}
		return cands[i].word < cands[j].word
	})
	if len(cands) > n {
		cands = cands[:n]
	}

	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.word
	}
	return out
}
