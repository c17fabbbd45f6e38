package lexicon

import (
	"strings"
	"testing"

	"github.com/ieee0824/phoneclip/acoustic"
)

const testDict = `# English pronunciation dictionary
re R IY
tax T AE K
Tax's T AE K S
read R IY D
read R EH D
empty
!!! AH
`

func TestLoadDict(t *testing.T) {
	d, err := Load(strings.NewReader(testDict))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	entries := d.Lookup("tax")
	if len(entries) != 1 {
		t.Fatalf("tax entries = %d, want 1", len(entries))
	}
	if len(entries[0].Phonemes) != 3 {
		t.Errorf("tax phonemes = %d, want 3", len(entries[0].Phonemes))
	}
	if entries[0].Phonemes[0] != "T" {
		t.Errorf("tax phonemes[0] = %s, want T", entries[0].Phonemes[0])
	}

	// "Tax's" normalizes to "taxs"
	if !d.Has("taxs") {
		t.Error("taxs should be present")
	}

	// read should have 2 variants in file order
	variants := d.Variants("read")
	if len(variants) != 2 {
		t.Fatalf("read variants = %d, want 2", len(variants))
	}
	if acoustic.Join(variants[0]) != "R IY D" || acoustic.Join(variants[1]) != "R EH D" {
		t.Errorf("read variants = %v, want [R IY D] [R EH D]", variants)
	}
}

func TestLoadDict_SkipsEmpty(t *testing.T) {
	d, err := Load(strings.NewReader(testDict))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if d.Has("empty") {
		t.Error("word without phones should be skipped")
	}
	if _, ok := d.Entries[""]; ok {
		t.Error("word normalizing to empty should be skipped")
	}
}

func TestLookupNormalizes(t *testing.T) {
	d, err := Load(strings.NewReader(testDict))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(d.Lookup("RE!")) != 1 {
		t.Error("RE! should resolve to re")
	}
	if d.Has("missing") {
		t.Error("should not find nonexistent word")
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Hello":   "hello",
		"don't":   "dont",
		"A-1_b":   "a1b",
		" Tax's ": "taxs",
		"cafe!":   "cafe",
		"???":     "",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWords(t *testing.T) {
	d, err := Load(strings.NewReader(testDict))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	words := d.Words()
	want := []string{"re", "read", "tax", "taxs"}
	if len(words) != len(want) {
		t.Fatalf("Words = %v, want %v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("Words[%d] = %s, want %s", i, words[i], want[i])
		}
	}
}

func TestSuggest(t *testing.T) {
	d, err := Load(strings.NewReader(testDict))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	got := d.Suggest("taks", 2)
	if len(got) == 0 || got[0] != "taxs" && got[0] != "tax" {
		t.Errorf("Suggest(taks) = %v, want tax or taxs first", got)
	}
	if len(got) > 2 {
		t.Errorf("Suggest returned %d words, want at most 2", len(got))
	}
	if s := d.Suggest("zzzzzz", 3); len(s) != 0 {
		t.Errorf("Suggest(zzzzzz) = %v, want none", s)
	}
}
