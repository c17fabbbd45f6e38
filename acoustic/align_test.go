package acoustic

import (
	"strings"
	"testing"
)

const testPhoneMap = `# symbol id
SIL 1
R_B 12
IY_E 31
T_B 40
AE_I 7
K_E 22
`

const testAlignments = `utt1 1 0.00 0.10 1
utt1 1 0.10 0.20 12
utt1 1 0.30 0.20 31
utt1 1 0.50 0.30 SIL
utt1 1 0.80 0.20 40
utt1 1 1.00 0.20 7
utt1 1 1.20 0.30 22
utt1 1 1.50 0.10 sil
utt2 1 0.00 0.50 AH_S
`

func loadTestAlignments(t *testing.T) *Alignments {
	t.Helper()
	symbols, err := LoadSymbolTable(strings.NewReader(testPhoneMap))
	if err != nil {
		t.Fatalf("LoadSymbolTable error: %v", err)
	}
	a, err := LoadAlignments(strings.NewReader(testAlignments), symbols)
	if err != nil {
		t.Fatalf("LoadAlignments error: %v", err)
	}
	return a
}

func TestLoadAlignments(t *testing.T) {
	a := loadTestAlignments(t)

	tl, ok := a.Timeline("utt1")
	if !ok {
		t.Fatal("utt1 not found")
	}
	if len(tl) != 8 {
		t.Fatalf("len(utt1) = %d, want 8", len(tl))
	}

	want := []Phoneme{"SIL", "R", "IY", "SIL", "T", "AE", "K", "sil"}
	for i, p := range want {
		if tl[i].Symbol != p {
			t.Errorf("tl[%d].Symbol = %s, want %s", i, tl[i].Symbol, p)
		}
	}
	if tl[2].Start != 0.3 || tl[2].Duration != 0.2 {
		t.Errorf("tl[2] = %+v, want start 0.3 duration 0.2", tl[2])
	}

	tl2, ok := a.Timeline("utt2")
	if !ok || len(tl2) != 1 || tl2[0].Symbol != "AH" {
		t.Errorf("utt2 = %+v, want single AH event", tl2)
	}
}

func TestLoadAlignments_KeepsInputOrder(t *testing.T) {
	data := "u 1 0.5 0.1 B\nu 1 0.0 0.1 A\n"
	a, err := LoadAlignments(strings.NewReader(data), nil)
	if err != nil {
		t.Fatalf("LoadAlignments error: %v", err)
	}
	tl, _ := a.Timeline("u")
	if tl[0].Symbol != "B" || tl[1].Symbol != "A" {
		t.Errorf("order = %v, want [B A]", tl.Symbols())
	}
	if err := CheckOrdered(tl); err == nil {
		t.Error("CheckOrdered should report out-of-order events")
	}
}

func TestLoadAlignments_Malformed(t *testing.T) {
	cases := map[string]string{
		"fields":   "u 1 0.0 0.1\n",
		"start":    "u 1 abc 0.1 A\n",
		"negative": "u 1 -0.1 0.1 A\n",
		"duration": "u 1 0.0 0 A\n",
	}
	for name, data := range cases {
		if _, err := LoadAlignments(strings.NewReader(data), nil); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestUtterances(t *testing.T) {
	a := loadTestAlignments(t)
	ids := a.Utterances()
	if len(ids) != 2 || ids[0] != "utt1" || ids[1] != "utt2" {
		t.Errorf("Utterances = %v, want [utt1 utt2]", ids)
	}
	if _, ok := a.Timeline("missing"); ok {
		t.Error("should not find missing utterance")
	}
}

func TestContent(t *testing.T) {
	a := loadTestAlignments(t)
	tl, _ := a.Timeline("utt1")

	content := tl.Content(DefaultSilence)
	got := Join(content.Symbols())
	if got != "R IY T AE K" {
		t.Errorf("Content = %q, want %q", got, "R IY T AE K")
	}
	if len(tl) != 8 {
		t.Errorf("Content modified the timeline: len = %d", len(tl))
	}
}

func TestTimelineDuration(t *testing.T) {
	tl := Timeline{{Start: 0.5, Duration: 0.25, Symbol: "A"}, {Start: 1.0, Duration: 0.5, Symbol: "B"}}
	if d := tl.Duration(); d != 1.0 {
		t.Errorf("Duration = %v, want 1.0", d)
	}
	if d := (Timeline{}).Duration(); d != 0 {
		t.Errorf("empty Duration = %v, want 0", d)
	}
}
