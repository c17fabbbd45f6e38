package acoustic

import (
	"strings"
	"testing"
)

func TestSymbolTableResolve(t *testing.T) {
	s, err := LoadSymbolTable(strings.NewReader(testPhoneMap))
	if err != nil {
		t.Fatalf("LoadSymbolTable error: %v", err)
	}
	if s.Len() != 6 {
		t.Errorf("Len = %d, want 6", s.Len())
	}
	if got := s.Resolve("12"); got != "R_B" {
		t.Errorf("Resolve(12) = %s, want R_B", got)
	}
	// Unknown tokens pass through unchanged.
	if got := s.Resolve("AA_E"); got != "AA_E" {
		t.Errorf("Resolve(AA_E) = %s, want AA_E", got)
	}
}

func TestSymbolTableNil(t *testing.T) {
	var s *SymbolTable
	if got := s.Resolve("5"); got != "5" {
		t.Errorf("nil Resolve(5) = %s, want 5", got)
	}
	if s.Len() != 0 {
		t.Errorf("nil Len = %d, want 0", s.Len())
	}
}

func TestSymbolTableSkipsShortLines(t *testing.T) {
	s, err := LoadSymbolTable(strings.NewReader("lonely\nA 1 extra\n"))
	if err != nil {
		t.Fatalf("LoadSymbolTable error: %v", err)
	}
	if s.Len() != 1 || s.Resolve("1") != "A" {
		t.Errorf("table = %d entries, Resolve(1) = %s", s.Len(), s.Resolve("1"))
	}
}

func TestBaseSymbol(t *testing.T) {
	cases := map[string]Phoneme{
		"AE_B":  "AE",
		"AE":    "AE",
		"SIL_S": "SIL",
		"A_B_C": "A",
		"_odd":  "",
	}
	for in, want := range cases {
		if got := BaseSymbol(in); got != want {
			t.Errorf("BaseSymbol(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsSilence(t *testing.T) {
	if !IsSilence("sil", DefaultSilence) {
		t.Error("sil should be silence")
	}
	if !IsSilence("SIL", DefaultSilence) {
		t.Error("SIL should be silence")
	}
	if IsSilence("S", DefaultSilence) {
		t.Error("S should not be silence")
	}
	if !IsSilence("sp", "SP") {
		t.Error("custom silence token should match")
	}
}
