package acoustic

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// SymbolTable maps phone identifiers (as written by an aligner) to phone symbols.
// It is read-only after loading.
type SymbolTable struct {
	byID map[string]string
}

// NewSymbolTable creates an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{byID: make(map[string]string)}
}

// Add registers id as an alias of symbol. A later Add for the same id wins.
func (s *SymbolTable) Add(symbol, id string) {
	s.byID[id] = symbol
}

// LoadSymbolTable reads a phone map.
// Format: symbol<WS>id, one pair per line. Lines with fewer than two fields are ignored.
func LoadSymbolTable(r io.Reader) (*SymbolTable, error) {
	s := NewSymbolTable()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		s.Add(fields[0], fields[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadSymbolTableFile is a convenience wrapper that opens a file path.
func LoadSymbolTableFile(path string) (*SymbolTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadSymbolTable(f)
}

// Resolve returns the symbol mapped to token, or token itself when it is not a
// known identifier. A nil table resolves every token to itself.
func (s *SymbolTable) Resolve(token string) string {
	if s == nil {
		return token
	}
	if sym, ok := s.byID[token]; ok {
		return sym
	}
	return token
}

// Len returns the number of identifiers in the table.
func (s *SymbolTable) Len() int {
	if s == nil {
		return 0
	}
	return len(s.byID)
}
