// Package grammar describes the target grammar that compiled patterns are
// matched against: the named interior-node symbols of its trees, and the
// operator table used to classify punctuation literals.
package grammar

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/syntree/patmatch/token"
)

// SymbolID identifies an interior-node symbol of a target grammar. IDs start
// at symbolBase so they never collide with token kinds.
type SymbolID int

const symbolBase = 256

// Grammar is a read-only symbol table. It is safe to share across
// concurrent pattern compilations once constructed.
type Grammar struct {
	name    string
	symbols map[string]SymbolID
	names   map[SymbolID]string
}

// New builds a Grammar with the given symbols, assigning IDs in order.
func New(name string, symbols ...string) *Grammar {
	g := &Grammar{
		name:    name,
		symbols: make(map[string]SymbolID, len(symbols)),
		names:   make(map[SymbolID]string, len(symbols)),
	}
	for i, sym := range symbols {
		id := SymbolID(symbolBase + i)
		g.symbols[sym] = id
		g.names[id] = sym
	}
	return g
}

func (g *Grammar) Name() string { return g.name }

// Symbol resolves a lowercase symbol name to its ID.
func (g *Grammar) Symbol(name string) (SymbolID, bool) {
	id, ok := g.symbols[name]
	return id, ok
}

// SymbolName is the reverse of Symbol, for display purposes.
func (g *Grammar) SymbolName(id SymbolID) (string, bool) {
	name, ok := g.names[id]
	return name, ok
}

// OpKind classifies an operator or punctuation literal to a lexical kind.
func (g *Grammar) OpKind(text string) (token.Kind, bool) {
	return token.OpKind(text)
}

type grammarFile struct {
	Name    string   `yaml:"name"`
	Symbols []string `yaml:"symbols"`
}

// Load reads a grammar definition from a YAML file:
//
//	name: toy
//	symbols:
//	  - expr
//	  - term
func Load(path string) (*Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg grammarFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing grammar %s: %w", path, err)
	}
	if cfg.Name == "" {
		return nil, fmt.Errorf("grammar %s has no name", path)
	}
	return New(cfg.Name, cfg.Symbols...), nil
}
