package parser

import (
	"context"
	"errors"
	"strings"
)

// Result summarizes a syntax inspection of a fixture.
type Result struct {
	Language       string   `json:"language"`
	Grammar        bool     `json:"grammar_checked"`
	TopLevelTypes  []string `json:"top_level_types,omitempty"`
	SyntaxErrors   int      `json:"syntax_errors"`
	FirstErrorLine int      `json:"first_error_line,omitempty"`
}

// Parser defines a language-specific syntax inspector.
type Parser interface {
	CanParse(language string) bool
	Parse(ctx context.Context, content []byte) (*Result, error)
}

// ErrEmpty indicates there was nothing to parse.
var ErrEmpty = errors.New("empty content")

var registry []Parser

// Register adds a parser implementation to the registry.
func Register(p Parser) {
	registry = append(registry, p)
}

// HasGrammar reports whether a real syntax parser exists for language.
func HasGrammar(language string) bool {
	return lookup(language) != nil
}

// ParseContent selects a parser for language and inspects content. Languages
// without a registered parser get an empty result with Grammar=false.
func ParseContent(ctx context.Context, language string, content []byte) (*Result, error) {
	language = strings.ToLower(language)
	if p := lookup(language); p != nil {
		return p.Parse(ctx, content)
	}
	return plainParser{language: language}.Parse(ctx, content)
}

func lookup(language string) Parser {
	language = strings.ToLower(language)
	for _, p := range registry {
		if p.CanParse(language) {
			return p
		}
	}
	return nil
}

func init() {
	Register(javaParser())
	Register(goParser())
	Register(pythonParser())
	Register(javascriptParser())
}
