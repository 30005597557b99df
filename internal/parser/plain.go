package parser

import "context"

// plainParser is the fallback for languages without a grammar.
type plainParser struct {
	language string
}

func (p plainParser) CanParse(language string) bool { return language == p.language }

func (p plainParser) Parse(_ context.Context, _ []byte) (*Result, error) {
	return &Result{Language: p.language}, nil
}
