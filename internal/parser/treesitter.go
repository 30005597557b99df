package parser

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
)

// declFunc returns the type names declared by a direct child of the root node.
type declFunc func(n *sitter.Node, src []byte) []string

// treeSitterParser inspects a language with a tree-sitter grammar.
// sitter.Parser is not goroutine-safe, so one is created per Parse call.
type treeSitterParser struct {
	language string
	grammar  func() *sitter.Language
	decls    declFunc
}

func (p treeSitterParser) CanParse(language string) bool {
	return language == p.language
}

func (p treeSitterParser) Parse(ctx context.Context, content []byte) (*Result, error) {
	if len(content) == 0 {
		return nil, ErrEmpty
	}
	sp := sitter.NewParser()
	defer sp.Close()
	sp.SetLanguage(p.grammar())
	tree, err := sp.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", p.language, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	res := &Result{Language: p.language, Grammar: true}
	for i := 0; i < int(root.NamedChildCount()); i++ {
		res.TopLevelTypes = append(res.TopLevelTypes, p.decls(root.NamedChild(i), content)...)
	}
	if root.HasError() {
		countErrors(root, res)
	}
	return res, nil
}

func countErrors(n *sitter.Node, res *Result) {
	if n.IsError() || n.IsMissing() {
		res.SyntaxErrors++
		if res.FirstErrorLine == 0 {
			res.FirstErrorLine = int(n.StartPoint().Row) + 1
		}
		return
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		countErrors(n.Child(i), res)
	}
}

func nameOf(n *sitter.Node, src []byte) []string {
	if name := n.ChildByFieldName("name"); name != nil {
		return []string{name.Content(src)}
	}
	return nil
}

func kindsDecl(kinds ...string) declFunc {
	set := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	return func(n *sitter.Node, src []byte) []string {
		if set[n.Type()] {
			return nameOf(n, src)
		}
		return nil
	}
}

func javaParser() Parser {
	return treeSitterParser{
		language: "java",
		grammar:  java.GetLanguage,
		decls: kindsDecl(
			"class_declaration",
			"interface_declaration",
			"enum_declaration",
			"record_declaration",
			"annotation_type_declaration",
		),
	}
}

func goParser() Parser {
	return treeSitterParser{
		language: "go",
		grammar:  golang.GetLanguage,
		decls: func(n *sitter.Node, src []byte) []string {
			if n.Type() != "type_declaration" {
				return nil
			}
			var out []string
			for i := 0; i < int(n.NamedChildCount()); i++ {
				spec := n.NamedChild(i)
				switch spec.Type() {
				case "type_spec", "type_alias":
					out = append(out, nameOf(spec, src)...)
				}
			}
			return out
		},
	}
}

func pythonParser() Parser {
	return treeSitterParser{
		language: "python",
		grammar:  python.GetLanguage,
		decls: func(n *sitter.Node, src []byte) []string {
			switch n.Type() {
			case "class_definition":
				return nameOf(n, src)
			case "decorated_definition":
				if def := n.ChildByFieldName("definition"); def != nil && def.Type() == "class_definition" {
					return nameOf(def, src)
				}
			}
			return nil
		},
	}
}

func javascriptParser() Parser {
	return treeSitterParser{
		language: "javascript",
		grammar:  javascript.GetLanguage,
		decls: func(n *sitter.Node, src []byte) []string {
			switch n.Type() {
			case "class_declaration":
				return nameOf(n, src)
			case "export_statement":
				if d := n.ChildByFieldName("declaration"); d != nil && d.Type() == "class_declaration" {
					return nameOf(d, src)
				}
			}
			return nil
		},
	}
}
