package splitter

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	c "github.com/tree-sitter/tree-sitter-c/bindings/go"
)

func cGrammar() grammarSpec {
	return grammarSpec{
		lang:     LangC,
		language: sitter.NewLanguage(c.Language()),
		categories: map[string]Category{
			"struct_specifier":     ClassBoundary,
			"enum_specifier":       ClassBoundary,
			"union_specifier":      ClassBoundary,
			"function_definition":  MethodBoundary,
			"declaration":          FieldBoundary,
			"if_statement":         ControlBoundary,
			"for_statement":        ControlBoundary,
			"while_statement":      ControlBoundary,
			"do_statement":         ControlBoundary,
			"switch_statement":     ControlBoundary,
			"expression_statement": StatementBoundary,
		},
	}
}
