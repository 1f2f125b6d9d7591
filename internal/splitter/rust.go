package splitter

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
)

func rustGrammar() grammarSpec {
	return grammarSpec{
		lang:     LangRust,
		language: sitter.NewLanguage(rust.Language()),
		categories: map[string]Category{
			"struct_item":      ClassBoundary,
			"enum_item":        ClassBoundary,
			"trait_item":       ClassBoundary,
			"impl_item":        ClassBoundary,
			"mod_item":         ClassBoundary,
			"function_item":    MethodBoundary,
			"const_item":       FieldBoundary,
			"static_item":      FieldBoundary,
			"if_expression":    ControlBoundary,
			"match_expression": ControlBoundary,
			"while_expression": ControlBoundary,
			"for_expression":   ControlBoundary,
			"loop_expression":  ControlBoundary,
			"let_declaration":  StatementBoundary,
		},
	}
}
