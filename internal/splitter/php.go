package splitter

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	php "github.com/tree-sitter/tree-sitter-php/bindings/go"
)

func phpGrammar() grammarSpec {
	return grammarSpec{
		lang:     LangPHP,
		language: sitter.NewLanguage(php.LanguagePHP()),
		categories: map[string]Category{
			"class_declaration":     ClassBoundary,
			"interface_declaration": ClassBoundary,
			"enum_declaration":      ClassBoundary,
			"trait_declaration":     ClassBoundary,
			"function_definition":   MethodBoundary,
			"method_declaration":    MethodBoundary,
			"property_declaration":  FieldBoundary,
			"if_statement":          ControlBoundary,
			"for_statement":         ControlBoundary,
			"foreach_statement":     ControlBoundary,
			"while_statement":       ControlBoundary,
			"switch_statement":      ControlBoundary,
			"try_statement":         ControlBoundary,
			"expression_statement":  StatementBoundary,
		},
	}
}
