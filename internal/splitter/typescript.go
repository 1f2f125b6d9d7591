package splitter

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

func typescriptGrammar() grammarSpec {
	return grammarSpec{
		lang:     LangTypeScript,
		language: sitter.NewLanguage(typescript.LanguageTypescript()),
		categories: map[string]Category{
			"class_declaration":              ClassBoundary,
			"abstract_class_declaration":     ClassBoundary,
			"interface_declaration":          ClassBoundary,
			"enum_declaration":               ClassBoundary,
			"function_declaration":           MethodBoundary,
			"generator_function_declaration": MethodBoundary,
			"method_definition":              MethodBoundary,
			"public_field_definition":        FieldBoundary,
			"if_statement":                   ControlBoundary,
			"for_statement":                  ControlBoundary,
			"for_in_statement":               ControlBoundary,
			"while_statement":                ControlBoundary,
			"try_statement":                  ControlBoundary,
			"switch_statement":               ControlBoundary,
			"expression_statement":           StatementBoundary,
			"lexical_declaration":            StatementBoundary,
			"variable_declaration":           StatementBoundary,
		},
	}
}
