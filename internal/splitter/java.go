package splitter

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

// javaGrammar is the primary tree-backed ruleset. Node kinds follow the
// tree-sitter-java grammar.
func javaGrammar() grammarSpec {
	return grammarSpec{
		lang:     LangJava,
		language: sitter.NewLanguage(java.Language()),
		categories: map[string]Category{
			"class_declaration":           ClassBoundary,
			"interface_declaration":       ClassBoundary,
			"enum_declaration":            ClassBoundary,
			"record_declaration":          ClassBoundary,
			"annotation_type_declaration": ClassBoundary,
			"method_declaration":          MethodBoundary,
			"constructor_declaration":     ConstructorBoundary,
			"field_declaration":           FieldBoundary,
			"if_statement":                ControlBoundary,
			"for_statement":               ControlBoundary,
			"enhanced_for_statement":      ControlBoundary,
			"while_statement":             ControlBoundary,
			"do_statement":                ControlBoundary,
			"try_statement":               ControlBoundary,
			"switch_expression":           ControlBoundary,
			"expression_statement":        StatementBoundary,
			"local_variable_declaration":  StatementBoundary,
		},
		statementSuffix: true,
	}
}
