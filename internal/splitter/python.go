package splitter

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// pythonGrammar covers the tree-sitter-python node kinds. Python instances
// default to the UniformRandomValid selection strategy (see New).
func pythonGrammar() grammarSpec {
	return grammarSpec{
		lang:     LangPython,
		language: sitter.NewLanguage(python.Language()),
		categories: map[string]Category{
			"class_definition":     ClassBoundary,
			"function_definition":  MethodBoundary,
			"if_statement":         ControlBoundary,
			"for_statement":        ControlBoundary,
			"while_statement":      ControlBoundary,
			"try_statement":        ControlBoundary,
			"with_statement":       ControlBoundary,
			"match_statement":      ControlBoundary,
			"expression_statement": StatementBoundary,
		},
	}
}
