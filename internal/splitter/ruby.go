package splitter

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	ruby "github.com/tree-sitter/tree-sitter-ruby/bindings/go"
)

func rubyGrammar() grammarSpec {
	return grammarSpec{
		lang:     LangRuby,
		language: sitter.NewLanguage(ruby.Language()),
		categories: map[string]Category{
			"class":            ClassBoundary,
			"module":           ClassBoundary,
			"method":           MethodBoundary,
			"singleton_method": MethodBoundary,
			"if":               ControlBoundary,
			"unless":           ControlBoundary,
			"while":            ControlBoundary,
			"until":            ControlBoundary,
			"for":              ControlBoundary,
			"case":             ControlBoundary,
			"begin":            ControlBoundary,
			"assignment":       StatementBoundary,
		},
	}
}
