package splitter

import sitter "github.com/tree-sitter/go-tree-sitter"

// Language tags accepted by New. Tags outside this set are handled by the
// pattern-backed extractor with generic heuristics.
const (
	LangJava       = "java"
	LangPython     = "python"
	LangTypeScript = "typescript"
	LangRuby       = "ruby"
	LangRust       = "rust"
	LangC          = "c"
	LangPHP        = "php"
)

// grammarSpec ties a tree-sitter grammar to the node kinds that mark split
// boundaries in that language.
type grammarSpec struct {
	lang     string
	language *sitter.Language

	// categories maps exact node kinds to boundary categories.
	categories map[string]Category

	// statementSuffix treats any unmapped kind ending in "_statement" as a
	// control boundary.
	statementSuffix bool
}

// grammarFor probes for a tree-backed grammar. The probe happens once, at
// splitter construction; languages without a grammar use pattern scanning.
func grammarFor(lang string) (grammarSpec, bool) {
	switch lang {
	case LangJava:
		return javaGrammar(), true
	case LangPython:
		return pythonGrammar(), true
	case LangTypeScript:
		return typescriptGrammar(), true
	case LangRuby:
		return rubyGrammar(), true
	case LangRust:
		return rustGrammar(), true
	case LangC:
		return cGrammar(), true
	case LangPHP:
		return phpGrammar(), true
	default:
		return grammarSpec{}, false
	}
}

// LanguageForExtension maps a file extension (with dot) to a language tag.
// Unknown extensions return "" and are handled by generic pattern scanning.
func LanguageForExtension(ext string) string {
	switch ext {
	case ".java":
		return LangJava
	case ".py":
		return LangPython
	case ".ts", ".tsx":
		return LangTypeScript
	case ".rb":
		return LangRuby
	case ".rs":
		return LangRust
	case ".c", ".h":
		return LangC
	case ".php":
		return LangPHP
	default:
		return ""
	}
}
