package splitter

// syntaxRules captures the comment, string and block delimiters the
// validator needs for one language.
type syntaxRules struct {
	lineComment    string   // "//" or "#"; empty disables the check
	blockComments  bool     // C-style /* ... */
	quoteChars     string   // single-character string delimiters
	textBlockDelim []string // triple-quote style delimiters, e.g. `"""`
	braceDelimited bool     // blocks delimited by { }
}

// cStyleRules covers the brace-and-slash language family.
var cStyleRules = syntaxRules{
	lineComment:    "//",
	blockComments:  true,
	quoteChars:     `"'`,
	braceDelimited: true,
}

var javaRules = syntaxRules{
	lineComment:    "//",
	blockComments:  true,
	quoteChars:     `"'`,
	textBlockDelim: []string{`"""`},
	braceDelimited: true,
}

var pythonRules = syntaxRules{
	lineComment:    "#",
	quoteChars:     `"'`,
	textBlockDelim: []string{`"""`, `'''`},
	braceDelimited: false,
}

var rubyRules = syntaxRules{
	lineComment:    "#",
	quoteChars:     `"'`,
	braceDelimited: false, // blocks end with "end", not braces
}

// rulesFor returns the validator ruleset for a language tag. Unknown
// languages get the conservative C-style rules.
func rulesFor(lang string) syntaxRules {
	switch lang {
	case LangJava:
		return javaRules
	case LangPython:
		return pythonRules
	case LangRuby:
		return rubyRules
	default:
		return cStyleRules
	}
}
