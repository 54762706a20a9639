package cssbundle

import (
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

var (
	whitespaceRun   = regexp.MustCompile(`\s+`)
	structuralSpace = regexp.MustCompile(`\s*([{}:;,])\s*`)
)

// StripComments removes every /* ... */ block comment and leaves all other
// bytes untouched. Comment markers inside quoted strings are not comments.
func StripComments(content string) string {
	if !strings.Contains(content, "/*") {
		return content
	}

	lexer := css.NewLexer(parse.NewInputString(content))

	var b strings.Builder
	b.Grow(len(content))
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			break
		}
		if tt == css.CommentToken {
			continue
		}
		b.Write(text)
	}

	return b.String()
}

// Minify strips comments, collapses whitespace runs to a single space and
// drops whitespace around { } : ; , characters.
func Minify(content string) string {
	// Comments go first: braces or semicolons inside them are not structural.
	content = StripComments(content)
	content = whitespaceRun.ReplaceAllString(content, " ")
	content = structuralSpace.ReplaceAllString(content, "$1")
	return strings.TrimSpace(content)
}
