package cssbundle

import (
	"fmt"
	"path/filepath"
)

// DefaultTitle names the project in generated headers
const DefaultTitle = "Project"

// Header builds the comment block prepended to every compiled stylesheet
func Header(title, source string, minified bool) string {
	if title == "" {
		title = DefaultTitle
	}
	return fmt.Sprintf(`/*
 * %s - Compiled CSS
 * Generated automatically - DO NOT EDIT
 * Source: %s
 * Minified: %t
 */

`, title, filepath.Base(source), minified)
}
