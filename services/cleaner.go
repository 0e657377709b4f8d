package services

import (
	"regexp"
	"strings"
)

var (
	reTOC          = regexp.MustCompile(`(?im)^.*table of contents.*$`)
	rePageNumber   = regexp.MustCompile(`(?im)^.*page[^\d]*\d+.*$`)
	reNoiseLines   = regexp.MustCompile(`(?m)^[\s\W\d]*$`)
	reMultiNewLine = regexp.MustCompile(`\n{2,}`)
)

// PreCleanText strips extraction noise before the text is handed to the
// model: table-of-contents lines, page numbers, lines that carry no words,
// and runs of blank lines.
func PreCleanText(text string) string {
	cleaned := reTOC.ReplaceAllString(text, "")
	cleaned = rePageNumber.ReplaceAllString(cleaned, "")
	cleaned = reNoiseLines.ReplaceAllString(cleaned, "")
	cleaned = reMultiNewLine.ReplaceAllString(cleaned, "\n")
	return strings.TrimSpace(cleaned)
}
