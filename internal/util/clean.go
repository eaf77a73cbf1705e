package util

import (
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
)

var charReplacementMap = map[string]string{
	"‘": "'", "’": "'", "“": "\"",
	"”": "\"", "–": "-", "—": "--", "…": "...",
	" ": " ", "": "-", "": "--", "": "'",
	"": "'", "": "\"", "": "\"",
}

// CleanDocumentText normalizes text pulled out of PDF and Word
// documents: typographic punctuation is flattened to ASCII and invalid
// UTF-8 sequences are replaced rather than propagated.
func CleanDocumentText(text, src string) string {
	if !utf8.ValidString(text) {
		log.Warnf("%s produced invalid UTF-8, replacing invalid sequences", src)
		text = strings.ToValidUTF8(text, string(utf8.RuneError))
	}

	for bad, good := range charReplacementMap {
		text = strings.ReplaceAll(text, bad, good)
	}
	return strings.TrimSpace(text)
}
