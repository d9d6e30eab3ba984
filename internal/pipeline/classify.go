package pipeline

import (
	"regexp"
	"strings"
)

// tbPattern matches the grouping convention: names starting with 'TB'
// followed by exactly four digits. Anchored at the start, case-sensitive.
var tbPattern = regexp.MustCompile(`^TB\d{4}`)

const defaultGroup = "base_folder"

// Classify maps a file name to its destination key and group label. Names
// carrying a TB-number get a sub-folder named after it; everything else
// lands directly under the prefix. The file name is joined verbatim, so
// embedded path separators produce a deeper key.
func Classify(prefix, fileName string) (string, string) {
	base := strings.TrimRight(prefix, "/")

	if label := tbPattern.FindString(fileName); label != "" {
		return base + "/" + label + "/" + fileName, label
	}

	return base + "/" + fileName, defaultGroup
}
