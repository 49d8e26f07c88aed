package analysis

import (
	"strings"
)

// Section markers bounding the item-mapping region of the analysis prompt.
const (
	mappingStartMarker = "## STEP 3:"
	mappingEndMarker   = "## STEP 4:"
)

// BuildGroupPrompt scopes the shared analysis prompt to one group: the
// mapping tables between the STEP 3 and STEP 4 markers are filtered down to
// rows whose item label belongs to the group, and a scope directive is
// inserted after the preamble. When either marker is missing the directive
// is appended to the unmodified prompt instead.
func BuildGroupPrompt(fullPrompt string, itemNames []string) string {
	start := strings.Index(fullPrompt, mappingStartMarker)
	end := strings.Index(fullPrompt, mappingEndMarker)

	if start == -1 || end == -1 {
		return fullPrompt + "\n\n**[검토 범위]**\n이 요청에서는 다음 항목만 검토하세요: " + strings.Join(itemNames, ", ")
	}

	preamble := fullPrompt[:start]
	mappingSection := fullPrompt[start:end]
	postamble := fullPrompt[end:]

	members := make(map[string]bool, len(itemNames))
	for _, name := range itemNames {
		members[name] = true
	}

	// walk the mapping region line by line: non-table lines pass through and
	// reset table state; the two header lines of each table are re-emitted
	// once before that table's first retained row
	lines := strings.Split(mappingSection, "\n")
	result := make([]string, 0, len(lines))
	var headerLines []string
	headerEmitted := false

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "### [") || strings.HasPrefix(line, "## STEP 3"):
			result = append(result, line)
			headerLines = nil
			headerEmitted = false
		case strings.HasPrefix(line, "| 항목"):
			headerLines = []string{line}
		case len(headerLines) == 1 && strings.HasPrefix(line, "|---"):
			headerLines = append(headerLines, line)
		case len(headerLines) >= 2 && strings.HasPrefix(line, "|"):
			if members[rowLabel(line)] {
				if !headerEmitted {
					result = append(result, headerLines...)
					headerEmitted = true
				}
				result = append(result, line)
			}
		default:
			headerLines = nil
			headerEmitted = false
			result = append(result, line)
		}
	}

	directive := "\n**[검토 범위]**\n이 요청에서는 다음 항목만 검토하세요: " +
		strings.Join(itemNames, ", ") + "\n위 항목 외의 항목은 검토하지 마세요.\n"

	return preamble + directive + strings.Join(result, "\n") + "\n" + postamble
}

// rowLabel extracts the item label from a pipe-delimited table row: the
// first cell after the leading pipe.
func rowLabel(line string) string {
	cells := strings.Split(line, "|")
	if len(cells) < 2 {
		return ""
	}
	return strings.TrimSpace(cells[1])
}
