package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"k8s.io/klog/v2"
)

// GuidelineEntry is one resolved legal-reference row.
type GuidelineEntry struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Law     string `json:"law"`
}

// GuidelineResult aggregates the reference material resolved for a topic set.
// Text is empty when nothing resolved; Structured holds one entry per topic
// key that resolved.
type GuidelineResult struct {
	Text       string
	Structured map[string]GuidelineEntry
}

// ReferenceStore resolves topic keys ("<category> <topicId>") against a
// directory of category-prefixed CSV tables. Resolution never fails: broken
// files, unknown categories, and malformed keys are logged and skipped.
//
// The row cache is owned by the store instance and shared across concurrent
// resolutions; first read of a table is serialized by the cache mutex and
// rows are immutable afterwards.
type ReferenceStore struct {
	legalDir string
	fileMap  map[string]string // category -> table path

	mu       sync.Mutex
	rowCache map[string][]tableRow
	loads    int // tables read from disk, for cache verification
}

// tableRow holds the header-keyed cells of one table row.
type tableRow map[string]string

// NewReferenceStore scans legalDir for CSV tables and indexes them by the
// category prefix of the filename (text before the first underscore).
func NewReferenceStore(legalDir string) *ReferenceStore {
	s := &ReferenceStore{
		legalDir: legalDir,
		fileMap:  make(map[string]string),
		rowCache: make(map[string][]tableRow),
	}
	s.buildIndex()
	return s
}

func (s *ReferenceStore) buildIndex() {
	entries, err := os.ReadDir(s.legalDir)
	if err != nil {
		klog.Errorf("reference index build failed: dir=%s, err=%v", s.legalDir, err)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".csv") {
			continue
		}
		category := strings.SplitN(name, "_", 2)[0]
		category = strings.TrimSuffix(category, ".csv")
		if category == "" {
			continue
		}
		s.fileMap[category] = filepath.Join(s.legalDir, name)
	}

	// fixed aliases: the combined payroll table answers to both of its
	// member categories, and holiday substitution uses the holiday table
	if path, ok := s.fileMap["임금대장-임금명세서"]; ok {
		s.fileMap["임금대장"] = path
		s.fileMap["임금명세서"] = path
	}
	if path, ok := s.fileMap["휴일"]; ok {
		s.fileMap["휴일대체"] = path
	}

	klog.V(6).Infof("reference index built: %d categories from %s", len(s.fileMap), s.legalDir)
}

// Categories reports the indexed category names.
func (s *ReferenceStore) Categories() []string {
	out := make([]string, 0, len(s.fileMap))
	for category := range s.fileMap {
		out = append(out, category)
	}
	return out
}

// Resolve looks up guideline material for each topic key. Keys are
// de-duplicated preserving first occurrence; malformed keys and unknown
// categories are skipped silently.
func (s *ReferenceStore) Resolve(topics []string) GuidelineResult {
	result := GuidelineResult{Structured: make(map[string]GuidelineEntry)}
	if len(topics) == 0 {
		return result
	}

	var text strings.Builder
	text.WriteString("\n\n### [참고: 상세 법령 가이드라인]\n")
	foundAny := false

	seen := make(map[string]bool, len(topics))
	for _, topicStr := range topics {
		topicStr = strings.TrimSpace(topicStr)
		if topicStr == "" || seen[topicStr] {
			continue
		}
		seen[topicStr] = true

		parts := strings.Fields(topicStr)
		if len(parts) < 2 {
			continue
		}
		category, topicID := parts[0], parts[1]

		path, ok := s.fileMap[category]
		if !ok {
			continue
		}

		rows, err := s.loadTable(path)
		if err != nil {
			klog.Errorf("reference table read failed (%s): %v", category, err)
			continue
		}

		match, ok := findRow(rows, topicID)
		if !ok {
			continue
		}

		content := match["내용"]
		law := match["법조문"]
		fmt.Fprintf(&text, "\n#### %s\n- 상세내용: %s\n", topicStr, content)
		if law != "" {
			fmt.Fprintf(&text, "- 관련법조문: %s\n", law)
		}

		result.Structured[topicStr] = GuidelineEntry{
			Title:   topicStr,
			Content: content,
			Law:     law,
		}
		foundAny = true
	}

	if foundAny {
		result.Text = text.String()
	}
	return result
}

// loadTable returns the cached rows for path, reading the file on first use.
func (s *ReferenceStore) loadTable(path string) ([]tableRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rows, ok := s.rowCache[path]; ok {
		return rows, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		s.rowCache[path] = nil
		return nil, nil
	}

	header := records[0]
	rows := make([]tableRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(tableRow, len(header))
		for i, name := range header {
			if i < len(record) {
				row[strings.TrimSpace(name)] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}

	s.rowCache[path] = rows
	s.loads++
	klog.V(6).Infof("reference table cached: path=%s, rows=%d", path, len(rows))
	return rows, nil
}

// findRow returns the first row with any cell containing topicID.
func findRow(rows []tableRow, topicID string) (tableRow, bool) {
	for _, row := range rows {
		for _, v := range row {
			if strings.Contains(v, topicID) {
				return row, true
			}
		}
	}
	return nil, false
}
