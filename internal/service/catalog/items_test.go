package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

const catalogCSV = `항목,적용조건,연관주제1,연관주제2,연관주제3,연관주제4,연관주제5,연관주제6,연관주제7
임금,공통,임금 01,임금 02,,,,,
연차유급휴가,5인이상,근로시간 02,,,,,,
수습기간,정규직,수습 01,,,,,,
근로일 및 근로일별 근로시간,단시간,근로시간 05,,,,,,
`

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "근로계약서_updated.csv")
	if err := os.WriteFile(path, []byte(catalogCSV), 0644); err != nil {
		t.Fatalf("write catalog fixture: %v", err)
	}
	return path
}

func TestItemCatalogLoad(t *testing.T) {
	c := NewItemCatalog()
	if err := c.Load(writeCatalog(t)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 4 {
		t.Fatalf("expected 4 items, got %d", c.Len())
	}

	items := c.Filter("5인이상", []string{"정규직", "단시간"})
	byName := make(map[string]ReviewItem)
	for _, item := range items {
		byName[item.Name] = item
	}

	wage, ok := byName["임금"]
	if !ok {
		t.Fatal("공통 item missing from filter result")
	}
	if len(wage.RelatedTopics) != 2 || wage.RelatedTopics[0] != "임금 01" {
		t.Fatalf("unexpected related topics: %v", wage.RelatedTopics)
	}
}

func TestItemCatalogFilterConditions(t *testing.T) {
	c := NewItemCatalog()
	if err := c.Load(writeCatalog(t)); err != nil {
		t.Fatalf("Load: %v", err)
	}

	// 5인미만 + 정규직: 공통 and worker-type rows only
	items := c.Filter("5인미만", []string{"정규직"})
	if len(items) != 2 {
		t.Fatalf("expected 2 applicable items, got %d", len(items))
	}
	for _, item := range items {
		if item.Name == "연차유급휴가" || item.Name == "근로일 및 근로일별 근로시간" {
			t.Fatalf("item %q should not apply to 5인미만/정규직", item.Name)
		}
	}
}

func TestItemCatalogLoadMissingFile(t *testing.T) {
	c := NewItemCatalog()
	if err := c.Load(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if c.Len() != 0 {
		t.Fatalf("catalog should be empty after failed load, got %d", c.Len())
	}
	if got := c.Filter("5인이상", []string{"정규직"}); len(got) != 0 {
		t.Fatalf("Filter on empty catalog returned %d items", len(got))
	}
}
