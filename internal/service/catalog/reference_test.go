package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeLegalDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	tables := map[string]string{
		"임금_법령기준.csv": "주제,내용,법조문\n" +
			"임금 01,최저임금은 시간급 10320원 이상이어야 한다,최저임금법 제6조\n" +
			"임금 02,임금은 통화로 직접 전액 지급한다,근로기준법 제43조\n",
		"근로시간_법령기준.csv": "주제,내용,법조문\n" +
			"근로시간 02,1년간 80% 이상 출근 시 15일의 유급휴가를 준다,근로기준법 제60조\n",
		"임금대장-임금명세서_법령기준.csv": "주제,내용,법조문\n" +
			"임금명세서 01,임금명세서는 서면으로 교부한다,근로기준법 제48조\n",
		"휴일_법령기준.csv": "주제,내용,법조문\n" +
			"휴일 01,주 1회 이상의 유급휴일을 보장한다,근로기준법 제55조\n",
	}
	for name, content := range tables {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("write table fixture %s: %v", name, err)
		}
	}
	return dir
}

func TestReferenceStoreIndexAndAliases(t *testing.T) {
	store := NewReferenceStore(writeLegalDir(t))

	categories := make(map[string]bool)
	for _, c := range store.Categories() {
		categories[c] = true
	}

	for _, want := range []string{"임금", "근로시간", "임금대장-임금명세서", "임금대장", "임금명세서", "휴일", "휴일대체"} {
		if !categories[want] {
			t.Fatalf("category %q missing from index (have %v)", want, store.Categories())
		}
	}
}

func TestReferenceStoreResolve(t *testing.T) {
	store := NewReferenceStore(writeLegalDir(t))

	result := store.Resolve([]string{"임금 01", "근로시간 02"})

	if len(result.Structured) != 2 {
		t.Fatalf("expected 2 structured entries, got %d", len(result.Structured))
	}
	entry, ok := result.Structured["임금 01"]
	if !ok {
		t.Fatal("임금 01 not resolved")
	}
	if entry.Law != "최저임금법 제6조" {
		t.Fatalf("unexpected law citation: %q", entry.Law)
	}
	if !strings.Contains(result.Text, "#### 임금 01") || !strings.Contains(result.Text, "최저임금법 제6조") {
		t.Fatalf("aggregate text missing fragment: %q", result.Text)
	}
}

func TestReferenceStoreResolveAlias(t *testing.T) {
	store := NewReferenceStore(writeLegalDir(t))

	result := store.Resolve([]string{"임금명세서 01"})
	if _, ok := result.Structured["임금명세서 01"]; !ok {
		t.Fatalf("aliased category did not resolve: %+v", result.Structured)
	}
}

func TestReferenceStoreSkipsMalformedAndUnknown(t *testing.T) {
	store := NewReferenceStore(writeLegalDir(t))

	result := store.Resolve([]string{"", "임금", "없는카테고리 01", "임금 99"})
	if len(result.Structured) != 0 {
		t.Fatalf("expected no entries, got %v", result.Structured)
	}
	if result.Text != "" {
		t.Fatalf("text should be empty when nothing resolved, got %q", result.Text)
	}
}

func TestReferenceStoreResolveIdempotentAndCached(t *testing.T) {
	store := NewReferenceStore(writeLegalDir(t))

	first := store.Resolve([]string{"임금 01", "근로시간 02"})
	loadsAfterFirst := store.loads

	second := store.Resolve([]string{"임금 01", "근로시간 02"})
	if store.loads != loadsAfterFirst {
		t.Fatalf("second resolve loaded tables again: %d -> %d", loadsAfterFirst, store.loads)
	}
	if first.Text != second.Text {
		t.Fatalf("text differs between identical resolves")
	}
	if len(first.Structured) != len(second.Structured) {
		t.Fatalf("structured size differs between identical resolves")
	}
	for key, entry := range first.Structured {
		if second.Structured[key] != entry {
			t.Fatalf("structured entry %q differs: %+v vs %+v", key, entry, second.Structured[key])
		}
	}
}

func TestReferenceStoreMissingDir(t *testing.T) {
	store := NewReferenceStore(filepath.Join(t.TempDir(), "missing"))

	// resolution must not fail even with no index
	result := store.Resolve([]string{"임금 01"})
	if len(result.Structured) != 0 || result.Text != "" {
		t.Fatalf("expected empty result, got %+v", result)
	}
}
