package catalog

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"k8s.io/klog/v2"
)

// ReviewItem is one row of the review-item catalog. Items are immutable for
// the duration of an analysis run.
type ReviewItem struct {
	Name          string   // 항목
	Condition     string   // 적용조건: 공통, business size, or worker type
	RelatedTopics []string // 연관주제1..7, empty entries dropped
}

const maxRelatedTopics = 7

// ItemCatalog loads and filters the review-item catalog CSV.
type ItemCatalog struct {
	items []ReviewItem
}

func NewItemCatalog() *ItemCatalog {
	return &ItemCatalog{}
}

// Load reads the catalog CSV. Columns: 항목, 적용조건, 연관주제1..연관주제7.
// A load failure leaves the catalog empty rather than failing startup; the
// service can still answer non-analysis routes.
func (c *ItemCatalog) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		klog.Errorf("item catalog load failed: path=%s, err=%v", path, err)
		c.items = nil
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		klog.Errorf("item catalog parse failed: path=%s, err=%v", path, err)
		c.items = nil
		return err
	}
	if len(records) < 2 {
		c.items = nil
		return nil
	}

	header := records[0]
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	cell := func(row []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	items := make([]ReviewItem, 0, len(records)-1)
	for _, row := range records[1:] {
		item := ReviewItem{
			Name:      cell(row, "항목"),
			Condition: cell(row, "적용조건"),
		}
		if item.Name == "" {
			continue
		}
		for i := 1; i <= maxRelatedTopics; i++ {
			topic := cell(row, "연관주제"+strconv.Itoa(i))
			if topic != "" {
				item.RelatedTopics = append(item.RelatedTopics, topic)
			}
		}
		items = append(items, item)
	}

	c.items = items
	klog.V(6).Infof("item catalog loaded: %d items from %s", len(items), path)
	return nil
}

// Filter returns the items applicable to the given eligibility context: the
// condition is 공통, matches the business size, or matches a worker type.
func (c *ItemCatalog) Filter(businessSize string, workerTypes []string) []ReviewItem {
	applicable := make([]ReviewItem, 0, len(c.items))
	for _, item := range c.items {
		if item.Condition == "공통" || item.Condition == businessSize {
			applicable = append(applicable, item)
			continue
		}
		for _, wt := range workerTypes {
			if item.Condition == wt {
				applicable = append(applicable, item)
				break
			}
		}
	}
	klog.V(6).Infof("eligibility filter: %d of %d items apply (공통 + %s + %s)",
		len(applicable), len(c.items), businessSize, strings.Join(workerTypes, ", "))
	return applicable
}

// Len reports the number of loaded catalog items.
func (c *ItemCatalog) Len() int {
	return len(c.items)
}
