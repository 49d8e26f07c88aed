package catalog

import (
	"os"
	"path/filepath"
	"strings"
)

// DataFile describes one backing data file exposed through the API.
type DataFile struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Location string `json:"location"`
}

// ListDataFiles enumerates the reference tables and the item catalog.
func ListDataFiles(legalDir, itemCatalogPath string) ([]DataFile, error) {
	entries, err := os.ReadDir(legalDir)
	if err != nil {
		return nil, err
	}

	files := make([]DataFile, 0, len(entries)+1)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		files = append(files, DataFile{Name: entry.Name(), Type: "csv", Location: legalDir})
	}

	if _, err := os.Stat(itemCatalogPath); err == nil {
		files = append(files, DataFile{
			Name:     filepath.Base(itemCatalogPath),
			Type:     "csv",
			Location: filepath.Dir(itemCatalogPath),
		})
	}

	return files, nil
}
