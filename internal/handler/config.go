package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contractcheck/backend/config"
	"github.com/contractcheck/backend/internal/service/catalog"
)

type ConfigHandler struct {
	cfg   *config.Config
	store *catalog.ReferenceStore
}

func NewConfigHandler(cfg *config.Config, store *catalog.ReferenceStore) *ConfigHandler {
	return &ConfigHandler{cfg: cfg, store: store}
}

// Get returns the runtime configuration with credentials redacted.
func (h *ConfigHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"server": h.cfg.Server,
		"llm": gin.H{
			"api_url":    h.cfg.LLM.APIURL,
			"model":      h.cfg.LLM.Model,
			"max_tokens": h.cfg.LLM.MaxTokens,
			"api_key":    maskKey(h.cfg.LLM.APIKey),
		},
		"data": h.cfg.Data,
	})
}

// ListDataFiles returns the reference tables and catalog files in use.
func (h *ConfigHandler) ListDataFiles(c *gin.Context) {
	files, err := catalog.ListDataFiles(h.cfg.Data.LegalDir, h.cfg.Data.ItemCatalog)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"files":      files,
		"categories": h.store.Categories(),
	})
}

func maskKey(key string) string {
	if len(key) <= 8 {
		if key == "" {
			return ""
		}
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}
