package handler

import (
	"encoding/base64"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/contractcheck/backend/internal/service/document"
)

const maxUploadBytes = 10 << 20

type DocumentHandler struct {
	service *document.Service
}

func NewDocumentHandler(service *document.Service) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// Extract runs OCR over an uploaded contract image.
func (h *DocumentHandler) Extract(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "파일이 업로드되지 않았습니다."})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "파일이 너무 큽니다."})
		return
	}

	klog.V(6).Infof("OCR request: file=%s, size=%dKB, type=%s",
		fileHeader.Filename, fileHeader.Size/1024, fileHeader.Header.Get("Content-Type"))

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	extractedText, err := h.service.ExtractText(
		c.Request.Context(),
		base64.StdEncoding.EncodeToString(data),
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "extractedText": extractedText})
}

type structureRequest struct {
	ExtractedText string `json:"extractedText"`
}

// Structure converts extracted contract text into structured JSON.
func (h *DocumentHandler) Structure(c *gin.Context) {
	var req structureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ExtractedText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "추출된 텍스트가 없습니다."})
		return
	}

	structuredData, err := h.service.Structure(c.Request.Context(), req.ExtractedText)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "structuredData": structuredData})
}
