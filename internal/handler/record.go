package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/contractcheck/backend/internal/repository"
)

type RecordHandler struct {
	records   repository.AnalysisRecordRepository
	contracts repository.ContractRepository
}

func NewRecordHandler(records repository.AnalysisRecordRepository, contracts repository.ContractRepository) *RecordHandler {
	return &RecordHandler{records: records, contracts: contracts}
}

// List returns recent analysis records, newest first.
func (h *RecordHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	records, err := h.records.List(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

// Get returns one analysis record by its UUID.
func (h *RecordHandler) Get(c *gin.Context) {
	record, err := h.records.GetByRecordID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// Delete removes one analysis record by its UUID.
func (h *RecordHandler) Delete(c *gin.Context) {
	if err := h.records.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetContracts returns the contracts generated for one record.
func (h *RecordHandler) GetContracts(c *gin.Context) {
	contracts, err := h.contracts.GetByRecordID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, contracts)
}
