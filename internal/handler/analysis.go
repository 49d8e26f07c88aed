package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"k8s.io/klog/v2"

	"github.com/contractcheck/backend/internal/eventbus"
	"github.com/contractcheck/backend/internal/service/analysis"
	"github.com/contractcheck/backend/internal/service/catalog"
	"github.com/contractcheck/backend/internal/service/contractgen"
)

type AnalysisHandler struct {
	analysis  *analysis.Service
	generator *contractgen.Service
	items     *catalog.ItemCatalog
	bus       *eventbus.Bus
}

func NewAnalysisHandler(svc *analysis.Service, generator *contractgen.Service, items *catalog.ItemCatalog, bus *eventbus.Bus) *AnalysisHandler {
	return &AnalysisHandler{analysis: svc, generator: generator, items: items, bus: bus}
}

type analyzeRequest struct {
	StructuredData map[string]any        `json:"structuredData"`
	UserContext    *analysis.UserContext `json:"userContext"`
}

type analyzeResponse struct {
	*analysis.MergedReport
	RecordID string `json:"recordId"`
}

// Analyze runs the parallel group analysis over a structured contract.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.StructuredData) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "구조화된 데이터가 없습니다."})
		return
	}

	userCtx := analysis.UserContext{BusinessSize: "5인이상", WorkerTypes: []string{"정규직"}}
	if req.UserContext != nil {
		if req.UserContext.BusinessSize != "" {
			userCtx.BusinessSize = req.UserContext.BusinessSize
		}
		if len(req.UserContext.WorkerTypes) > 0 {
			userCtx.WorkerTypes = req.UserContext.WorkerTypes
		}
	}

	klog.V(6).Infof("analysis request: businessSize=%s, workerTypes=%v", userCtx.BusinessSize, userCtx.WorkerTypes)

	applicable := h.items.Filter(userCtx.BusinessSize, userCtx.WorkerTypes)
	report := h.analysis.Run(c.Request.Context(), req.StructuredData, userCtx, applicable)

	recordID := uuid.NewString()
	if err := h.bus.Publish(c.Request.Context(), eventbus.NewAnalysisCompleted(recordID, userCtx, report)); err != nil {
		// persistence is best-effort; the client still gets the report
		klog.Warningf("analysis event publish failed: recordID=%s, err=%v", recordID, err)
	}

	c.JSON(http.StatusOK, analyzeResponse{MergedReport: report, RecordID: recordID})
}

type generateRequest struct {
	AnalysisResult *analysis.MergedReport `json:"analysisResult"`
	RecordID       string                 `json:"recordId"`
}

// GenerateContract renders a corrected standard contract from a report.
func (h *AnalysisHandler) GenerateContract(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.AnalysisResult == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "분석 결과가 없습니다."})
		return
	}

	contractText, err := h.generator.Generate(c.Request.Context(), req.AnalysisResult)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recordID := req.RecordID
	if recordID == "" {
		recordID = uuid.NewString()
	}
	if err := h.bus.Publish(c.Request.Context(), eventbus.NewContractGenerated(recordID, contractText)); err != nil {
		klog.Warningf("contract event publish failed: recordID=%s, err=%v", recordID, err)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "contractText": contractText, "recordId": recordID})
}
