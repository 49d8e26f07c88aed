package analysis

import "github.com/contractcheck/backend/internal/service/catalog"

// Adequacy classifications returned by the engine. Closed set.
const (
	AdequacyOK        = "적절"
	AdequacyWarning   = "보완필요"
	AdequacyViolation = "부적절"
)

// Risk levels and overall statuses of a merged report.
const (
	RiskHigh = "상"
	RiskMid  = "중"
	RiskLow  = "하"

	StatusDanger   = "위험"
	StatusWarning  = "보완필요"
	StatusAdequate = "적정"
)

// UserContext is the eligibility context of the analysis request.
type UserContext struct {
	BusinessSize string   `json:"businessSize"`
	WorkerTypes  []string `json:"workerTypes"`
}

// ReviewVerdict is one item's judgment as returned by the engine. Field
// names follow the JSON contract of the analysis prompt.
type ReviewVerdict struct {
	Item        string `json:"항목"`
	Condition   string `json:"적용조건,omitempty"`
	Adequacy    string `json:"적절성"`
	Rationale   string `json:"판단근거,omitempty"`
	Remediation string `json:"개선방안,omitempty"`
	Law         string `json:"관련법조문,omitempty"`
}

// GroupOutcome is the settled result of one group's analysis dispatch.
// Err nil means success; Results may still be empty when the engine returned
// nothing parseable.
type GroupOutcome struct {
	Group   GroupDef
	Results []ReviewVerdict
	Err     error
}

// ReportMeta describes how many groups contributed to a merged report.
type ReportMeta struct {
	TotalGroups   int      `json:"totalGroups"`
	SuccessGroups int      `json:"successGroups"`
	FailedGroups  []string `json:"failedGroups"`
}

// ReportSummary is the per-adequacy tally attached to a finished report.
type ReportSummary struct {
	Total      int `json:"총항목"`
	Violations int `json:"위반"`
	Warnings   int `json:"경고"`
	Compliant  int `json:"준수"`
}

// MergedReport is the aggregate verdict over all analysis groups.
type MergedReport struct {
	RiskLevel            string                            `json:"riskLevel"`
	OverallStatus        string                            `json:"overallStatus"`
	OverallOpinion       string                            `json:"overallOpinion"`
	Results              []ReviewVerdict                   `json:"results"`
	FinalRecommendations string                            `json:"finalRecommendations"`
	DBReferences         map[string]catalog.GuidelineEntry `json:"dbReferences"`
	Summary              *ReportSummary                    `json:"summary,omitempty"`
	Meta                 ReportMeta                        `json:"_meta"`
}
