package eventbus

import (
	"context"
	"time"

	"github.com/contractcheck/backend/internal/service/analysis"
)

type EventType string

const (
	// AnalysisCompleted fires when a merged report is ready, regardless of
	// how many groups succeeded.
	AnalysisCompleted EventType = "analysis.completed"
	// ContractGenerated fires when a standard contract was rendered.
	ContractGenerated EventType = "contract.generated"
)

type Event struct {
	Type      EventType
	RecordID  string
	User      analysis.UserContext
	Report    *analysis.MergedReport
	Contract  string
	Timestamp time.Time
}

type Handler func(ctx context.Context, event Event) error

func NewAnalysisCompleted(recordID string, user analysis.UserContext, report *analysis.MergedReport) Event {
	return Event{
		Type:      AnalysisCompleted,
		RecordID:  recordID,
		User:      user,
		Report:    report,
		Timestamp: time.Now(),
	}
}

func NewContractGenerated(recordID, contract string) Event {
	return Event{
		Type:      ContractGenerated,
		RecordID:  recordID,
		Contract:  contract,
		Timestamp: time.Now(),
	}
}
