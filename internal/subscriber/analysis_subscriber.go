// Package subscriber wires event-bus events to persistence so handlers stay
// free of storage concerns.
package subscriber

import (
	"context"
	"strings"
	"time"

	"k8s.io/klog/v2"

	"github.com/contractcheck/backend/internal/eventbus"
	"github.com/contractcheck/backend/internal/model"
	"github.com/contractcheck/backend/internal/repository"
	"github.com/contractcheck/backend/internal/utils"
)

type AnalysisSubscriber struct {
	records   repository.AnalysisRecordRepository
	contracts repository.ContractRepository
}

func NewAnalysisSubscriber(records repository.AnalysisRecordRepository, contracts repository.ContractRepository) *AnalysisSubscriber {
	return &AnalysisSubscriber{records: records, contracts: contracts}
}

// Register attaches the subscriber to the bus and returns an unsubscribe
// func covering all registrations.
func (s *AnalysisSubscriber) Register(bus *eventbus.Bus) func() {
	unsubCompleted := bus.Subscribe(eventbus.AnalysisCompleted, s.onAnalysisCompleted)
	unsubContract := bus.Subscribe(eventbus.ContractGenerated, s.onContractGenerated)
	return func() {
		unsubCompleted()
		unsubContract()
	}
}

func (s *AnalysisSubscriber) onAnalysisCompleted(ctx context.Context, event eventbus.Event) error {
	report := event.Report
	if report == nil {
		return nil
	}

	status := "completed"
	if report.Meta.SuccessGroups == 0 && report.Meta.TotalGroups > 0 {
		status = "failed"
	} else if len(report.Meta.FailedGroups) > 0 {
		status = "partial"
	}

	now := time.Now()
	record := &model.AnalysisRecord{
		RecordID:      event.RecordID,
		BusinessSize:  event.User.BusinessSize,
		WorkerTypes:   strings.Join(event.User.WorkerTypes, ","),
		RiskLevel:     report.RiskLevel,
		OverallStatus: report.OverallStatus,
		Status:        status,
		TotalItems:    len(report.Results),
		Report:        utils.ToJSON(report),
		CompletedAt:   &now,
	}
	if report.Summary != nil {
		record.ViolationCount = report.Summary.Violations
		record.WarningCount = report.Summary.Warnings
	}

	if err := s.records.Create(record); err != nil {
		klog.Errorf("analysis record save failed: recordID=%s, err=%v", event.RecordID, err)
		return err
	}
	klog.V(6).Infof("analysis record saved: recordID=%s, status=%s, risk=%s", event.RecordID, status, report.RiskLevel)
	return nil
}

func (s *AnalysisSubscriber) onContractGenerated(ctx context.Context, event eventbus.Event) error {
	contract := &model.GeneratedContract{
		RecordID: event.RecordID,
		Content:  event.Contract,
	}
	if err := s.contracts.Create(contract); err != nil {
		klog.Errorf("generated contract save failed: recordID=%s, err=%v", event.RecordID, err)
		return err
	}
	klog.V(6).Infof("generated contract saved: recordID=%s, length=%d", event.RecordID, len(event.Contract))
	return nil
}
