package analysis

import (
	"fmt"
	"strings"

	"github.com/contractcheck/backend/internal/service/catalog"
)

// Merge combines the settled group outcomes into one aggregate report. It is
// total: any mix of successes and failures, including all-failed, yields a
// well-formed report. outcomes and guidelines are parallel to assignments.
func Merge(outcomes []GroupOutcome, assignments []Assignment, guidelines []catalog.GuidelineResult) *MergedReport {
	var allResults []ReviewVerdict
	dbRefs := make(map[string]catalog.GuidelineEntry)
	var failedGroups []string

	for i, outcome := range outcomes {
		if outcome.Err == nil {
			allResults = append(allResults, outcome.Results...)
		} else {
			failedGroups = append(failedGroups, assignments[i].Group.Name)
		}

		// reference material was resolved before dispatch, so it is attached
		// even when the group's analysis failed
		for key, entry := range guidelines[i].Structured {
			dbRefs[key] = entry
		}
	}

	violations := filterByAdequacy(allResults, AdequacyViolation)
	warnings := filterByAdequacy(allResults, AdequacyWarning)

	riskLevel := RiskLow
	overallStatus := StatusAdequate
	switch {
	case len(violations) > 0:
		riskLevel = RiskHigh
		overallStatus = StatusDanger
	case len(warnings) > 0:
		riskLevel = RiskMid
		overallStatus = StatusWarning
	}

	var opinion strings.Builder
	fmt.Fprintf(&opinion, "총 %d개 항목 검토 결과, ", len(allResults))
	if len(violations) > 0 {
		fmt.Fprintf(&opinion, "%d개 항목에서 위반 가능성이 발견되었고, ", len(violations))
	}
	if len(warnings) > 0 {
		fmt.Fprintf(&opinion, "%d개 항목에서 보완이 필요하며, ", len(warnings))
	}
	fmt.Fprintf(&opinion, "%d개 항목은 적절한 것으로 판단됩니다.", len(allResults)-len(violations)-len(warnings))
	if len(failedGroups) > 0 {
		fmt.Fprintf(&opinion, " (%s 카테고리 분석이 실패하여 부분 결과입니다.)", strings.Join(failedGroups, ", "))
	}

	var recommendations string
	if len(violations) > 0 {
		recommendations += "우선 수정 필요 항목: " + strings.Join(itemNames(violations), ", ") + ". "
	}
	if len(warnings) > 0 {
		recommendations += "보완 권고 항목: " + strings.Join(itemNames(warnings), ", ") + ". "
	}
	if recommendations == "" {
		recommendations = "전체 항목이 적절한 것으로 확인되었습니다."
	}

	if allResults == nil {
		allResults = []ReviewVerdict{}
	}
	if failedGroups == nil {
		failedGroups = []string{}
	}

	return &MergedReport{
		RiskLevel:            riskLevel,
		OverallStatus:        overallStatus,
		OverallOpinion:       opinion.String(),
		Results:              allResults,
		FinalRecommendations: recommendations,
		DBReferences:         dbRefs,
		Summary: &ReportSummary{
			Total:      len(allResults),
			Violations: len(violations),
			Warnings:   len(warnings),
			Compliant:  len(allResults) - len(violations) - len(warnings),
		},
		Meta: ReportMeta{
			TotalGroups:   len(outcomes),
			SuccessGroups: len(outcomes) - len(failedGroups),
			FailedGroups:  failedGroups,
		},
	}
}

func filterByAdequacy(results []ReviewVerdict, adequacy string) []ReviewVerdict {
	var filtered []ReviewVerdict
	for _, r := range results {
		if r.Adequacy == adequacy {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func itemNames(results []ReviewVerdict) []string {
	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Item)
	}
	return names
}
