package analysis

import (
	"errors"
	"strings"
	"testing"

	"github.com/contractcheck/backend/internal/service/catalog"
)

func testAssignments(t *testing.T, names ...string) []Assignment {
	t.Helper()
	byName := make(map[string]GroupDef)
	for _, g := range Groups() {
		byName[g.Name] = g
	}
	out := make([]Assignment, 0, len(names))
	for _, name := range names {
		g, ok := byName[name]
		if !ok {
			t.Fatalf("unknown group %q", name)
		}
		out = append(out, Assignment{Group: g, Items: []catalog.ReviewItem{{Name: g.Items[0]}}})
	}
	return out
}

func emptyGuidelines(n int) []catalog.GuidelineResult {
	out := make([]catalog.GuidelineResult, n)
	for i := range out {
		out[i].Structured = map[string]catalog.GuidelineEntry{}
	}
	return out
}

func TestMergeAllAdequate(t *testing.T) {
	assignments := testAssignments(t, "임금", "사회보험/퇴직금")
	outcomes := []GroupOutcome{
		{Group: assignments[0].Group, Results: []ReviewVerdict{{Item: "임금", Adequacy: AdequacyOK}}},
		{Group: assignments[1].Group, Results: []ReviewVerdict{{Item: "사회보험", Adequacy: AdequacyOK}}},
	}

	report := Merge(outcomes, assignments, emptyGuidelines(2))

	if report.RiskLevel != RiskLow || report.OverallStatus != StatusAdequate {
		t.Fatalf("risk=%s status=%s, want 하/적정", report.RiskLevel, report.OverallStatus)
	}
	if report.FinalRecommendations != "전체 항목이 적절한 것으로 확인되었습니다." {
		t.Fatalf("unexpected recommendations: %q", report.FinalRecommendations)
	}
	if report.Meta.SuccessGroups != 2 || len(report.Meta.FailedGroups) != 0 {
		t.Fatalf("unexpected meta: %+v", report.Meta)
	}
}

func TestMergeViolationDominance(t *testing.T) {
	assignments := testAssignments(t, "임금", "근로시간/휴일", "기본정보")
	outcomes := []GroupOutcome{
		{Results: []ReviewVerdict{
			{Item: "임금", Adequacy: AdequacyOK},
			{Item: "일당", Adequacy: AdequacyWarning},
		}},
		{Results: []ReviewVerdict{{Item: "휴게시간", Adequacy: AdequacyViolation}}},
		{Results: []ReviewVerdict{{Item: "근무장소", Adequacy: AdequacyOK}}},
	}

	report := Merge(outcomes, assignments, emptyGuidelines(3))

	if report.RiskLevel != RiskHigh || report.OverallStatus != StatusDanger {
		t.Fatalf("risk=%s status=%s, want 상/위험", report.RiskLevel, report.OverallStatus)
	}
	if !strings.Contains(report.FinalRecommendations, "우선 수정 필요 항목: 휴게시간") {
		t.Fatalf("violation missing from recommendations: %q", report.FinalRecommendations)
	}
	if !strings.Contains(report.FinalRecommendations, "보완 권고 항목: 일당") {
		t.Fatalf("warning missing from recommendations: %q", report.FinalRecommendations)
	}
	if report.Summary.Violations != 1 || report.Summary.Warnings != 1 || report.Summary.Compliant != 2 {
		t.Fatalf("unexpected summary: %+v", report.Summary)
	}
}

func TestMergeWarningOnly(t *testing.T) {
	assignments := testAssignments(t, "임금")
	outcomes := []GroupOutcome{
		{Results: []ReviewVerdict{{Item: "임금", Adequacy: AdequacyWarning}}},
	}

	report := Merge(outcomes, assignments, emptyGuidelines(1))
	if report.RiskLevel != RiskMid || report.OverallStatus != StatusWarning {
		t.Fatalf("risk=%s status=%s, want 중/보완필요", report.RiskLevel, report.OverallStatus)
	}
}

func TestMergeAllFailed(t *testing.T) {
	assignments := testAssignments(t, "임금", "기본정보", "계약체결/기타")
	outcomes := []GroupOutcome{
		{Err: errors.New("engine timeout")},
		{Err: errors.New("engine 500")},
		{Err: errors.New("engine refused")},
	}

	report := Merge(outcomes, assignments, emptyGuidelines(3))

	if len(report.Results) != 0 {
		t.Fatalf("expected no results, got %d", len(report.Results))
	}
	if report.RiskLevel != RiskLow {
		t.Fatalf("all-failed report risk = %s, want 하", report.RiskLevel)
	}
	if report.Meta.SuccessGroups != 0 || len(report.Meta.FailedGroups) != 3 {
		t.Fatalf("unexpected meta: %+v", report.Meta)
	}
	if !strings.Contains(report.OverallOpinion, "부분 결과입니다") {
		t.Fatalf("opinion does not mark partial result: %q", report.OverallOpinion)
	}
	for _, name := range []string{"임금", "기본정보", "계약체결/기타"} {
		if !strings.Contains(report.OverallOpinion, name) {
			t.Fatalf("failed group %q not named in opinion: %q", name, report.OverallOpinion)
		}
	}
}

func TestMergeAttachesReferencesOfFailedGroups(t *testing.T) {
	assignments := testAssignments(t, "임금", "근로시간/휴일")
	guidelines := []catalog.GuidelineResult{
		{Structured: map[string]catalog.GuidelineEntry{
			"임금 01": {Title: "임금 01", Content: "최저임금", Law: "최저임금법 제6조"},
		}},
		{Structured: map[string]catalog.GuidelineEntry{
			"근로시간 02": {Title: "근로시간 02", Content: "연차", Law: "근로기준법 제60조"},
		}},
	}
	outcomes := []GroupOutcome{
		{Results: []ReviewVerdict{{Item: "임금", Adequacy: AdequacyOK}}},
		{Err: errors.New("engine down")},
	}

	report := Merge(outcomes, assignments, guidelines)

	// reference material resolved before dispatch is kept for failed groups
	if len(report.DBReferences) != 2 {
		t.Fatalf("expected 2 db references, got %v", report.DBReferences)
	}
	if _, ok := report.DBReferences["근로시간 02"]; !ok {
		t.Fatal("failed group's references missing")
	}
}

func TestMergeOpinionCounts(t *testing.T) {
	assignments := testAssignments(t, "임금")
	outcomes := []GroupOutcome{
		{Results: []ReviewVerdict{
			{Item: "임금", Adequacy: AdequacyViolation},
			{Item: "일당", Adequacy: AdequacyWarning},
			{Item: "임금 지급시기", Adequacy: AdequacyOK},
		}},
	}

	report := Merge(outcomes, assignments, emptyGuidelines(1))

	opinion := report.OverallOpinion
	for _, want := range []string{"총 3개 항목", "1개 항목에서 위반 가능성", "1개 항목에서 보완이 필요", "1개 항목은 적절한 것"} {
		if !strings.Contains(opinion, want) {
			t.Fatalf("opinion missing %q: %q", want, opinion)
		}
	}
}
