package analysis

import (
	"fmt"

	"k8s.io/klog/v2"

	"github.com/contractcheck/backend/internal/service/catalog"
)

// GroupID identifies one of the fixed analysis groups.
type GroupID int

const (
	GroupBasicInfo GroupID = iota
	GroupWorkingHours
	GroupWages
	GroupInsuranceRetirement
	GroupContractMisc

	groupCount // sentinel, keep last
)

func (id GroupID) String() string {
	if id < 0 || id >= groupCount {
		return fmt.Sprintf("GroupID(%d)", int(id))
	}
	return analysisGroups[id].Key
}

// GroupDef is one entry of the fixed group catalog.
type GroupDef struct {
	ID    GroupID
	Key   string
	Name  string
	Items []string
}

// analysisGroups is the closed group catalog. Order is the canonical merge
// order; index equals GroupID.
var analysisGroups = [groupCount]GroupDef{
	{
		ID:    GroupBasicInfo,
		Key:   "basic_info",
		Name:  "기본정보",
		Items: []string{"사용자 정보", "근로자 정보", "근로개시일", "근무장소", "업무내용"},
	},
	{
		ID:   GroupWorkingHours,
		Key:  "working_hours",
		Name: "근로시간/휴일",
		Items: []string{"소정근로시간", "휴게시간", "근무일/휴일", "연차유급휴가",
			"연장·야간·휴일근로", "근로시간 제한", "야간·휴일근로 제한",
			"근로시간 특례", "근로일 및 근로일별 근로시간"},
	},
	{
		ID:   GroupWages,
		Key:  "wages",
		Name: "임금",
		Items: []string{"임금", "임금 구성항목", "임금 계산방법", "임금 지급방법",
			"임금 지급시기", "일당"},
	},
	{
		ID:    GroupInsuranceRetirement,
		Key:   "insurance_retirement",
		Name:  "사회보험/퇴직금",
		Items: []string{"사회보험", "퇴직금", "수습기간"},
	},
	{
		ID:   GroupContractMisc,
		Key:  "contract_misc",
		Name: "계약체결/기타",
		Items: []string{"근로계약서 교부", "계약서 작성일", "당사자 서명날인",
			"성실 이행의무", "기타사항", "근로계약기간",
			"연령증명서", "친권자 동의서", "체류자격", "숙식제공 여부"},
	},
}

// Groups returns the fixed group catalog in canonical order.
func Groups() []GroupDef {
	return analysisGroups[:]
}

// Assignment binds one group to the applicable items that fall into it.
type Assignment struct {
	Group  GroupDef
	Items  []catalog.ReviewItem
	Topics []string // de-duplicated related topics, lookup keys for the reference store
}

// AssignItems partitions the applicable items across the group catalog.
// Groups with no matching item are dropped. Items whose name belongs to no
// group are excluded from analysis entirely; the count is logged so the gap
// stays visible.
func AssignItems(items []catalog.ReviewItem) []Assignment {
	assignments := make([]Assignment, 0, groupCount)
	matched := 0

	for _, group := range Groups() {
		members := make(map[string]bool, len(group.Items))
		for _, name := range group.Items {
			members[name] = true
		}

		var groupItems []catalog.ReviewItem
		var topics []string
		seenTopic := make(map[string]bool)

		for _, item := range items {
			if !members[item.Name] {
				continue
			}
			groupItems = append(groupItems, item)
			for _, topic := range item.RelatedTopics {
				if topic != "" && !seenTopic[topic] {
					seenTopic[topic] = true
					topics = append(topics, topic)
				}
			}
		}

		if len(groupItems) == 0 {
			continue
		}
		matched += len(groupItems)
		assignments = append(assignments, Assignment{Group: group, Items: groupItems, Topics: topics})
	}

	if dropped := len(items) - matched; dropped > 0 {
		klog.V(6).Infof("group assignment: %d items matched no group and were skipped", dropped)
	}
	return assignments
}

// ItemNames lists the names of the matched items, in matched order.
func (a Assignment) ItemNames() []string {
	names := make([]string, 0, len(a.Items))
	for _, item := range a.Items {
		names = append(names, item.Name)
	}
	return names
}
