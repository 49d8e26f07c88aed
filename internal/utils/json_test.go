package utils

import "testing"

func TestExtractJSONFromWrappedResponse(t *testing.T) {
	content := "분석 결과는 다음과 같습니다:\n```json\n{\"results\": [{\"항목\": \"임금\"}]}\n```\n이상입니다."
	got := ExtractJSON(content)
	want := `{"results": [{"항목": "임금"}]}`
	if got != want {
		t.Fatalf("ExtractJSON = %q, want %q", got, want)
	}
}

func TestExtractJSONNestedBraces(t *testing.T) {
	content := `prefix {"a": {"b": 1}, "c": 2} suffix`
	got := ExtractJSON(content)
	if got != `{"a": {"b": 1}, "c": 2}` {
		t.Fatalf("ExtractJSON = %q", got)
	}
}

func TestExtractJSONNoObjectReturnsInput(t *testing.T) {
	content := "no json here"
	if got := ExtractJSON(content); got != content {
		t.Fatalf("ExtractJSON = %q, want input unchanged", got)
	}
}

func TestSafeUnmarshalSalvagesAndParses(t *testing.T) {
	var out struct {
		Results []struct {
			Item string `json:"항목"`
		} `json:"results"`
	}
	ok := SafeUnmarshal("앞설명 {\"results\": [{\"항목\": \"휴게시간\"}]} 뒷설명", &out)
	if !ok {
		t.Fatal("SafeUnmarshal returned false for salvageable content")
	}
	if len(out.Results) != 1 || out.Results[0].Item != "휴게시간" {
		t.Fatalf("unexpected parse result: %+v", out)
	}
}

func TestSafeUnmarshalLeavesOutUntouchedOnFailure(t *testing.T) {
	out := map[string]any{"seed": 1}
	if SafeUnmarshal("garbage without braces", &out) {
		t.Fatal("SafeUnmarshal returned true for garbage")
	}
	if _, ok := out["seed"]; !ok {
		t.Fatal("out was modified on failed parse")
	}
}
