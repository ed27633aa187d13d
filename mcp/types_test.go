/*
Copyright 2026 The issueagent Authors
SPDX-License-Identifier: Apache-2.0
*/

package mcp

import (
	"encoding/json"
	"testing"
)

func TestSplitRepository(t *testing.T) {
	for _, tc := range []struct {
		repository string
		owner      string
		repo       string
		wantErr    bool
	}{
		{"octo/widgets", "octo", "widgets", false},
		{"octo", "", "", true},
		{"octo/", "", "", true},
		{"/widgets", "", "", true},
		{"octo/widgets/extra", "", "", true},
		{"", "", "", true},
	} {
		owner, repo, err := SplitRepository(tc.repository)
		if (err != nil) != tc.wantErr {
			t.Errorf("SplitRepository(%q) error = %v, wantErr %t", tc.repository, err, tc.wantErr)
			continue
		}
		if owner != tc.owner || repo != tc.repo {
			t.Errorf("SplitRepository(%q) = (%q, %q), want (%q, %q)", tc.repository, owner, repo, tc.owner, tc.repo)
		}
	}
}

func TestIssueValidate(t *testing.T) {
	for _, tc := range []struct {
		name    string
		issue   Issue
		wantErr bool
	}{
		{"valid open", Issue{Number: 1, State: "open"}, false},
		{"valid closed", Issue{Number: 2, State: "closed"}, false},
		{"zero number", Issue{Number: 0, State: "open"}, true},
		{"negative number", Issue{Number: -3, State: "open"}, true},
		{"unknown state", Issue{Number: 4, State: "pending"}, true},
		{"empty state", Issue{Number: 5}, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.issue.Validate(); (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %t", err, tc.wantErr)
			}
		})
	}
}

func TestIssueHasLabel(t *testing.T) {
	issue := Issue{Number: 1, State: "open", Labels: []Label{{Name: "ai-task"}, {Name: "bug"}}}
	if !issue.HasLabel("ai-task") {
		t.Error("HasLabel(ai-task) = false, want true")
	}
	if issue.HasLabel("enhancement") {
		t.Error("HasLabel(enhancement) = true, want false")
	}
}

func TestResponseEnvelopeInvariant(t *testing.T) {
	for _, resp := range []Response{
		ResultResponse(SuccessResult{Success: true}),
		ErrorResponse("boom"),
		ResultResponse(func() {}), // unmarshalable result degrades to an error envelope
	} {
		raw, err := json.Marshal(resp)
		if err != nil {
			t.Fatalf("marshaling response: %v", err)
		}
		var decoded map[string]json.RawMessage
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("unmarshaling response: %v", err)
		}
		_, hasResult := decoded["result"]
		_, hasError := decoded["error"]
		if hasResult == hasError {
			t.Errorf("envelope %s must carry exactly one of result or error", raw)
		}
	}
}
