package controller

import (
	"testing"

	"github.com/bytedance/sonic"
)

func TestFlexIDUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"string id", `{"challengeId":"5"}`, "5"},
		{"numeric id", `{"challengeId":5}`, "5"},
		{"large numeric id", `{"challengeId":1204}`, "1204"},
		{"null id", `{"challengeId":null}`, ""},
		{"missing id", `{}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req checkAccessRequest
			if err := sonic.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if string(req.ChallengeID) != tt.want {
				t.Errorf("ChallengeID = %q, want %q", req.ChallengeID, tt.want)
			}
		})
	}
}
