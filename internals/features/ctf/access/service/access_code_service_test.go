package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"cyberku_backend/internals/features/ctf/playground/model"
)

type fakeFinder struct {
	challenges map[string]*model.CTFChallengeModel
	err        error
}

func (f *fakeFinder) FindByID(_ context.Context, id string) (*model.CTFChallengeModel, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.challenges[id], nil
}

func newFinder(challenges ...*model.CTFChallengeModel) *fakeFinder {
	m := make(map[string]*model.CTFChallengeModel, len(challenges))
	for _, ch := range challenges {
		m[strconv.FormatUint(uint64(ch.ID), 10)] = ch
	}
	return &fakeFinder{challenges: m}
}

func TestClassifyCode(t *testing.T) {
	tests := []struct {
		name        string
		code        string
		challengeID string
		want        CodeFormat
	}{
		{"legacy prefix with matching id", "CR-7", "7", FormatLegacyNumeric},
		{"legacy prefix with other id", "CR-7", "8", FormatUnrecognized},
		{"three underscore parts", "user@mail.com_abc_tag", "1", FormatComposite3},
		{"two parts numeric second", "SOMECODE_12", "12", FormatComposite2},
		{"two parts non-numeric second", "SOMECODE_abc", "12", FormatUnrecognized},
		{"plain word", "FLAGCODE", "3", FormatUnrecognized},
		{"four parts", "a_b_c_d", "3", FormatUnrecognized},
		{"empty", "", "3", FormatUnrecognized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyCode(tt.code, tt.challengeID)
			if got != tt.want {
				t.Errorf("ClassifyCode(%q, %q) = %s, want %s", tt.code, tt.challengeID, got, tt.want)
			}
		})
	}
}

func TestCheckAccess(t *testing.T) {
	ch := func(id uint, code string) *model.CTFChallengeModel {
		return &model.CTFChallengeModel{ID: id, Title: "Challenge", AccessCode: code}
	}

	tests := []struct {
		name        string
		finder      *fakeFinder
		code        string
		challengeID string
		wantGranted bool
		wantReason  string
	}{
		{
			name:        "exact stored code grants",
			finder:      newFinder(ch(1, "SECRET-99")),
			code:        "SECRET-99",
			challengeID: "1",
			wantGranted: true,
		},
		{
			name:        "stored code is case sensitive",
			finder:      newFinder(ch(1, "SECRET-99")),
			code:        "secret-99",
			challengeID: "1",
			wantGranted: false,
			wantReason:  deniedMessage,
		},
		{
			name:        "legacy CR code grants",
			finder:      newFinder(ch(4, "SOMETHING")),
			code:        "CR-4",
			challengeID: "4",
			wantGranted: true,
		},
		{
			name:        "legacy CR code for other challenge denies",
			finder:      newFinder(ch(4, "SOMETHING")),
			code:        "CR-5",
			challengeID: "4",
			wantGranted: false,
			wantReason:  deniedMessage,
		},
		{
			name:        "composite3 third part matches stored code",
			finder:      newFinder(ch(2, "abc123")),
			code:        "user@mail.com_x_abc123",
			challengeID: "2",
			wantGranted: true,
		},
		{
			name:        "composite3 third part mismatch denies without falling through",
			finder:      newFinder(ch(2, "abc123")),
			code:        "user@mail.com_x_wrong",
			challengeID: "2",
			wantGranted: false,
			wantReason:  deniedMessage,
		},
		{
			name:        "composite2 numeric suffix matches challenge id",
			finder:      newFinder(ch(12, "whatever")),
			code:        "TEAMCODE_12",
			challengeID: "12",
			wantGranted: true,
		},
		{
			name:        "composite2 numeric suffix wrong id denies",
			finder:      newFinder(ch(12, "whatever")),
			code:        "TEAMCODE_13",
			challengeID: "12",
			wantGranted: false,
			wantReason:  deniedMessage,
		},
		{
			name:        "allow-list entry grants",
			finder:      newFinder(ch(5, "stored")),
			code:        "WORKSHOP-BATCH1",
			challengeID: "5",
			wantGranted: true,
		},
		{
			name:        "allow-list entry for other challenge denies",
			finder:      newFinder(ch(3, "stored")),
			code:        "WORKSHOP-BATCH1",
			challengeID: "3",
			wantGranted: false,
			wantReason:  deniedMessage,
		},
		{
			name:        "unrecognized code denies",
			finder:      newFinder(ch(1, "stored")),
			code:        "random-guess",
			challengeID: "1",
			wantGranted: false,
			wantReason:  deniedMessage,
		},
		{
			name:        "unknown challenge denies with its own reason",
			finder:      newFinder(),
			code:        "anything",
			challengeID: "999",
			wantGranted: false,
			wantReason:  "Challenge tidak ditemukan",
		},
		{
			name:        "composite3 empty third part never matches empty stored code",
			finder:      newFinder(ch(2, "")),
			code:        "a_b_",
			challengeID: "2",
			wantGranted: false,
			wantReason:  deniedMessage,
		},
		{
			name:        "empty stored code never matches empty submission",
			finder:      newFinder(ch(1, "")),
			code:        "",
			challengeID: "1",
			wantGranted: false,
			wantReason:  deniedMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewAccessValidator(tt.finder)
			got, err := v.CheckAccess(context.Background(), tt.code, tt.challengeID)
			if err != nil {
				t.Fatalf("CheckAccess returned error: %v", err)
			}
			if got.Granted != tt.wantGranted {
				t.Errorf("Granted = %v, want %v", got.Granted, tt.wantGranted)
			}
			if !tt.wantGranted && got.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", got.Reason, tt.wantReason)
			}
			if tt.wantGranted && got.Challenge == nil {
				t.Error("granted decision should carry the challenge")
			}
		})
	}
}

func TestCheckAccessStorageError(t *testing.T) {
	boom := errors.New("connection refused")
	v := NewAccessValidator(&fakeFinder{err: boom})

	_, err := v.CheckAccess(context.Background(), "CR-1", "1")
	if !errors.Is(err, boom) {
		t.Fatalf("expected storage error to propagate, got %v", err)
	}
}
