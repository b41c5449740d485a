// file: dto/hackathon_test.go
package dto

import (
	"testing"
	"time"
)

func TestSaveHackathonReqWindowPairsValid(t *testing.T) {
	early := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	late := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  SaveHackathonReq
		want bool
	}{
		{"no windows", SaveHackathonReq{}, true},
		{"valid pair", SaveHackathonReq{TeamRegStart: &early, TeamRegEnd: &late}, true},
		{"reversed registration pair", SaveHackathonReq{TeamRegStart: &late, TeamRegEnd: &early}, false},
		{"reversed submission pair", SaveHackathonReq{SubmissionStart: &late, SubmissionEnd: &early}, false},
		{"reversed judging pair", SaveHackathonReq{JudgingStart: &late, JudgingEnd: &early}, false},
		{"half pair not checked here", SaveHackathonReq{TeamRegStart: &late}, true},
		{"deadline only", SaveHackathonReq{SubmissionDeadline: &late}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.WindowPairsValid(); got != tt.want {
				t.Fatalf("WindowPairsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSaveHackathonReqNormalize(t *testing.T) {
	r := SaveHackathonReq{NameCamel: "Spring Hack", MaxTeamSizeCamel: 6}
	r.Normalize()
	if r.Name != "Spring Hack" || r.MaxTeamSize != 6 {
		t.Fatalf("camelCase aliases not merged: %+v", r)
	}

	r2 := SaveHackathonReq{Name: "  Autumn Hack  "}
	r2.Normalize()
	if r2.Name != "Autumn Hack" {
		t.Fatalf("name not trimmed: %q", r2.Name)
	}
	if r2.MaxTeamSize != 4 {
		t.Fatalf("default max_team_size = %d, want 4", r2.MaxTeamSize)
	}
}
