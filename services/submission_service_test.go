// file: services/submission_service_test.go
package services

import (
	"HackHub/models"
	"testing"
	"time"
)

func sp(s string) *string {
	return &s
}

func submissionHackathon() *models.Hackathon {
	return &models.Hackathon{
		Status:          models.HackathonStatusPublished,
		MaxTeamSize:     4,
		SubmissionStart: tp(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)),
		SubmissionEnd:   tp(time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)),
	}
}

func TestCheckSubmit(t *testing.T) {
	h := submissionHackathon()
	team := &models.Team{ID: 10, LeaderID: 1}
	inWindow := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	afterWindow := time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)

	if d := CheckSubmit(h, team, 1, inWindow); !d.Allowed {
		t.Fatalf("leader in window should submit, got %+v", d)
	}
	if d := CheckSubmit(h, team, 2, inWindow); d.Allowed || d.Reason != ReasonNotLeader {
		t.Fatalf("non-leader cannot submit, got %+v", d)
	}
	// 窗口关闭后队长也不行
	if d := CheckSubmit(h, team, 1, afterWindow); d.Allowed || d.Reason != ReasonSubmissionWindowClosed {
		t.Fatalf("closed window must deny even the leader, got %+v", d)
	}
	// deadline-only 窗口
	h2 := &models.Hackathon{SubmissionDeadline: tp(time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC))}
	if d := CheckSubmit(h2, team, 1, inWindow); !d.Allowed {
		t.Fatalf("before deadline should allow, got %+v", d)
	}
	if d := CheckSubmit(h2, team, 1, afterWindow); d.Allowed {
		t.Fatalf("after deadline should deny, got %+v", d)
	}
}

func TestValidateCreatePayload(t *testing.T) {
	tests := []struct {
		name string
		p    SubmissionPayload
		want bool
	}{
		{"all required present", SubmissionPayload{Title: sp("demo"), GithubURL: sp("https://github.com/x/y"), VideoURL: sp("https://v/1")}, true},
		{"missing github", SubmissionPayload{Title: sp("demo"), VideoURL: sp("https://v/1")}, false},
		{"missing video", SubmissionPayload{Title: sp("demo"), GithubURL: sp("https://github.com/x/y")}, false},
		{"missing title", SubmissionPayload{GithubURL: sp("https://github.com/x/y"), VideoURL: sp("https://v/1")}, false},
		{"empty string counts as missing", SubmissionPayload{Title: sp("demo"), GithubURL: sp(""), VideoURL: sp("https://v/1")}, false},
		{"optional fields not required", SubmissionPayload{Title: sp("demo"), GithubURL: sp("g"), VideoURL: sp("v"), DemoURL: nil}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateCreatePayload(tt.p); got != tt.want {
				t.Fatalf("ValidateCreatePayload() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyPayloadMerge(t *testing.T) {
	s := models.Submission{
		TeamID:      10,
		Title:       "v1",
		Description: "first cut",
		GithubURL:   "https://github.com/x/y",
		VideoURL:    "https://v/1",
		DemoURL:     "https://demo/1",
	}

	// 第二次提交只带部分字段：nil 字段保留，非 nil 覆盖
	ApplyPayload(&s, SubmissionPayload{
		Title:    sp("v2"),
		VideoURL: sp("https://v/2"),
	})

	if s.Title != "v2" || s.VideoURL != "https://v/2" {
		t.Fatalf("provided fields must overwrite, got %+v", s)
	}
	if s.GithubURL != "https://github.com/x/y" || s.Description != "first cut" || s.DemoURL != "https://demo/1" {
		t.Fatalf("omitted fields must be preserved, got %+v", s)
	}

	// 可选字段允许显式置空
	ApplyPayload(&s, SubmissionPayload{DemoURL: sp("")})
	if s.DemoURL != "" {
		t.Fatalf("explicit empty must clear optional field, got %q", s.DemoURL)
	}

	if !ValidateRequiredFields(&s) {
		t.Fatal("required fields survived the merge, validation should pass")
	}
}

func TestApplyPayloadIdempotent(t *testing.T) {
	p := SubmissionPayload{Title: sp("demo"), GithubURL: sp("g"), VideoURL: sp("v")}

	team := &models.Team{ID: 10, HackathonID: 3}
	s := NewSubmission(team, 1, p)
	if s.TeamID != 10 || s.HackathonID != 3 || s.SubmittedBy != 1 {
		t.Fatalf("NewSubmission wiring wrong: %+v", s)
	}

	before := s
	ApplyPayload(&s, p)
	if s.Title != before.Title || s.Description != before.Description ||
		s.GithubURL != before.GithubURL || s.VideoURL != before.VideoURL || s.DemoURL != before.DemoURL {
		t.Fatalf("re-applying the same payload must not change the record: %+v vs %+v", s, before)
	}
}

func TestCheckAttachmentSlot(t *testing.T) {
	for slot, want := range map[uint8]bool{0: false, 1: true, 2: true, 3: false} {
		if got := CheckAttachmentSlot(slot); got != want {
			t.Fatalf("CheckAttachmentSlot(%d) = %v, want %v", slot, got, want)
		}
	}
}
