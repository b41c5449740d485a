// file: services/timeline_service_test.go
package services

import (
	"HackHub/models"
	"testing"
	"time"
)

func tp(t time.Time) *time.Time {
	return &t
}

var (
	t0900 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	t1000 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t1100 = time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
	t1200 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	t1300 = time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)
)

func TestWindowResolve(t *testing.T) {
	tests := []struct {
		name   string
		w      Window
		wantOK bool
	}{
		{"explicit pair", Window{Start: tp(t1000), End: tp(t1200)}, true},
		{"deadline only", Window{Deadline: tp(t1200)}, true},
		{"unconfigured", Window{}, false},
		{"start after end", Window{Start: tp(t1200), End: tp(t1000)}, false},
		{"start with deadline", Window{Start: tp(t1000), Deadline: tp(t1200)}, true},
		{"start after deadline", Window{Start: tp(t1200), Deadline: tp(t1000)}, false},
		{"start only", Window{Start: tp(t1000)}, false},
		{"end only ignored without start", Window{End: tp(t1200)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := tt.w.Resolve()
			if ok != tt.wantOK {
				t.Fatalf("Resolve() ok = %v, want %v", ok, tt.wantOK)
			}
		})
	}
}

func TestWindowContains(t *testing.T) {
	tests := []struct {
		name string
		w    Window
		now  time.Time
		want bool
	}{
		{"inside explicit pair", Window{Start: tp(t1000), End: tp(t1200)}, t1100, true},
		{"before explicit start", Window{Start: tp(t1000), End: tp(t1200)}, t0900, false},
		{"after explicit end", Window{Start: tp(t1000), End: tp(t1200)}, t1300, false},
		{"at start inclusive", Window{Start: tp(t1000), End: tp(t1200)}, t1000, true},
		{"at end inclusive", Window{Start: tp(t1000), End: tp(t1200)}, t1200, true},
		{"deadline only, before", Window{Deadline: tp(t1200)}, t0900, true},
		{"deadline only, at deadline", Window{Deadline: tp(t1200)}, t1200, true},
		{"deadline only, after", Window{Deadline: tp(t1200)}, t1300, false},
		{"unconfigured never open", Window{}, t1100, false},
		{"malformed never open", Window{Start: tp(t1200), End: tp(t1000)}, t1100, false},
		{"pair wins over deadline", Window{Start: tp(t1000), End: tp(t1100), Deadline: tp(t1300)}, t1200, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.w.Contains(tt.now); got != tt.want {
				t.Fatalf("Contains(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestWindowExplicitStart(t *testing.T) {
	if got := (Window{Deadline: tp(t1200)}).ExplicitStart(); got != nil {
		t.Fatalf("deadline-only window should have no explicit start, got %v", got)
	}
	w := Window{Start: tp(t1000), End: tp(t1200)}
	if got := w.ExplicitStart(); got == nil || !got.Equal(t1000) {
		t.Fatalf("ExplicitStart() = %v, want %v", got, t1000)
	}
	// 起点 + deadline 的配置也有显式起点
	w2 := Window{Start: tp(t1000), Deadline: tp(t1200)}
	if got := w2.ExplicitStart(); got == nil || !got.Equal(t1000) {
		t.Fatalf("ExplicitStart() = %v, want %v", got, t1000)
	}
}

// 三类窗口都只配置 deadline 时，各阶段依次衔接：
// 报名截止前提交不开放，提交截止前评审不开放。
func TestDeadlineOnlyWindowsChain(t *testing.T) {
	regDeadline := t1000     // T1
	subDeadline := t1200     // T2
	judgingDeadline := t1300 // T3

	h := &models.Hackathon{
		Status:             models.HackathonStatusPublished,
		TeamRegDeadline:    tp(regDeadline),
		SubmissionDeadline: tp(subDeadline),
		JudgingDeadline:    tp(judgingDeadline),
	}

	tests := []struct {
		name                     string
		now                      time.Time
		regOpen, subOpen, jdOpen bool
	}{
		{"before T1 only registration open", t0900, true, false, false},
		{"at T1 registration still open", t1000, true, true, false},
		{"between T1 and T2 only submission open", t1100, false, true, false},
		{"at T2 submission still open", t1200, false, true, true},
		{"between T2 and T3 only judging open", time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC), false, false, true},
		{"after T3 everything closed", time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC), false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRegistrationOpen(h, tt.now); got != tt.regOpen {
				t.Errorf("IsRegistrationOpen = %v, want %v", got, tt.regOpen)
			}
			if got := IsSubmissionOpen(h, tt.now); got != tt.subOpen {
				t.Errorf("IsSubmissionOpen = %v, want %v", got, tt.subOpen)
			}
			if got := IsJudgingOpen(h, tt.now); got != tt.jdOpen {
				t.Errorf("IsJudgingOpen = %v, want %v", got, tt.jdOpen)
			}
		})
	}

	if HasEnded(h, t1100) {
		t.Fatal("not ended before the last deadline")
	}
	if !HasEnded(h, time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)) {
		t.Fatal("ended after the last deadline")
	}
}

// 仅提交 deadline 配置、报名窗口缺失时不链接隐式起点，区间仍为 (-∞, deadline]
func TestDeadlineOnlySubmissionWithoutRegistration(t *testing.T) {
	h := &models.Hackathon{SubmissionDeadline: tp(t1200)}
	if !IsSubmissionOpen(h, t0900) {
		t.Fatal("no registration window to chain from, deadline-only stays open until the deadline")
	}
	if IsSubmissionOpen(h, t1300) {
		t.Fatal("closed after the deadline")
	}
}

func TestIsSubmissionOpenIgnoresStatus(t *testing.T) {
	// 主办方把 status 改成 submission_closed 不能让未到期的窗口失效
	h := &models.Hackathon{
		Status:        models.HackathonStatusSubmissionClosed,
		SubmissionEnd: tp(t1200), SubmissionStart: tp(t1000),
	}
	if !IsSubmissionOpen(h, t1100) {
		t.Fatal("submission window still open, status must not close it early")
	}
	// 反之 status 也不能重开已过期的窗口
	h2 := &models.Hackathon{
		Status:          models.HackathonStatusPublished,
		SubmissionStart: tp(t1000), SubmissionEnd: tp(t1100),
	}
	if IsSubmissionOpen(h2, t1200) {
		t.Fatal("submission window passed, status must not reopen it")
	}
}

func TestHasEnded(t *testing.T) {
	tests := []struct {
		name string
		h    *models.Hackathon
		now  time.Time
		want bool
	}{
		{
			"results published ends regardless of windows",
			&models.Hackathon{Status: models.HackathonStatusResultsPublished, JudgingEnd: tp(t1300), JudgingStart: tp(t1000)},
			t1100, true,
		},
		{
			"after judging end",
			&models.Hackathon{Status: models.HackathonStatusJudging, JudgingStart: tp(t1000), JudgingEnd: tp(t1100)},
			t1200, true,
		},
		{
			"judging still open",
			&models.Hackathon{Status: models.HackathonStatusJudging, JudgingStart: tp(t1000), JudgingEnd: tp(t1300)},
			t1100, false,
		},
		{
			"falls back to submission window when judging unconfigured",
			&models.Hackathon{Status: models.HackathonStatusPublished, SubmissionDeadline: tp(t1100)},
			t1200, true,
		},
		{
			"no windows configured never ends by time",
			&models.Hackathon{Status: models.HackathonStatusPublished},
			t1300, false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasEnded(tt.h, tt.now); got != tt.want {
				t.Fatalf("HasEnded() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluatePhase(t *testing.T) {
	windows := models.Hackathon{
		Status:          models.HackathonStatusPublished,
		TeamRegStart:    tp(t0900),
		TeamRegEnd:      tp(t1000),
		SubmissionStart: tp(t1000),
		SubmissionEnd:   tp(t1100),
		JudgingStart:    tp(t1200),
		JudgingEnd:      tp(t1300),
	}

	tests := []struct {
		name string
		h    models.Hackathon
		now  time.Time
		want Phase
	}{
		{"draft wins over windows", func() models.Hackathon { h := windows; h.Status = models.HackathonStatusDraft; return h }(), t0900, PhaseDraft},
		{"results published wins over windows", func() models.Hackathon { h := windows; h.Status = models.HackathonStatusResultsPublished; return h }(), t0900, PhaseResultsPublished},
		{"registration open", windows, t0900, PhasePublished},
		{"registration closed, submission still open", windows, time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC), PhaseRegistrationClosed},
		{"submission passed", windows, time.Date(2026, 3, 1, 11, 30, 0, 0, time.UTC), PhaseSubmissionClosed},
		{"judging open", windows, time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC), PhaseJudging},
		{"judging passed, status still wrong", windows, time.Date(2026, 3, 1, 13, 30, 0, 0, time.UTC), PhaseSubmissionClosed},
		{
			"registration passed, nothing else configured",
			models.Hackathon{Status: models.HackathonStatusPublished, TeamRegDeadline: tp(t1000)},
			t1100, PhaseRegistrationClosed,
		},
		{
			"no windows at all",
			models.Hackathon{Status: models.HackathonStatusPublished},
			t1100, PhasePublished,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluatePhase(&tt.h, tt.now); got != tt.want {
				t.Fatalf("EvaluatePhase() = %q, want %q", got, tt.want)
			}
		})
	}
}
