// file: services/assignment_service_test.go
package services

import (
	"HackHub/models"
	"testing"
	"time"
)

func TestCheckResolveAssignment(t *testing.T) {
	pending := &models.AssignmentRequest{ID: 1, UserID: 5, Status: models.AssignmentStatusPending}
	accepted := &models.AssignmentRequest{ID: 2, UserID: 5, Status: models.AssignmentStatusAccepted}
	rejected := &models.AssignmentRequest{ID: 3, UserID: 5, Status: models.AssignmentStatusRejected}

	if d := CheckResolveAssignment(pending, 5); !d.Allowed {
		t.Fatalf("invitee resolves pending request, got %+v", d)
	}
	if d := CheckResolveAssignment(pending, 6); d.Allowed || d.Reason != ReasonForbidden {
		t.Fatalf("only the invitee may resolve, got %+v", d)
	}
	// 终态不可再变，accept 后再 reject 也不行
	if d := CheckResolveAssignment(accepted, 5); d.Allowed || d.Reason != ReasonAlreadyResolved {
		t.Fatalf("accepted is terminal, got %+v", d)
	}
	if d := CheckResolveAssignment(rejected, 5); d.Allowed || d.Reason != ReasonAlreadyResolved {
		t.Fatalf("rejected is terminal, got %+v", d)
	}
}

func TestMentorChatAllowed(t *testing.T) {
	judgingStart := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	judgingEnd := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	beforeJudging := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	duringJudging := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	afterEverything := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	h := &models.Hackathon{
		Status:       models.HackathonStatusPublished,
		JudgingStart: &judgingStart,
		JudgingEnd:   &judgingEnd,
	}

	if d := MentorChatAllowed(h, false, beforeJudging); d.Allowed || d.Reason != ReasonForbidden {
		t.Fatalf("pending assignment grants nothing, got %+v", d)
	}
	if d := MentorChatAllowed(h, true, beforeJudging); !d.Allowed {
		t.Fatalf("accepted mentor before judging start, got %+v", d)
	}
	// 评审一开始导师通道即切断
	if d := MentorChatAllowed(h, true, judgingStart); d.Allowed || d.Reason != ReasonMentorAccessExpired {
		t.Fatalf("cutoff at judging start is inclusive, got %+v", d)
	}
	if d := MentorChatAllowed(h, true, duringJudging); d.Allowed || d.Reason != ReasonMentorAccessExpired {
		t.Fatalf("during judging mentor access is gone, got %+v", d)
	}
	if d := MentorChatAllowed(h, true, afterEverything); d.Allowed || d.Reason != ReasonHackathonEnded {
		t.Fatalf("after the event everything is gone, got %+v", d)
	}

	// deadline-only 的评审窗口没有显式起点，不触发提前切断
	deadline := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	h2 := &models.Hackathon{Status: models.HackathonStatusPublished, JudgingDeadline: &deadline}
	if d := MentorChatAllowed(h2, true, duringJudging); !d.Allowed {
		t.Fatalf("deadline-only judging window must not cut mentors off early, got %+v", d)
	}

	// 从提交截止链出来的隐式评审起点同样不触发切断
	subDeadline := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	h4 := &models.Hackathon{
		Status:             models.HackathonStatusPublished,
		SubmissionDeadline: &subDeadline,
		JudgingDeadline:    &deadline,
	}
	if d := MentorChatAllowed(h4, true, duringJudging); !d.Allowed {
		t.Fatalf("chained judging start is not an explicit start, got %+v", d)
	}

	// 结果公布后一律结束
	h3 := &models.Hackathon{Status: models.HackathonStatusResultsPublished}
	if d := MentorChatAllowed(h3, true, beforeJudging); d.Allowed || d.Reason != ReasonHackathonEnded {
		t.Fatalf("results published ends mentor access, got %+v", d)
	}
}

func TestJudgeViewAllowed(t *testing.T) {
	judgingStart := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	judgingEnd := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	h := &models.Hackathon{
		Status:       models.HackathonStatusPublished,
		JudgingStart: &judgingStart,
		JudgingEnd:   &judgingEnd,
	}

	before := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	during := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	after := time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC)

	if d := JudgeViewAllowed(h, false, during); d.Allowed || d.Reason != ReasonForbidden {
		t.Fatalf("unaccepted judge sees nothing, got %+v", d)
	}
	if d := JudgeViewAllowed(h, true, before); d.Allowed || d.Reason != ReasonJudgingNotOpen {
		t.Fatalf("before window, got %+v", d)
	}
	if d := JudgeViewAllowed(h, true, during); !d.Allowed {
		t.Fatalf("accepted judge inside window, got %+v", d)
	}
	if d := JudgeViewAllowed(h, true, after); d.Allowed || d.Reason != ReasonJudgingNotOpen {
		t.Fatalf("after window, got %+v", d)
	}
}

func TestCheckRate(t *testing.T) {
	judgingStart := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	judgingEnd := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	h := &models.Hackathon{JudgingStart: &judgingStart, JudgingEnd: &judgingEnd}
	during := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	if d := CheckRate(h, true, [4]int{1, 10, 5, 7}, during); !d.Allowed {
		t.Fatalf("valid scores in window, got %+v", d)
	}
	if d := CheckRate(h, true, [4]int{0, 5, 5, 5}, during); d.Allowed {
		t.Fatalf("score below 1 must deny, got %+v", d)
	}
	if d := CheckRate(h, true, [4]int{5, 5, 5, 11}, during); d.Allowed {
		t.Fatalf("score above 10 must deny, got %+v", d)
	}
	if d := CheckRate(h, false, [4]int{5, 5, 5, 5}, during); d.Allowed || d.Reason != ReasonForbidden {
		t.Fatalf("unaccepted judge cannot rate, got %+v", d)
	}
}
