// file: services/access_service_test.go
package services

import (
	"HackHub/models"
	"testing"
	"time"
)

func accessHackathon() *models.Hackathon {
	return &models.Hackathon{
		Status:          models.HackathonStatusPublished,
		MaxTeamSize:     4,
		TeamRegStart:    tp(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)),
		TeamRegEnd:      tp(time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)),
		SubmissionStart: tp(time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)),
		SubmissionEnd:   tp(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)),
		JudgingStart:    tp(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)),
		JudgingEnd:      tp(time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)),
	}
}

func TestCanPerformDispatch(t *testing.T) {
	h := accessHackathon()
	team := &models.Team{ID: 10, LeaderID: 1}
	regOpen := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	subOpen := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	judging := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	leader := Actor{UserID: 1, TeamID: 10, IsLeader: true}
	member := Actor{UserID: 2, TeamID: 10}
	outsider := Actor{UserID: 3}
	organizer := Actor{UserID: 4, IsOrganizer: true}
	judge := Actor{UserID: 5, AcceptedJudge: true}
	mentor := Actor{UserID: 6, AcceptedMentor: true}

	tc := &TeamContext{Team: team, MemberCount: 2}

	tests := []struct {
		name       string
		action     Action
		actor      Actor
		tc         *TeamContext
		now        time.Time
		wantReason Reason
	}{
		{"create while free", ActionCreateTeam, outsider, nil, regOpen, ""},
		{"create while already in a team", ActionCreateTeam, member, nil, regOpen, ReasonAlreadyMember},
		{"join open team", ActionJoinTeam, outsider, tc, regOpen, ""},
		{"join without target team", ActionJoinTeam, outsider, nil, regOpen, ReasonForbidden},
		{"leave as member", ActionLeaveTeam, member, tc, regOpen, ""},
		{"leave as leader with others", ActionLeaveTeam, leader, tc, regOpen, ReasonLeaderMustTransfer},
		{"kick by leader", ActionKick, leader, &TeamContext{Team: team, TargetID: 2, TargetIsMember: true}, regOpen, ""},
		{"kick by outsider", ActionKick, outsider, &TeamContext{Team: team, TargetID: 2, TargetIsMember: true}, regOpen, ReasonForbidden},
		{"transfer by leader", ActionTransferLeadership, leader, &TeamContext{Team: team, TargetID: 2, TargetIsMember: true}, regOpen, ""},
		{"transfer by member", ActionTransferLeadership, member, &TeamContext{Team: team, TargetID: 2, TargetIsMember: true}, regOpen, ReasonNotLeader},
		{"lock by organizer", ActionLock, organizer, tc, regOpen, ""},
		{"unlock by member", ActionUnlock, member, tc, regOpen, ReasonForbidden},
		{"submit by leader in window", ActionSubmit, leader, tc, subOpen, ""},
		{"submit by member", ActionSubmit, member, tc, subOpen, ReasonNotLeader},
		{"update after window", ActionUpdateSubmission, leader, tc, judging, ReasonSubmissionWindowClosed},
		{"judge view in window", ActionJudgeView, judge, nil, judging, ""},
		{"judge view before window", ActionJudgeView, judge, nil, subOpen, ReasonJudgingNotOpen},
		{"rate without acceptance", ActionRate, outsider, nil, judging, ReasonForbidden},
		{"mentor chat before judging", ActionMentorChat, mentor, nil, regOpen, ""},
		{"mentor chat during judging", ActionMentorChat, mentor, nil, judging, ReasonMentorAccessExpired},
		{"unknown action denied", Action("drop-tables"), organizer, tc, regOpen, ReasonForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CanPerform(tt.action, h, tt.actor, tt.tc, tt.now)
			if d.Allowed != (tt.wantReason == "") || d.Reason != tt.wantReason {
				t.Fatalf("CanPerform(%s) = %+v, want reason %q", tt.action, d, tt.wantReason)
			}
		})
	}
}

func TestReasonCode(t *testing.T) {
	if got := ReasonCode(ReasonTeamFull); got != 3103 {
		t.Fatalf("ReasonCode(TeamFull) = %d, want 3103", got)
	}
	if got := ReasonCode(ReasonForbidden); got != 4003 {
		t.Fatalf("ReasonCode(Forbidden) = %d, want 4003", got)
	}
	if got := ReasonCode(Reason("nope")); got != 4003 {
		t.Fatalf("unknown reason falls back to 4003, got %d", got)
	}
}
