// file: services/team_service_test.go
package services

import (
	"HackHub/models"
	"testing"
	"time"
)

func openHackathon() *models.Hackathon {
	return &models.Hackathon{
		Status:      models.HackathonStatusPublished,
		MaxTeamSize: 4,
		TeamRegStart: tp(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)),
		TeamRegEnd:   tp(time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)),
	}
}

var regOpenNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestCheckCreateTeam(t *testing.T) {
	h := openHackathon()
	catID := uint32(7)

	tests := []struct {
		name          string
		hasCategories bool
		categoryID    *uint32
		isSolo        bool
		now           time.Time
		wantReason    Reason
	}{
		{"open, no categories", false, nil, false, regOpenNow, ""},
		{"registration closed", false, nil, false, time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC), ReasonRegistrationClosed},
		{"category required", true, nil, false, regOpenNow, ReasonCategoryRequired},
		{"category chosen", true, &catID, false, regOpenNow, ""},
		{"solo never requires category", true, nil, true, regOpenNow, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CheckCreateTeam(h, tt.hasCategories, tt.categoryID, tt.isSolo, tt.now)
			if d.Allowed != (tt.wantReason == "") || d.Reason != tt.wantReason {
				t.Fatalf("got %+v, want reason %q", d, tt.wantReason)
			}
		})
	}
}

func TestCheckCreateTeamNoWindowConfigured(t *testing.T) {
	// 窗口未配置不等于放行
	h := &models.Hackathon{Status: models.HackathonStatusPublished, MaxTeamSize: 4}
	d := CheckCreateTeam(h, false, nil, false, regOpenNow)
	if d.Allowed || d.Reason != ReasonRegistrationClosed {
		t.Fatalf("unconfigured window must deny, got %+v", d)
	}
}

func TestCheckCategoryCapacity(t *testing.T) {
	limited := &models.Category{MaxTeams: 2}
	unlimited := &models.Category{MaxTeams: 0}

	if d := CheckCategoryCapacity(limited, 1); !d.Allowed {
		t.Fatalf("below cap should allow, got %+v", d)
	}
	if d := CheckCategoryCapacity(limited, 2); d.Allowed || d.Reason != ReasonCapacityExceeded {
		t.Fatalf("at cap should deny, got %+v", d)
	}
	if d := CheckCategoryCapacity(unlimited, 1000); !d.Allowed {
		t.Fatalf("MaxTeams=0 means unlimited, got %+v", d)
	}
}

// solo 队伍选了赛道同样占用名额：建队判定放行后，容量判定不区分 solo
func TestSoloTeamWithCategoryCountsTowardCap(t *testing.T) {
	h := openHackathon()
	catID := uint32(7)
	cat := &models.Category{ID: catID, MaxTeams: 2}

	if d := CheckCreateTeam(h, true, &catID, true, regOpenNow); !d.Allowed {
		t.Fatalf("solo team may pick a category, got %+v", d)
	}
	// 赛道里已有两支队伍（其中可以全是 solo），第三支被拒
	if d := CheckCategoryCapacity(cat, 2); d.Allowed || d.Reason != ReasonCapacityExceeded {
		t.Fatalf("cap applies to solo teams too, got %+v", d)
	}
}

func TestCheckJoinTeam(t *testing.T) {
	h := openHackathon()

	tests := []struct {
		name          string
		team          models.Team
		memberCount   int64
		alreadyInTeam bool
		now           time.Time
		wantReason    Reason
	}{
		{"happy path", models.Team{LeaderID: 1}, 2, false, regOpenNow, ""},
		{"registration closed", models.Team{LeaderID: 1}, 2, false, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), ReasonRegistrationClosed},
		{"already in a team", models.Team{LeaderID: 1}, 2, true, regOpenNow, ReasonAlreadyMember},
		{"solo team rejects regardless of lock", models.Team{LeaderID: 1, IsSolo: true}, 1, false, regOpenNow, ReasonSoloTeam},
		{"locked team", models.Team{LeaderID: 1, IsLocked: true}, 2, false, regOpenNow, ReasonTeamLocked},
		{"team full", models.Team{LeaderID: 1}, 4, false, regOpenNow, ReasonTeamFull},
		{"over full stays denied", models.Team{LeaderID: 1}, 5, false, regOpenNow, ReasonTeamFull},
		{"last seat still joinable", models.Team{LeaderID: 1}, 3, false, regOpenNow, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CheckJoinTeam(h, &tt.team, tt.memberCount, tt.alreadyInTeam, tt.now)
			if d.Allowed != (tt.wantReason == "") || d.Reason != tt.wantReason {
				t.Fatalf("got %+v, want reason %q", d, tt.wantReason)
			}
		})
	}
}

func TestCheckLeaveTeam(t *testing.T) {
	if d := CheckLeaveTeam(false, false, 0); d.Allowed || d.Reason != ReasonNotAMember {
		t.Fatalf("non-member cannot leave, got %+v", d)
	}
	if d := CheckLeaveTeam(true, true, 2); d.Allowed || d.Reason != ReasonLeaderMustTransfer {
		t.Fatalf("leader with members must transfer first, got %+v", d)
	}
	if d := CheckLeaveTeam(true, true, 0); !d.Allowed {
		t.Fatalf("sole leader may leave, got %+v", d)
	}
	if d := CheckLeaveTeam(true, false, 3); !d.Allowed {
		t.Fatalf("ordinary member may leave, got %+v", d)
	}
}

func TestCheckKickMember(t *testing.T) {
	team := &models.Team{ID: 10, LeaderID: 1}
	none := models.RoleSet{}
	admin := models.RoleSet{models.RoleSuperAdmin}

	tests := []struct {
		name           string
		actorID        uint32
		roles          models.RoleSet
		organizer      bool
		targetID       uint32
		targetIsMember bool
		wantReason     Reason
	}{
		{"leader kicks member", 1, none, false, 2, true, ""},
		{"organizer kicks member", 9, none, true, 2, true, ""},
		{"super admin kicks member", 9, admin, false, 2, true, ""},
		{"random member cannot kick", 3, none, false, 2, true, ReasonForbidden},
		{"cannot kick the leader", 1, none, false, 1, true, ReasonForbidden},
		{"target not a member", 1, none, false, 5, false, ReasonNotAMember},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CheckKickMember(team, tt.actorID, tt.roles, tt.organizer, tt.targetID, tt.targetIsMember)
			if d.Allowed != (tt.wantReason == "") || d.Reason != tt.wantReason {
				t.Fatalf("got %+v, want reason %q", d, tt.wantReason)
			}
		})
	}
}

func TestCheckTransferLeadership(t *testing.T) {
	team := &models.Team{ID: 10, LeaderID: 1}

	if d := CheckTransferLeadership(team, 2, true); d.Allowed || d.Reason != ReasonNotLeader {
		t.Fatalf("non-leader cannot transfer, got %+v", d)
	}
	if d := CheckTransferLeadership(team, 1, false); d.Allowed || d.Reason != ReasonNotAMember {
		t.Fatalf("new leader must be a member, got %+v", d)
	}
	if d := CheckTransferLeadership(team, 1, true); !d.Allowed {
		t.Fatalf("leader transfers to member, got %+v", d)
	}
}

func TestCheckLockTeam(t *testing.T) {
	if d := CheckLockTeam(models.RoleSet{models.RoleParticipant}, false); d.Allowed {
		t.Fatalf("participant cannot lock, got %+v", d)
	}
	if d := CheckLockTeam(models.RoleSet{}, true); !d.Allowed {
		t.Fatalf("organizer may lock, got %+v", d)
	}
	if d := CheckLockTeam(models.RoleSet{models.RoleSuperAdmin}, false); !d.Allowed {
		t.Fatalf("super admin may lock, got %+v", d)
	}
}
