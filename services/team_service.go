// file: services/team_service.go
package services

import (
	"HackHub/models"
	"time"
)

// 队伍生命周期与容量判定。
// 这里只有纯函数：快照数据由 controller 在事务内（必要时对队伍行加
// FOR UPDATE 锁）查询后传入，判定本身不碰数据库、不读全局时钟。

// CheckCreateTeam 建队前置判定。
// hasCategories: 该活动是否配置了赛道；solo 队伍永远不要求选赛道。
func CheckCreateTeam(h *models.Hackathon, hasCategories bool, categoryID *uint32, isSolo bool, now time.Time) Decision {
	if !IsRegistrationOpen(h, now) {
		return Deny(ReasonRegistrationClosed)
	}
	if hasCategories && !isSolo && categoryID == nil {
		return Deny(ReasonCategoryRequired)
	}
	return Allow()
}

// CheckCategoryCapacity 赛道队伍数上限判定，MaxTeams 为 0 表示不限。
// currentTeams 必须在对赛道行加锁后统计，否则并发建队可能超限。
func CheckCategoryCapacity(cat *models.Category, currentTeams int64) Decision {
	if cat.MaxTeams > 0 && currentTeams >= int64(cat.MaxTeams) {
		return Deny(ReasonCapacityExceeded)
	}
	return Allow()
}

// CheckJoinTeam 入队判定。memberCount 必须来自加锁后的统计（见 §并发）。
// solo 队伍无论是否锁定都拒绝加入；锁定只挡加入，不动现有成员。
func CheckJoinTeam(h *models.Hackathon, team *models.Team, memberCount int64, alreadyInTeam bool, now time.Time) Decision {
	if !IsRegistrationOpen(h, now) {
		return Deny(ReasonRegistrationClosed)
	}
	if alreadyInTeam {
		return Deny(ReasonAlreadyMember)
	}
	if team.IsSolo {
		return Deny(ReasonSoloTeam)
	}
	if team.IsLocked {
		return Deny(ReasonTeamLocked)
	}
	if memberCount >= int64(h.MaxTeamSize) {
		return Deny(ReasonTeamFull)
	}
	return Allow()
}

// CheckLeaveTeam 退队判定：队长在还有其他成员时必须先转让队长
func CheckLeaveTeam(isMember, isLeader bool, otherMemberCount int64) Decision {
	if !isMember {
		return Deny(ReasonNotAMember)
	}
	if isLeader && otherMemberCount > 0 {
		return Deny(ReasonLeaderMustTransfer)
	}
	return Allow()
}

// CheckKickMember 踢人判定：仅队长或该活动组织者/超管可操作，
// 且不能通过此路径移除队长本人。
func CheckKickMember(team *models.Team, actorID uint32, actorRoles models.RoleSet, actorIsOrganizer bool, targetID uint32, targetIsMember bool) Decision {
	privileged := actorID == team.LeaderID || actorIsOrganizer || actorRoles.Has(models.RoleSuperAdmin)
	if !privileged {
		return Deny(ReasonForbidden)
	}
	if targetID == team.LeaderID {
		return Deny(ReasonForbidden)
	}
	if !targetIsMember {
		return Deny(ReasonNotAMember)
	}
	return Allow()
}

// CheckTransferLeadership 队长转让判定：新队长必须已经是队员
func CheckTransferLeadership(team *models.Team, actorID uint32, newLeaderIsMember bool) Decision {
	if actorID != team.LeaderID {
		return Deny(ReasonNotLeader)
	}
	if !newLeaderIsMember {
		return Deny(ReasonNotAMember)
	}
	return Allow()
}

// CheckLockTeam 锁定/解锁判定：组织者或超管专属，与时间窗口无关
func CheckLockTeam(actorRoles models.RoleSet, actorIsOrganizer bool) Decision {
	if actorIsOrganizer || actorRoles.Has(models.RoleSuperAdmin) {
		return Allow()
	}
	return Deny(ReasonForbidden)
}
