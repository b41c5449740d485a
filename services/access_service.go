// file: services/access_service.go
package services

import (
	"HackHub/models"
	"time"
)

// 访问控制器：唯一的 allow/deny 决策入口。
// UI 与 API 都通过 CanPerform 判定，任何其他模块不得自行重算
// "窗口是否开放"或容量数学；这里也只做组合，不重新实现它们。

// Actor 认证用户在某场活动中的身份快照，由 auth/session 层与
// 持久层装配后传入，访问控制器本身无状态。
type Actor struct {
	UserID      uint32
	Roles       models.RoleSet
	IsOrganizer bool // 是否该活动的组织者（HackathonOrganizer 关联）

	TeamID   uint32 // 在该活动中所属队伍，0 表示未入队
	IsLeader bool

	AcceptedMentor bool // 对目标队伍是否持有已接受的导师指派
	AcceptedJudge  bool // 对目标队伍是否持有已接受的评委指派
}

// InTeam 是否已加入该活动的某支队伍
func (a Actor) InTeam() bool {
	return a.TeamID != 0
}

// TeamContext 动作目标队伍的状态快照。并发敏感的动作（join、submit）
// 由 controller 在加锁事务内重新取快照复查，这里的判定服务于 UI 预检
// 与非竞态路径。
type TeamContext struct {
	Team           *models.Team
	MemberCount    int64
	TargetID       uint32 // kick 目标 / transfer 的新队长
	TargetIsMember bool
}

// CanPerform 统一判定入口。未知动作一律拒绝，绝不默认放行。
func CanPerform(action Action, h *models.Hackathon, actor Actor, tc *TeamContext, now time.Time) Decision {
	switch action {
	case ActionCreateTeam:
		if actor.InTeam() {
			return Deny(ReasonAlreadyMember)
		}
		// 赛道必选性在建队事务内结合具体载荷复查
		return CheckCreateTeam(h, false, nil, false, now)

	case ActionJoinTeam:
		if tc == nil || tc.Team == nil {
			return Deny(ReasonForbidden)
		}
		return CheckJoinTeam(h, tc.Team, tc.MemberCount, actor.InTeam(), now)

	case ActionLeaveTeam:
		if tc == nil || tc.Team == nil {
			return Deny(ReasonNotAMember)
		}
		isMember := actor.TeamID == tc.Team.ID
		return CheckLeaveTeam(isMember, actor.IsLeader, tc.MemberCount-1)

	case ActionKick:
		if tc == nil || tc.Team == nil {
			return Deny(ReasonForbidden)
		}
		return CheckKickMember(tc.Team, actor.UserID, actor.Roles, actor.IsOrganizer, tc.TargetID, tc.TargetIsMember)

	case ActionTransferLeadership:
		if tc == nil || tc.Team == nil {
			return Deny(ReasonForbidden)
		}
		return CheckTransferLeadership(tc.Team, actor.UserID, tc.TargetIsMember)

	case ActionLock, ActionUnlock:
		return CheckLockTeam(actor.Roles, actor.IsOrganizer)

	case ActionSubmit, ActionUpdateSubmission:
		if tc == nil || tc.Team == nil {
			return Deny(ReasonForbidden)
		}
		return CheckSubmit(h, tc.Team, actor.UserID, now)

	case ActionRate, ActionJudgeView:
		return JudgeViewAllowed(h, actor.AcceptedJudge, now)

	case ActionMentorChat:
		return MentorChatAllowed(h, actor.AcceptedMentor, now)
	}

	return Deny(ReasonForbidden)
}
