// file: services/assignment_service.go
package services

import (
	"HackHub/models"
	"time"
)

// 导师/评委指派的状态机与派生访问权。
// 指派请求 pending → accepted | rejected，终态后不可再变。

// CheckResolveAssignment 接受/拒绝指派的判定：只有被邀请人本人能处理
func CheckResolveAssignment(req *models.AssignmentRequest, actorID uint32) Decision {
	if req.UserID != actorID {
		return Deny(ReasonForbidden)
	}
	if req.Resolved() {
		return Deny(ReasonAlreadyResolved)
	}
	return Allow()
}

// MentorChatAllowed 导师对队伍沟通渠道的访问权：
// 已接受指派，且评审尚未开始（只认主办方显式配置的评审起点；deadline-only
// 的评审窗口从上一阶段链出来的隐式起点不触发提前切断），且活动未结束。
func MentorChatAllowed(h *models.Hackathon, accepted bool, now time.Time) Decision {
	if !accepted {
		return Deny(ReasonForbidden)
	}
	if HasEnded(h, now) {
		return Deny(ReasonHackathonEnded)
	}
	if start := judgingConfig(h).ExplicitStart(); start != nil && !now.Before(*start) {
		return Deny(ReasonMentorAccessExpired)
	}
	return Allow()
}

// JudgeViewAllowed 评委对队伍提交的访问权：
// 已接受指派且评审窗口开放；窗口外即使已接受也看不到可评内容。
func JudgeViewAllowed(h *models.Hackathon, accepted bool, now time.Time) Decision {
	if !accepted {
		return Deny(ReasonForbidden)
	}
	if !IsJudgingOpen(h, now) {
		return Deny(ReasonJudgingNotOpen)
	}
	return Allow()
}

// CheckRate 评委打分判定：在 JudgeViewAllowed 基础上，分值必须在 [1,10]
func CheckRate(h *models.Hackathon, accepted bool, scores [4]int, now time.Time) Decision {
	if d := JudgeViewAllowed(h, accepted, now); !d.Allowed {
		return d
	}
	for _, s := range scores {
		if s < 1 || s > 10 {
			return Deny(ReasonForbidden)
		}
	}
	return Allow()
}
