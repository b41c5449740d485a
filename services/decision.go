// file: services/decision.go
package services

// Action 是访问控制器可判定的动作枚举
type Action string

const (
	ActionCreateTeam         Action = "create-team"
	ActionJoinTeam           Action = "join-team"
	ActionLeaveTeam          Action = "leave-team"
	ActionKick               Action = "kick"
	ActionTransferLeadership Action = "transfer-leadership"
	ActionLock               Action = "lock"
	ActionUnlock             Action = "unlock"
	ActionSubmit             Action = "submit"
	ActionUpdateSubmission   Action = "update-submission"
	ActionRate               Action = "rate"
	ActionMentorChat         Action = "mentor-chat"
	ActionJudgeView          Action = "judge-view"
)

// Reason 是拒绝原因码，属于预期内的业务结果，不是异常
type Reason string

const (
	ReasonRegistrationClosed     Reason = "RegistrationClosed"
	ReasonTeamLocked             Reason = "TeamLocked"
	ReasonTeamFull               Reason = "TeamFull"
	ReasonSoloTeam               Reason = "SoloTeam"
	ReasonAlreadyMember          Reason = "AlreadyMember"
	ReasonNotAMember             Reason = "NotAMember"
	ReasonLeaderMustTransfer     Reason = "LeaderMustTransfer"
	ReasonForbidden              Reason = "Forbidden"
	ReasonNotLeader              Reason = "NotLeader"
	ReasonSubmissionWindowClosed Reason = "SubmissionWindowClosed"
	ReasonAlreadySubmitted       Reason = "AlreadySubmitted"
	ReasonCategoryRequired       Reason = "CategoryRequired"
	ReasonAlreadyResolved        Reason = "AlreadyResolved"
	ReasonCapacityExceeded       Reason = "CapacityExceeded"
	ReasonJudgingNotOpen         Reason = "JudgingNotOpen"
	ReasonHackathonEnded         Reason = "HackathonEnded"
	ReasonMentorAccessExpired    Reason = "MentorAccessExpired"
)

// Decision 是所有判定函数的统一返回值：Allow 或 Deny(reason)。
// 预期内的策略拒绝一律走 Decision，不走 error。
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  Reason `json:"reason,omitempty"`
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(r Reason) Decision {
	return Decision{Allowed: false, Reason: r}
}

// 拒绝原因 → 应用层错误码的映射，controller 统一使用
var reasonCodes = map[Reason]int{
	ReasonRegistrationClosed:     3101,
	ReasonTeamLocked:             3102,
	ReasonTeamFull:               3103,
	ReasonSoloTeam:               3104,
	ReasonAlreadyMember:          3105,
	ReasonNotAMember:             3106,
	ReasonLeaderMustTransfer:     3107,
	ReasonNotLeader:              3108,
	ReasonSubmissionWindowClosed: 3109,
	ReasonAlreadySubmitted:       3110,
	ReasonCategoryRequired:       3111,
	ReasonAlreadyResolved:        3112,
	ReasonCapacityExceeded:       3113,
	ReasonJudgingNotOpen:         3114,
	ReasonHackathonEnded:         3115,
	ReasonMentorAccessExpired:    3116,
	ReasonForbidden:              4003,
}

// ReasonCode 返回原因码对应的应用层错误码，未知原因按 Forbidden 处理
func ReasonCode(r Reason) int {
	if code, ok := reasonCodes[r]; ok {
		return code
	}
	return 4003
}
