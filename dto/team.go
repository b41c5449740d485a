// file: dto/team.go
package dto

import "strings"

// CreateTeamReq 建队载荷。isSolo 为 true 表示个人参赛：
// 队伍只有队长一人，永远拒绝加入，且不要求选择赛道。
type CreateTeamReq struct {
	HackathonID  uint32  `json:"hackathon_id" binding:"required"`
	TeamName     string  `json:"team_name" binding:"required"`
	TeamDescribe string  `json:"team_describe"`
	CategoryID   *uint32 `json:"category_id"`
	IsSolo       bool    `json:"is_solo"`

	// 兼容旧客户端别名
	IsSoloCamel bool `json:"isSolo"`
}

func (r *CreateTeamReq) Normalize() {
	if !r.IsSolo && r.IsSoloCamel {
		r.IsSolo = r.IsSoloCamel
	}
	r.TeamName = strings.TrimSpace(r.TeamName)
}

type JoinTeamReq struct {
	InvitationCode string `json:"invitation_code" binding:"required"`
}

type TransferLeadershipReq struct {
	NewLeaderID uint32 `json:"new_leader_id" binding:"required"`
}

// TeamMemberResp 队伍成员列表项
type TeamMemberResp struct {
	UserID   uint32 `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	JoinedAt string `json:"joined_at"`
}

type TeamDetailResp struct {
	ID             uint32           `json:"id"`
	HackathonID    uint32           `json:"hackathon_id"`
	TeamName       string           `json:"team_name"`
	TeamDescribe   string           `json:"team_describe"`
	LeaderID       uint32           `json:"leader_id"`
	CategoryID     *uint32          `json:"category_id"`
	IsLocked       bool             `json:"is_locked"`
	IsSolo         bool             `json:"is_solo"`
	InvitationCode string           `json:"invitation_code,omitempty"`
	Members        []TeamMemberResp `json:"members"`
}
