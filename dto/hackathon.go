// file: dto/hackathon.go
package dto

import (
	"strings"
	"time"
)

// ========== 请求 DTO ==========

// SaveHackathonReq 创建/更新活动的载荷。三类窗口各自支持
// 显式 (start, end) 或单一 deadline 两种配置方式。
type SaveHackathonReq struct {
	Name         string `json:"name"`
	CoverImage   string `json:"cover_image"`
	Description  string `json:"description"`
	OrganizerURL string `json:"organizer_url"`
	MaxTeamSize  uint   `json:"max_team_size"`

	TeamRegStart    *time.Time `json:"team_reg_start"`
	TeamRegEnd      *time.Time `json:"team_reg_end"`
	TeamRegDeadline *time.Time `json:"team_reg_deadline"`

	SubmissionStart    *time.Time `json:"submission_start"`
	SubmissionEnd      *time.Time `json:"submission_end"`
	SubmissionDeadline *time.Time `json:"submission_deadline"`

	JudgingStart    *time.Time `json:"judging_start"`
	JudgingEnd      *time.Time `json:"judging_end"`
	JudgingDeadline *time.Time `json:"judging_deadline"`

	// 兼容旧客户端的 camelCase 别名
	NameCamel        string `json:"hackathonName"`
	MaxTeamSizeCamel uint   `json:"maxTeamSize"`
}

func (r *SaveHackathonReq) Normalize() {
	if r.Name == "" && r.NameCamel != "" {
		r.Name = r.NameCamel
	}
	if r.MaxTeamSize == 0 && r.MaxTeamSizeCamel != 0 {
		r.MaxTeamSize = r.MaxTeamSizeCamel
	}
	r.Name = strings.TrimSpace(r.Name)
	if r.MaxTeamSize == 0 {
		r.MaxTeamSize = 4
	}
}

// WindowPairsValid 显式区间必须满足 start ≤ end，创建与更新共用同一校验
func (r *SaveHackathonReq) WindowPairsValid() bool {
	pairs := [][2]*time.Time{
		{r.TeamRegStart, r.TeamRegEnd},
		{r.SubmissionStart, r.SubmissionEnd},
		{r.JudgingStart, r.JudgingEnd},
	}
	for _, p := range pairs {
		if p[0] != nil && p[1] != nil && p[0].After(*p[1]) {
			return false
		}
	}
	return true
}

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// ========== 响应 DTO ==========

// HackathonItemResp 公开列表项，phase 为按当前时间计算出的阶段
type HackathonItemResp struct {
	ID          uint32 `json:"id"`
	Name        string `json:"name"`
	CoverImage  string `json:"cover_image"`
	Status      string `json:"status"`
	Phase       string `json:"phase"`
	MaxTeamSize uint   `json:"max_team_size"`
}

// HackathonDetailResp 公开详情，包含窗口与实时谓词，供前端控件显隐使用。
// 前端永远不是权威，API 侧会对每个动作重新判定。
type HackathonDetailResp struct {
	ID           uint32 `json:"id"`
	Name         string `json:"name"`
	CoverImage   string `json:"cover_image"`
	Description  string `json:"description"`
	OrganizerURL string `json:"organizer_url"`
	Status       string `json:"status"`
	Phase        string `json:"phase"`
	MaxTeamSize  uint   `json:"max_team_size"`

	TeamRegStart    *time.Time `json:"team_reg_start"`
	TeamRegEnd      *time.Time `json:"team_reg_end"`
	TeamRegDeadline *time.Time `json:"team_reg_deadline"`

	SubmissionStart    *time.Time `json:"submission_start"`
	SubmissionEnd      *time.Time `json:"submission_end"`
	SubmissionDeadline *time.Time `json:"submission_deadline"`

	JudgingStart    *time.Time `json:"judging_start"`
	JudgingEnd      *time.Time `json:"judging_end"`
	JudgingDeadline *time.Time `json:"judging_deadline"`

	RegistrationOpen bool `json:"registration_open"`
	SubmissionOpen   bool `json:"submission_open"`
	JudgingOpen      bool `json:"judging_open"`
	Ended            bool `json:"ended"`
}
