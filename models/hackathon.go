// file: models/hackathon.go
package models

import (
	"time"
)

// HackathonStatus 定义主办方手动维护的活动生命周期标签
type HackathonStatus string

const (
	HackathonStatusDraft              HackathonStatus = "draft"
	HackathonStatusPublished          HackathonStatus = "published"
	HackathonStatusRegistrationClosed HackathonStatus = "registration_closed"
	HackathonStatusSubmissionClosed   HackathonStatus = "submission_closed"
	HackathonStatusJudging            HackathonStatus = "judging"
	HackathonStatusResultsPublished   HackathonStatus = "results_published"
)

// Hackathon 对应 hackhub_hackathon 表。
// 三类时间窗口（组队报名/作品提交/评审）均支持两种配置方式：
// 显式 (start, end) 区间，或只给一个 deadline（隐含区间为 (-∞, deadline]）。
// status 由主办方手动维护，窗口判定以时间计算为准，两者允许不一致。
type Hackathon struct {
	ID           uint32          `gorm:"primarykey" json:"id,omitempty"`
	Name         string          `gorm:"size:100;not null" json:"name"`
	CoverImage   string          `gorm:"size:255" json:"cover_image"`
	Description  string          `gorm:"type:text" json:"description"`
	OrganizerURL string          `gorm:"size:255" json:"organizer_url"`
	Status       HackathonStatus `gorm:"type:enum('draft','published','registration_closed','submission_closed','judging','results_published');default:'draft'" json:"status,omitempty"`
	MaxTeamSize  uint            `gorm:"not null;default:4" json:"max_team_size"`

	// 组队报名窗口
	TeamRegStart    *time.Time `json:"team_reg_start" time_format:"2006-01-02T15:04:05Z07:00"`
	TeamRegEnd      *time.Time `json:"team_reg_end" time_format:"2006-01-02T15:04:05Z07:00"`
	TeamRegDeadline *time.Time `json:"team_reg_deadline" time_format:"2006-01-02T15:04:05Z07:00"`

	// 作品提交窗口
	SubmissionStart    *time.Time `json:"submission_start" time_format:"2006-01-02T15:04:05Z07:00"`
	SubmissionEnd      *time.Time `json:"submission_end" time_format:"2006-01-02T15:04:05Z07:00"`
	SubmissionDeadline *time.Time `json:"submission_deadline" time_format:"2006-01-02T15:04:05Z07:00"`

	// 评审窗口
	JudgingStart    *time.Time `json:"judging_start" time_format:"2006-01-02T15:04:05Z07:00"`
	JudgingEnd      *time.Time `json:"judging_end" time_format:"2006-01-02T15:04:05Z07:00"`
	JudgingDeadline *time.Time `json:"judging_deadline" time_format:"2006-01-02T15:04:05Z07:00"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`

	Sponsors   []Sponsor  `gorm:"foreignKey:HackathonID" json:"sponsors,omitempty"`
	Categories []Category `gorm:"foreignKey:HackathonID" json:"categories,omitempty"`
}

func (Hackathon) TableName() string {
	return "hackhub_hackathon"
}
