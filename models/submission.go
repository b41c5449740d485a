// file: models/submission.go
package models

import (
	"time"
)

// Submission 对应 hackhub_submission 表。
// TeamID 上的唯一索引保证每支队伍至多一条提交记录，
// 重复 create 在服务端被归并为 update（见 submission_service）。
type Submission struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	TeamID      uint32    `gorm:"uniqueIndex:unique_team_submission;not null" json:"team_id"`
	HackathonID uint32    `gorm:"not null" json:"hackathon_id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	GithubURL   string    `gorm:"size:255;not null" json:"github_url"`
	VideoURL    string    `gorm:"size:255;not null" json:"video_url"`
	DemoURL     string    `gorm:"size:255" json:"demo_url"`
	SubmittedBy uint32    `gorm:"not null" json:"submitted_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Attachments []Attachment `gorm:"foreignKey:SubmissionID" json:"attachments,omitempty"`
}

func (Submission) TableName() string {
	return "hackhub_submission"
}
