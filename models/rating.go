// file: models/rating.go
package models

import (
	"time"
)

// Rating 评委对某个提交的打分，(judge_id, submission_id) 唯一。
// 四项分值均在 [1,10]，总分为四项之和，范围 [4,40]。
type Rating struct {
	ID                uint64    `gorm:"primarykey" json:"id"`
	SubmissionID      uint64    `gorm:"uniqueIndex:unique_judge_submission;not null" json:"submission_id"`
	JudgeID           uint32    `gorm:"uniqueIndex:unique_judge_submission;not null" json:"judge_id"`
	TeamID            uint32    `gorm:"not null" json:"team_id"`
	InnovationScore   int       `gorm:"not null" json:"innovation_score"`
	TechnicalScore    int       `gorm:"not null" json:"technical_score"`
	DesignScore       int       `gorm:"not null" json:"design_score"`
	PresentationScore int       `gorm:"not null" json:"presentation_score"`
	Comments          string    `gorm:"type:text" json:"comments"`
	RatedAt           time.Time `json:"rated_at"`
}

func (Rating) TableName() string {
	return "hackhub_rating"
}

// TotalScore 四项分值之和
func (r *Rating) TotalScore() int {
	return r.InnovationScore + r.TechnicalScore + r.DesignScore + r.PresentationScore
}
