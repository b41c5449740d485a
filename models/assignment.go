// file: models/assignment.go
package models

import "time"

// 指派角色与状态
type AssignmentRole string
type AssignmentStatus string

const (
	AssignmentRoleMentor AssignmentRole = "mentor"
	AssignmentRoleJudge  AssignmentRole = "judge"

	AssignmentStatusPending  AssignmentStatus = "pending"
	AssignmentStatusAccepted AssignmentStatus = "accepted"
	AssignmentStatusRejected AssignmentStatus = "rejected"
)

// AssignmentRequest 主办方向用户发出的导师/评委指派邀请，
// pending → accepted | rejected，进入终态后不再变化。
type AssignmentRequest struct {
	ID          uint32           `gorm:"primarykey" json:"id"`
	HackathonID uint32           `gorm:"not null" json:"hackathon_id"`
	TeamID      uint32           `gorm:"not null" json:"team_id"`
	UserID      uint32           `gorm:"not null" json:"user_id"`
	Role        AssignmentRole   `gorm:"type:enum('mentor','judge');not null" json:"role"`
	Status      AssignmentStatus `gorm:"type:enum('pending','accepted','rejected');default:'pending';not null" json:"status"`
	CreatedBy   uint32           `gorm:"not null" json:"created_by"`
	ResolvedAt  *time.Time       `json:"resolved_at"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Team Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
}

func (AssignmentRequest) TableName() string {
	return "hackhub_assignment_request"
}

// Resolved 是否已进入终态
func (a *AssignmentRequest) Resolved() bool {
	return a.Status != AssignmentStatusPending
}
