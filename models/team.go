// file: models/team.go
package models

import (
	"time"
)

type Team struct {
	ID             uint32       `gorm:"primarykey" json:"id"`
	HackathonID    uint32       `gorm:"uniqueIndex:unique_hackathon_team_name;not null" json:"hackathon_id"`
	TeamName       string       `gorm:"uniqueIndex:unique_hackathon_team_name;size:100;not null" json:"team_name"`
	LeaderID       uint32       `gorm:"not null" json:"leader_id"`
	Leader         User         `gorm:"foreignKey:LeaderID" json:"leader"`
	CategoryID     *uint32      `json:"category_id"`
	Category       *Category    `gorm:"foreignKey:CategoryID" json:"category"`
	InvitationCode string       `gorm:"size:20;unique;not null" json:"invitation_code"`
	TeamDescribe   string       `gorm:"type:text" json:"team_describe"`
	IsLocked       bool         `gorm:"not null;default:false" json:"is_locked"`
	IsSolo         bool         `gorm:"not null;default:false" json:"is_solo"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
	Members        []TeamMember `gorm:"foreignKey:TeamID" json:"members"`
}

func (Team) TableName() string {
	return "hackhub_team"
}
