// file: models/leaderboard.go
package models

import "time"

// LeaderboardEntry 对应 hackhub_leaderboard 缓存表，
// 由 leaderboard_service 根据评分聚合重建。
type LeaderboardEntry struct {
	ID           uint32     `gorm:"primarykey" json:"-"`
	HackathonID  uint32     `gorm:"not null" json:"hackathon_id"`
	TeamID       uint32     `gorm:"not null" json:"team_id"`
	TeamName     string     `gorm:"size:100;not null" json:"team_name"`
	CategoryName *string    `json:"category_name"`
	TotalScore   int        `gorm:"not null" json:"total_score"`
	RatingCount  uint       `gorm:"not null" json:"rating_count"`
	LastRatedAt  *time.Time `json:"last_rated_at"`
	Rank         uint       `gorm:"column:rank" json:"rank"`
}

func (LeaderboardEntry) TableName() string {
	return "hackhub_leaderboard"
}
