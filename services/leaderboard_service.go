// file: services/leaderboard_service.go
package services

import (
	"HackHub/database"
	"HackHub/models"
	"gorm.io/gorm"
	"log"
	"time"
)

// UpdateLeaderboardCache 重新聚合某场活动的评分并重建榜单缓存表
func UpdateLeaderboardCache(hackathonID uint32) {
	log.Printf("Starting to update leaderboard cache for hackathon %d...", hackathonID)

	// 辅助结构体，用于从评分记录中聚合数据
	type TeamScore struct {
		TeamID       uint32
		TotalScore   int
		RatingCount  uint
		LastRatedAt  time.Time
		TeamName     string
		CategoryName *string
	}

	var teamScores []TeamScore
	// 通过 JOIN 和 GROUP BY 聚合，一次性算出所有队伍的总分与最后评分时间
	database.DB.Table("hackhub_rating r").
		Select("r.team_id, SUM(r.innovation_score + r.technical_score + r.design_score + r.presentation_score) as total_score, COUNT(r.id) as rating_count, MAX(r.rated_at) as last_rated_at, t.team_name, c.category_name").
		Joins("JOIN hackhub_team t ON r.team_id = t.id").
		Joins("LEFT JOIN hackhub_category c ON t.category_id = c.id").
		Where("t.hackathon_id = ?", hackathonID).
		Group("r.team_id, t.team_name, c.category_name").
		Order("total_score desc, last_rated_at asc").
		Scan(&teamScores)

	// 在事务中重建缓存表，保证数据一致性
	database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM hackhub_leaderboard WHERE hackathon_id = ?", hackathonID).Error; err != nil {
			return err
		}

		var rank uint = 0
		for _, ts := range teamScores {
			rank++
			lastRated := ts.LastRatedAt
			entry := models.LeaderboardEntry{
				HackathonID:  hackathonID,
				TeamID:       ts.TeamID,
				TeamName:     ts.TeamName,
				CategoryName: ts.CategoryName,
				TotalScore:   ts.TotalScore,
				RatingCount:  ts.RatingCount,
				LastRatedAt:  &lastRated,
				Rank:         rank,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})

	// 更新数据库后清空相关的 Redis 缓存，确保下次查询拿到最新榜单
	keys, err := database.RDB.Keys(database.Ctx, "leaderboard:*").Result()
	if err == nil && len(keys) > 0 {
		database.RDB.Del(database.Ctx, keys...)
		log.Printf("Cleared %d leaderboard cache keys from Redis.", len(keys))
	}

	log.Println("Leaderboard cache updated successfully.")
}
