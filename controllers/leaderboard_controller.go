// file: controllers/leaderboard_controller.go
package controllers

import (
	"HackHub/database"
	"HackHub/models"
	"HackHub/services"
	"HackHub/utils"
	"encoding/json"
	"fmt"
	"github.com/gin-gonic/gin"
	"strconv"
	"time"
)

// GetLeaderboard 查询榜单。结果公布前仅组织者可见
func GetLeaderboard(c *gin.Context) {
	hackathonID, _ := strconv.Atoi(c.Param("id"))
	limitStr := c.DefaultQuery("limit", "10")
	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	var hackathon models.Hackathon
	if err := database.DB.First(&hackathon, hackathonID).Error; err != nil {
		utils.Error(c, 4004, "活动不存在")
		return
	}

	if hackathon.Status != models.HackathonStatusResultsPublished {
		userID, exists := c.Get("user_id")
		if !exists {
			utils.Error(c, 4003, "结果尚未公布")
			return
		}
		organizer, _ := isHackathonOrganizer(userID.(uint32), hackathon.ID)
		if !organizer && !currentRoles(c).Has(models.RoleSuperAdmin) {
			utils.Error(c, 4003, "结果尚未公布")
			return
		}
	}

	// 1. 尝试从 Redis 获取缓存
	cacheKey := fmt.Sprintf("leaderboard:%d:%d", hackathonID, limit)
	val, err := database.RDB.Get(database.Ctx, cacheKey).Result()
	if err == nil {
		var results []models.LeaderboardEntry
		if json.Unmarshal([]byte(val), &results) == nil {
			utils.Success(c, "success (from cache)", results)
			return
		}
	}

	var results []models.LeaderboardEntry
	// 为保留字 rank 加上反引号
	database.DB.Where("hackathon_id = ?", hackathonID).Order("`rank` asc").Limit(limit).Find(&results)

	// 2. 缓存未命中，将查询结果存入 Redis，短 TTL 保证准实时性
	jsonData, err := json.Marshal(results)
	if err == nil {
		database.RDB.Set(database.Ctx, cacheKey, jsonData, 15*time.Second)
	}

	utils.Success(c, "success", results)
}

// RefreshLeaderboard 组织者手动触发榜单重算
func RefreshLeaderboard(c *gin.Context) {
	hackathonID, _ := strconv.Atoi(c.Param("id"))

	var hackathon models.Hackathon
	if err := database.DB.First(&hackathon, hackathonID).Error; err != nil {
		utils.Error(c, 4004, "活动不存在")
		return
	}
	if !requireOrganizer(c, hackathon.ID) {
		return
	}

	services.UpdateLeaderboardCache(hackathon.ID)
	utils.Success(c, "Leaderboard refreshed successfully", nil)
}
