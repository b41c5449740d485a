// file: controllers/admin_team_controller.go
package controllers

import (
	"HackHub/database"
	"HackHub/models"
	"HackHub/services"
	"HackHub/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"strconv"
)

// AdminGetTeams 组织者分页查询某活动的队伍
func AdminGetTeams(c *gin.Context) {
	hackathonID, _ := strconv.Atoi(c.Param("id"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	search := c.Query("search")

	var hackathon models.Hackathon
	if err := database.DB.First(&hackathon, hackathonID).Error; err != nil {
		utils.Error(c, 4004, "活动不存在")
		return
	}
	if !requireOrganizer(c, hackathon.ID) {
		return
	}

	var teams []models.Team
	var total int64

	db := database.DB.Model(&models.Team{}).Preload("Leader").Preload("Category").
		Where("hackathon_id = ?", hackathonID)

	if search != "" {
		db = db.Where("team_name LIKE ?", "%"+search+"%")
	}

	db.Count(&total)
	db.Order("id desc").Offset((page - 1) * limit).Limit(limit).Find(&teams)

	// 为了返回更清晰的数据，我们创建一个自定义的结构
	type TeamInfo struct {
		ID             uint32  `json:"id"`
		TeamName       string  `json:"team_name"`
		LeaderUsername string  `json:"leader_username"`
		CategoryName   *string `json:"category_name"`
		IsLocked       bool    `json:"is_locked"`
		IsSolo         bool    `json:"is_solo"`
		MemberCount    int64   `json:"member_count"`
		HasSubmission  bool    `json:"has_submission"`
	}

	var resultTeams []TeamInfo
	for _, team := range teams {
		var categoryName *string
		if team.Category != nil {
			categoryName = &team.Category.CategoryName
		}
		var memberCount int64
		database.DB.Model(&models.TeamMember{}).Where("team_id = ?", team.ID).Count(&memberCount)

		var submissionCount int64
		database.DB.Model(&models.Submission{}).Where("team_id = ?", team.ID).Count(&submissionCount)

		resultTeams = append(resultTeams, TeamInfo{
			ID:             team.ID,
			TeamName:       team.TeamName,
			LeaderUsername: team.Leader.Username,
			CategoryName:   categoryName,
			IsLocked:       team.IsLocked,
			IsSolo:         team.IsSolo,
			MemberCount:    memberCount,
			HasSubmission:  submissionCount > 0,
		})
	}

	utils.Success(c, "success", gin.H{
		"total": total,
		"teams": resultTeams,
	})
}

// setTeamLock 锁定/解锁的公共路径：组织者/超管专属，与时间窗口无关。
// 锁定只挡新成员加入，既有成员与队长不受影响。
func setTeamLock(c *gin.Context, locked bool) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的队伍ID")
		return
	}

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		utils.Error(c, 4004, "队伍不存在")
		return
	}

	organizer, err := isHackathonOrganizer(currentUserID(c), team.HackathonID)
	if err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}
	if d := services.CheckLockTeam(currentRoles(c), organizer); !d.Allowed {
		denyDecision(c, d)
		return
	}

	if err := database.DB.Model(&team).Update("is_locked", locked).Error; err != nil {
		utils.Error(c, 5000, "更新队伍状态失败")
		return
	}

	msg := "Team unlocked successfully"
	if locked {
		msg = "Team locked successfully"
	}
	utils.Success(c, msg, nil)
}

// LockTeam 锁定队伍
func LockTeam(c *gin.Context) {
	setTeamLock(c, true)
}

// UnlockTeam 解锁队伍
func UnlockTeam(c *gin.Context) {
	setTeamLock(c, false)
}

// AdminDeleteTeam 组织者删除队伍（连带成员关系）
func AdminDeleteTeam(c *gin.Context) {
	teamID, _ := strconv.Atoi(c.Param("team_id"))

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		utils.Error(c, 4004, "队伍不存在")
		return
	}

	organizer, err := isHackathonOrganizer(currentUserID(c), team.HackathonID)
	if err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}
	if d := services.CheckLockTeam(currentRoles(c), organizer); !d.Allowed {
		denyDecision(c, d)
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", team.ID).Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}
		if team.CategoryID != nil {
			if err := tx.Model(&models.Category{}).Where("id = ? AND team_count > 0", *team.CategoryID).
				Update("team_count", gorm.Expr("team_count - 1")).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&team).Error
	})
	if err != nil {
		utils.Error(c, 5000, "删除队伍失败")
		return
	}

	utils.Success(c, "Team deleted successfully", nil)
}
