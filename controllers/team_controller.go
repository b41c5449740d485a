// file: controllers/team_controller.go
package controllers

import (
	"HackHub/database"
	"HackHub/dto"
	"HackHub/models"
	"HackHub/services"
	"HackHub/utils"
	"errors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"strconv"
	"time"
)

// isUserInHackathonTeam 是一个辅助函数，检查用户在该活动中是否已有队伍
func isUserInHackathonTeam(tx *gorm.DB, userID, hackathonID uint32) (bool, error) {
	var count int64
	err := tx.Model(&models.TeamMember{}).
		Joins("JOIN hackhub_team t ON t.id = hackhub_team_members.team_id").
		Where("hackhub_team_members.user_id = ? AND t.hackathon_id = ?", userID, hackathonID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func CreateTeam(c *gin.Context) {
	userID := currentUserID(c)

	var req dto.CreateTeamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}
	req.Normalize()

	var hackathon models.Hackathon
	if err := database.DB.First(&hackathon, req.HackathonID).Error; err != nil {
		utils.Error(c, 4004, "活动不存在")
		return
	}

	now := time.Now()

	inTeam, err := isUserInHackathonTeam(database.DB, userID, hackathon.ID)
	if err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}
	if inTeam {
		denyDecision(c, services.Deny(services.ReasonAlreadyMember))
		return
	}

	var categoryCount int64
	database.DB.Model(&models.Category{}).Where("hackathon_id = ?", hackathon.ID).Count(&categoryCount)

	if d := services.CheckCreateTeam(&hackathon, categoryCount > 0, req.CategoryID, req.IsSolo, now); !d.Allowed {
		denyDecision(c, d)
		return
	}

	var existingTeam models.Team
	if err := database.DB.Where("hackathon_id = ? AND team_name = ?", hackathon.ID, req.TeamName).First(&existingTeam).Error; err == nil {
		utils.Error(c, 3001, "Team name already exists")
		return
	}

	newTeam := models.Team{
		HackathonID:    hackathon.ID,
		TeamName:       req.TeamName,
		LeaderID:       userID,
		CategoryID:     req.CategoryID,
		InvitationCode: utils.GenerateInvitationCode(12),
		TeamDescribe:   req.TeamDescribe,
		IsSolo:         req.IsSolo,
	}

	var capacityDenied *services.Decision

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// 选择了赛道就占用名额，solo 队伍也一样：对赛道行加锁后再计数，
		// 并发建队不能超限，且与解散时的 team_count 回减保持对称
		if req.CategoryID != nil {
			var category models.Category
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ? AND hackathon_id = ?", *req.CategoryID, hackathon.ID).
				First(&category).Error; err != nil {
				return errors.New("赛道不存在")
			}

			var teamsInCategory int64
			if err := tx.Model(&models.Team{}).Where("category_id = ?", category.ID).Count(&teamsInCategory).Error; err != nil {
				return err
			}
			if d := services.CheckCategoryCapacity(&category, teamsInCategory); !d.Allowed {
				capacityDenied = &d
				return errors.New(string(d.Reason))
			}
			if err := tx.Model(&category).Update("team_count", gorm.Expr("team_count + 1")).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(&newTeam).Error; err != nil {
			return err
		}
		leaderMember := models.TeamMember{
			TeamID:   newTeam.ID,
			UserID:   userID,
			Role:     models.TeamRoleLeader,
			JoinedAt: time.Now(),
		}
		return tx.Create(&leaderMember).Error
	})

	if err != nil {
		if capacityDenied != nil {
			denyDecision(c, *capacityDenied)
			return
		}
		utils.Error(c, 5000, "创建队伍失败: "+err.Error())
		return
	}

	utils.Success(c, "Team created successfully", gin.H{
		"id":              newTeam.ID,
		"hackathon_id":    newTeam.HackathonID,
		"team_name":       newTeam.TeamName,
		"leader_id":       newTeam.LeaderID,
		"category_id":     newTeam.CategoryID,
		"is_solo":         newTeam.IsSolo,
		"invitation_code": newTeam.InvitationCode,
	})
}

func JoinTeam(c *gin.Context) {
	userID := currentUserID(c)

	var req dto.JoinTeamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效")
		return
	}

	now := time.Now()
	var joinDenied *services.Decision
	var joinedTeam models.Team

	// 入队必须在事务内对队伍行加 FOR UPDATE 锁后复查容量，
	// 两个并发请求只有一个能占到最后一个名额。
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var targetTeam models.Team
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("invitation_code = ?", req.InvitationCode).
			First(&targetTeam).Error; err != nil {
			return errors.New("Invalid invitation code")
		}

		var hackathon models.Hackathon
		if err := tx.First(&hackathon, targetTeam.HackathonID).Error; err != nil {
			return errors.New("活动不存在")
		}

		inTeam, err := isUserInHackathonTeam(tx, userID, hackathon.ID)
		if err != nil {
			return err
		}

		var memberCount int64
		if err := tx.Model(&models.TeamMember{}).Where("team_id = ?", targetTeam.ID).Count(&memberCount).Error; err != nil {
			return err
		}

		if d := services.CheckJoinTeam(&hackathon, &targetTeam, memberCount, inTeam, now); !d.Allowed {
			joinDenied = &d
			return errors.New(string(d.Reason))
		}

		newMember := models.TeamMember{
			TeamID:   targetTeam.ID,
			UserID:   userID,
			Role:     models.TeamRoleMember,
			JoinedAt: time.Now(),
		}
		if err := tx.Create(&newMember).Error; err != nil {
			return err
		}
		joinedTeam = targetTeam
		return nil
	})

	if err != nil {
		if joinDenied != nil {
			denyDecision(c, *joinDenied)
			return
		}
		utils.Error(c, 3004, err.Error())
		return
	}

	utils.Success(c, "Joined team successfully", gin.H{
		"team_id":   joinedTeam.ID,
		"team_name": joinedTeam.TeamName,
	})
}

func LeaveTeam(c *gin.Context) {
	teamID, _ := strconv.Atoi(c.Param("id"))
	userID := currentUserID(c)

	var member models.TeamMember
	err := database.DB.Where("team_id = ? AND user_id = ?", teamID, userID).First(&member).Error

	var otherMembers int64
	database.DB.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id <> ?", teamID, userID).
		Count(&otherMembers)

	isMember := err == nil
	isLeader := isMember && member.Role == models.TeamRoleLeader

	if d := services.CheckLeaveTeam(isMember, isLeader, otherMembers); !d.Allowed {
		denyDecision(c, d)
		return
	}

	if err := database.DB.Delete(&member).Error; err != nil {
		utils.Error(c, 5000, "退出队伍失败")
		return
	}

	utils.Success(c, "Left team successfully", nil)
}

func KickMember(c *gin.Context) {
	teamID, _ := strconv.Atoi(c.Param("id"))
	targetUserID, _ := strconv.Atoi(c.Param("user_id"))
	actorID := currentUserID(c)

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		utils.Error(c, 4004, "Team not found")
		return
	}

	organizer, err := isHackathonOrganizer(actorID, team.HackathonID)
	if err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}

	var targetCount int64
	database.DB.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ?", teamID, targetUserID).
		Count(&targetCount)

	d := services.CheckKickMember(&team, actorID, currentRoles(c), organizer, uint32(targetUserID), targetCount > 0)
	if !d.Allowed {
		denyDecision(c, d)
		return
	}

	result := database.DB.Where("team_id = ? AND user_id = ?", teamID, targetUserID).Delete(&models.TeamMember{})
	if result.Error != nil {
		utils.Error(c, 5000, "移除队员失败")
		return
	}

	utils.Success(c, "Member removed successfully", nil)
}

func TransferLeadership(c *gin.Context) {
	teamID, _ := strconv.Atoi(c.Param("id"))
	actorID := currentUserID(c)

	var req dto.TransferLeadershipReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效")
		return
	}

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		utils.Error(c, 4004, "Team not found")
		return
	}

	var newLeaderCount int64
	database.DB.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ?", teamID, req.NewLeaderID).
		Count(&newLeaderCount)

	if d := services.CheckTransferLeadership(&team, actorID, newLeaderCount > 0); !d.Allowed {
		denyDecision(c, d)
		return
	}

	// 队长指针与成员角色在同一事务内原子交换
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&team).Update("leader_id", req.NewLeaderID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.TeamMember{}).
			Where("team_id = ? AND user_id = ?", teamID, actorID).
			Update("role", models.TeamRoleMember).Error; err != nil {
			return err
		}
		return tx.Model(&models.TeamMember{}).
			Where("team_id = ? AND user_id = ?", teamID, req.NewLeaderID).
			Update("role", models.TeamRoleLeader).Error
	})
	if err != nil {
		utils.Error(c, 5000, "转让队长失败")
		return
	}

	utils.Success(c, "Leadership transferred successfully", nil)
}

func GetTeamDetail(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的队伍ID")
		return
	}

	var team models.Team
	if err := database.DB.Preload("Members.User").First(&team, teamID).Error; err != nil {
		utils.Error(c, 4004, "队伍不存在")
		return
	}

	members := make([]dto.TeamMemberResp, 0, len(team.Members))
	for _, m := range team.Members {
		members = append(members, dto.TeamMemberResp{
			UserID:   m.UserID,
			Username: m.User.Username,
			Role:     string(m.Role),
			JoinedAt: m.JoinedAt.Format("2006-01-02 15:04:05"),
		})
	}

	resp := dto.TeamDetailResp{
		ID:           team.ID,
		HackathonID:  team.HackathonID,
		TeamName:     team.TeamName,
		TeamDescribe: team.TeamDescribe,
		LeaderID:     team.LeaderID,
		CategoryID:   team.CategoryID,
		IsLocked:     team.IsLocked,
		IsSolo:       team.IsSolo,
		Members:      members,
	}

	// 邀请码只对本队成员可见
	userID := currentUserID(c)
	for _, m := range team.Members {
		if m.UserID == userID {
			resp.InvitationCode = team.InvitationCode
			break
		}
	}

	utils.Success(c, "success", resp)
}

func UpdateTeam(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的队伍ID")
		return
	}
	actorID := currentUserID(c)

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		utils.Error(c, 4004, "队伍不存在")
		return
	}

	if team.LeaderID != actorID {
		denyDecision(c, services.Deny(services.ReasonNotLeader))
		return
	}

	var req struct {
		TeamDescribe string `json:"team_describe"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效")
		return
	}

	if err := database.DB.Model(&team).Update("team_describe", req.TeamDescribe).Error; err != nil {
		utils.Error(c, 5000, "更新队伍信息失败")
		return
	}

	utils.Success(c, "Team updated successfully", nil)
}

func DisbandTeam(c *gin.Context) {
	teamID, _ := strconv.Atoi(c.Param("id"))
	actorID := currentUserID(c)

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		utils.Error(c, 4004, "Team not found")
		return
	}

	if team.LeaderID != actorID {
		denyDecision(c, services.Deny(services.ReasonNotLeader))
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
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
		utils.Error(c, 5000, "解散队伍失败")
		return
	}

	utils.Success(c, "Team disbanded successfully", nil)
}
