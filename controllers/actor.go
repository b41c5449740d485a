// file: controllers/actor.go
package controllers

import (
	"HackHub/database"
	"HackHub/models"
	"HackHub/services"
	"HackHub/utils"
	"github.com/gin-gonic/gin"
)

// 从中间件上下文取当前用户，controller 内部共享的辅助函数

func currentUserID(c *gin.Context) uint32 {
	userIDAny, _ := c.Get("user_id")
	return userIDAny.(uint32)
}

func currentRoles(c *gin.Context) models.RoleSet {
	rolesAny, exists := c.Get("user_roles")
	if !exists {
		return nil
	}
	return rolesAny.(models.RoleSet)
}

// isHackathonOrganizer 用户是否该活动的组织者
func isHackathonOrganizer(userID, hackathonID uint32) (bool, error) {
	var count int64
	err := database.DB.Model(&models.HackathonOrganizer{}).
		Where("hackathon_id = ? AND user_id = ?", hackathonID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// memberTeamID 查询用户在该活动中的队伍，未入队返回 (0, false)。
// 一个用户在同一活动中至多属于一支队伍。
func memberTeamID(userID, hackathonID uint32) (teamID uint32, isLeader bool, err error) {
	var member models.TeamMember
	err = database.DB.
		Joins("JOIN hackhub_team t ON t.id = hackhub_team_members.team_id").
		Where("hackhub_team_members.user_id = ? AND t.hackathon_id = ?", userID, hackathonID).
		First(&member).Error
	if err != nil {
		return 0, false, nil // 未入队不是错误
	}
	return member.TeamID, member.Role == models.TeamRoleLeader, nil
}

// hasAcceptedAssignment 用户对某队伍是否持有已接受的导师/评委指派
func hasAcceptedAssignment(userID, teamID uint32, role models.AssignmentRole) (bool, error) {
	var count int64
	err := database.DB.Model(&models.AssignmentRequest{}).
		Where("user_id = ? AND team_id = ? AND role = ? AND status = ?",
			userID, teamID, role, models.AssignmentStatusAccepted).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// buildActor 装配访问控制器需要的身份快照
func buildActor(c *gin.Context, hackathonID, targetTeamID uint32) (services.Actor, error) {
	userID := currentUserID(c)
	roles := currentRoles(c)

	organizer, err := isHackathonOrganizer(userID, hackathonID)
	if err != nil {
		return services.Actor{}, err
	}
	teamID, isLeader, err := memberTeamID(userID, hackathonID)
	if err != nil {
		return services.Actor{}, err
	}

	actor := services.Actor{
		UserID:      userID,
		Roles:       roles,
		IsOrganizer: organizer,
		TeamID:      teamID,
		IsLeader:    isLeader,
	}

	if targetTeamID != 0 {
		if actor.AcceptedMentor, err = hasAcceptedAssignment(userID, targetTeamID, models.AssignmentRoleMentor); err != nil {
			return actor, err
		}
		if actor.AcceptedJudge, err = hasAcceptedAssignment(userID, targetTeamID, models.AssignmentRoleJudge); err != nil {
			return actor, err
		}
	}

	return actor, nil
}

// denyDecision 将 Deny(reason) 统一映射为应用错误码响应
func denyDecision(c *gin.Context, d services.Decision) {
	utils.Error(c, services.ReasonCode(d.Reason), string(d.Reason))
}
