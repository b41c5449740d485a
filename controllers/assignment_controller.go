// file: controllers/assignment_controller.go
package controllers

import (
	"HackHub/database"
	"HackHub/models"
	"HackHub/services"
	"HackHub/utils"
	"github.com/gin-gonic/gin"
	"strconv"
	"time"
)

// CreateAssignment 组织者向用户发出导师/评委指派邀请
func CreateAssignment(c *gin.Context) {
	var req struct {
		TeamID uint32 `json:"team_id" binding:"required"`
		UserID uint32 `json:"user_id" binding:"required"`
		Role   string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	role := models.AssignmentRole(req.Role)
	if role != models.AssignmentRoleMentor && role != models.AssignmentRoleJudge {
		utils.Error(c, 1001, "role 取值无效（mentor/judge）")
		return
	}

	var team models.Team
	if err := database.DB.First(&team, req.TeamID).Error; err != nil {
		utils.Error(c, 4004, "队伍不存在")
		return
	}
	if !requireOrganizer(c, team.HackathonID) {
		return
	}

	var user models.User
	if err := database.DB.First(&user, req.UserID).Error; err != nil {
		utils.Error(c, 4004, "用户不存在")
		return
	}

	// 同一 (用户, 队伍, 角色) 已有待处理或已接受的指派时不重复发出
	var existing int64
	database.DB.Model(&models.AssignmentRequest{}).
		Where("user_id = ? AND team_id = ? AND role = ? AND status <> ?",
			req.UserID, req.TeamID, role, models.AssignmentStatusRejected).
		Count(&existing)
	if existing > 0 {
		utils.Error(c, 3001, "Assignment request already exists")
		return
	}

	request := models.AssignmentRequest{
		HackathonID: team.HackathonID,
		TeamID:      req.TeamID,
		UserID:      req.UserID,
		Role:        role,
		Status:      models.AssignmentStatusPending,
		CreatedBy:   currentUserID(c),
	}
	if err := database.DB.Create(&request).Error; err != nil {
		utils.Error(c, 5000, "创建指派失败: "+err.Error())
		return
	}

	utils.Success(c, "Assignment request created successfully", gin.H{"id": request.ID})
}

// ListMyAssignments 查询发给自己的指派邀请
func ListMyAssignments(c *gin.Context) {
	userID := currentUserID(c)

	var requests []models.AssignmentRequest
	database.DB.Preload("Team").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&requests)

	utils.Success(c, "success", gin.H{
		"total":    len(requests),
		"requests": requests,
	})
}

// resolveAssignment 接受/拒绝的公共路径：仅被邀请人本人可处理，终态不可再变
func resolveAssignment(c *gin.Context, target models.AssignmentStatus) {
	requestID, _ := strconv.Atoi(c.Param("id"))
	actorID := currentUserID(c)

	var request models.AssignmentRequest
	if err := database.DB.First(&request, requestID).Error; err != nil {
		utils.Error(c, 4004, "指派不存在")
		return
	}

	if d := services.CheckResolveAssignment(&request, actorID); !d.Allowed {
		denyDecision(c, d)
		return
	}

	now := time.Now()
	// 乐观复查：status 条件保证并发 accept/reject 只有一个生效
	result := database.DB.Model(&request).
		Where("status = ?", models.AssignmentStatusPending).
		Updates(map[string]interface{}{"status": target, "resolved_at": now})
	if result.Error != nil {
		utils.Error(c, 5000, "处理指派失败")
		return
	}
	if result.RowsAffected == 0 {
		denyDecision(c, services.Deny(services.ReasonAlreadyResolved))
		return
	}

	utils.Success(c, "Assignment "+string(target), gin.H{
		"id":     request.ID,
		"status": target,
	})
}

// AcceptAssignment 接受指派
func AcceptAssignment(c *gin.Context) {
	resolveAssignment(c, models.AssignmentStatusAccepted)
}

// RejectAssignment 拒绝指派
func RejectAssignment(c *gin.Context) {
	resolveAssignment(c, models.AssignmentStatusRejected)
}

// GetMentorChatAccess 导师沟通渠道访问判定：已接受指派且评审未开始。
// 渠道本身（消息收发）由外部系统承载，这里只输出 allow/deny。
func GetMentorChatAccess(c *gin.Context) {
	teamID, _ := strconv.Atoi(c.Param("id"))
	userID := currentUserID(c)

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		utils.Error(c, 4004, "队伍不存在")
		return
	}

	var hackathon models.Hackathon
	if err := database.DB.First(&hackathon, team.HackathonID).Error; err != nil {
		utils.Error(c, 4004, "活动不存在")
		return
	}

	// 本队成员直接放行；其他人按导师指派判定
	var memberCount int64
	database.DB.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&memberCount)
	if memberCount > 0 {
		utils.Success(c, "success", services.Allow())
		return
	}

	accepted, err := hasAcceptedAssignment(userID, team.ID, models.AssignmentRoleMentor)
	if err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}

	decision := services.MentorChatAllowed(&hackathon, accepted, time.Now())
	utils.Success(c, "success", decision)
}
