// file: controllers/submission_controller.go
package controllers

import (
	"HackHub/database"
	"HackHub/dto"
	"HackHub/mappers"
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

// SubmitProject —— 队伍提交/更新作品，服务端 create-or-update 归并。
// 对队伍行加锁 + team_id 唯一索引，保证并发下也只有一条提交；
// 已有提交时本次调用即为 update，绝不把"已提交"当错误抛给用户。
func SubmitProject(c *gin.Context) {
	teamID, _ := strconv.Atoi(c.Param("id"))
	actorID := currentUserID(c)

	var req dto.SubmitProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}
	req.Normalize()

	now := time.Now()

	var denied *services.Decision
	var saved models.Submission
	created := false

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&team, teamID).Error; err != nil {
			return errors.New("队伍不存在")
		}

		var hackathon models.Hackathon
		if err := tx.First(&hackathon, team.HackathonID).Error; err != nil {
			return errors.New("活动不存在")
		}

		if d := services.CheckSubmit(&hackathon, &team, actorID, now); !d.Allowed {
			denied = &d
			return errors.New(string(d.Reason))
		}

		payload := services.SubmissionPayload{
			Title:       req.Title,
			Description: req.Description,
			GithubURL:   req.GithubURL,
			VideoURL:    req.VideoURL,
			DemoURL:     req.DemoURL,
		}

		var existing models.Submission
		err := tx.Where("team_id = ?", team.ID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 首次提交：必填字段缺一不可
			if !services.ValidateCreatePayload(payload) {
				return errors.New("缺少必填字段 (title/github_url/video_url)")
			}
			saved = services.NewSubmission(&team, actorID, payload)
			created = true
			return tx.Create(&saved).Error
		}
		if err != nil {
			return err
		}

		// 已有提交 → 归并为更新，nil 字段保留原值
		services.ApplyPayload(&existing, payload)
		if !services.ValidateRequiredFields(&existing) {
			return errors.New("必填字段不能被清空 (title/github_url/video_url)")
		}
		saved = existing
		return tx.Save(&saved).Error
	})

	if err != nil {
		if denied != nil {
			denyDecision(c, *denied)
			return
		}
		utils.Error(c, 1001, err.Error())
		return
	}

	msg := "Submission updated successfully"
	if created {
		msg = "Submission created successfully"
	}
	utils.Success(c, msg, gin.H{
		"id":      saved.ID,
		"team_id": saved.TeamID,
		"created": created,
	})
}

// GetTeamSubmission —— 查询队伍当前提交（本队成员、组织者或已接受指派的导师/评委可见）
func GetTeamSubmission(c *gin.Context) {
	teamID, _ := strconv.Atoi(c.Param("id"))
	userID := currentUserID(c)

	var team models.Team
	if err := database.DB.First(&team, teamID).Error; err != nil {
		utils.Error(c, 4004, "队伍不存在")
		return
	}

	var memberCount int64
	database.DB.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&memberCount)

	allowed := memberCount > 0
	if !allowed {
		organizer, _ := isHackathonOrganizer(userID, team.HackathonID)
		allowed = organizer || currentRoles(c).Has(models.RoleSuperAdmin)
	}
	if !allowed {
		// 导师随时可看自己队伍的提交；评委只在评审窗口内可看
		if mentor, _ := hasAcceptedAssignment(userID, team.ID, models.AssignmentRoleMentor); mentor {
			allowed = true
		} else if judge, _ := hasAcceptedAssignment(userID, team.ID, models.AssignmentRoleJudge); judge {
			var hackathon models.Hackathon
			if err := database.DB.First(&hackathon, team.HackathonID).Error; err == nil {
				d := services.JudgeViewAllowed(&hackathon, true, time.Now())
				if !d.Allowed {
					denyDecision(c, d)
					return
				}
				allowed = true
			}
		}
	}
	if !allowed {
		denyDecision(c, services.Deny(services.ReasonForbidden))
		return
	}

	var submission models.Submission
	if err := database.DB.Preload("Attachments").Where("team_id = ?", teamID).First(&submission).Error; err != nil {
		utils.Error(c, 4004, "该队伍尚未提交作品")
		return
	}

	utils.Success(c, "success", mappers.ToSubmissionResp(&submission))
}
