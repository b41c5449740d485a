// file: controllers/rating_controller.go
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

// JudgeListSubmissions —— 评委视角的可评提交列表。
// 只列出自己持有已接受指派的队伍；评审窗口外一律拒绝，
// 即使指派已接受，窗口外也看不到任何可评内容。
func JudgeListSubmissions(c *gin.Context) {
	hackathonID, _ := strconv.Atoi(c.Param("id"))
	judgeID := currentUserID(c)

	var hackathon models.Hackathon
	if err := database.DB.First(&hackathon, hackathonID).Error; err != nil {
		utils.Error(c, 4004, "活动不存在")
		return
	}

	var assignedTeamIDs []uint32
	database.DB.Model(&models.AssignmentRequest{}).
		Where("hackathon_id = ? AND user_id = ? AND role = ? AND status = ?",
			hackathonID, judgeID, models.AssignmentRoleJudge, models.AssignmentStatusAccepted).
		Pluck("team_id", &assignedTeamIDs)

	if d := services.JudgeViewAllowed(&hackathon, len(assignedTeamIDs) > 0, time.Now()); !d.Allowed {
		denyDecision(c, d)
		return
	}

	var submissions []models.Submission
	database.DB.Where("team_id IN ?", assignedTeamIDs).Find(&submissions)

	items := make([]dto.JudgeSubmissionItemResp, 0, len(submissions))
	for _, s := range submissions {
		var team models.Team
		database.DB.Select("team_name").First(&team, s.TeamID)

		var rated int64
		database.DB.Model(&models.Rating{}).
			Where("submission_id = ? AND judge_id = ?", s.ID, judgeID).
			Count(&rated)

		items = append(items, dto.JudgeSubmissionItemResp{
			ID:        s.ID,
			TeamID:    s.TeamID,
			TeamName:  team.TeamName,
			Title:     s.Title,
			GithubURL: s.GithubURL,
			VideoURL:  s.VideoURL,
			DemoURL:   s.DemoURL,
			Rated:     rated > 0,
		})
	}

	utils.Success(c, "success", gin.H{
		"total":       len(items),
		"submissions": items,
	})
}

// RateSubmission —— 评委打分。(judge_id, submission_id) 唯一索引 +
// 事务内加锁复查，保证同一评委对同一提交只有一条评分。
func RateSubmission(c *gin.Context) {
	submissionID, _ := strconv.Atoi(c.Param("id"))
	judgeID := currentUserID(c)

	var req dto.RateSubmissionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}
	req.Normalize()

	now := time.Now()
	var denied *services.Decision
	var rating models.Rating

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var submission models.Submission
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&submission, submissionID).Error; err != nil {
			return errors.New("提交不存在")
		}

		var hackathon models.Hackathon
		if err := tx.First(&hackathon, submission.HackathonID).Error; err != nil {
			return errors.New("活动不存在")
		}

		var accepted int64
		tx.Model(&models.AssignmentRequest{}).
			Where("user_id = ? AND team_id = ? AND role = ? AND status = ?",
				judgeID, submission.TeamID, models.AssignmentRoleJudge, models.AssignmentStatusAccepted).
			Count(&accepted)

		scores := [4]int{req.InnovationScore, req.TechnicalScore, req.DesignScore, req.PresentationScore}
		if d := services.CheckRate(&hackathon, accepted > 0, scores, now); !d.Allowed {
			denied = &d
			return errors.New(string(d.Reason))
		}

		// 同一评委重复打分判定
		var existing models.Rating
		tx.Where("submission_id = ? AND judge_id = ?", submissionID, judgeID).First(&existing)
		if existing.ID != 0 {
			return errors.New("你已为该提交打过分")
		}

		rating = models.Rating{
			SubmissionID:      uint64(submissionID),
			JudgeID:           judgeID,
			TeamID:            submission.TeamID,
			InnovationScore:   req.InnovationScore,
			TechnicalScore:    req.TechnicalScore,
			DesignScore:       req.DesignScore,
			PresentationScore: req.PresentationScore,
			Comments:          req.Comments,
			RatedAt:           now,
		}
		return tx.Create(&rating).Error
	})

	if err != nil {
		if denied != nil {
			denyDecision(c, *denied)
			return
		}
		utils.Error(c, 3001, err.Error())
		return
	}

	utils.Success(c, "Rating recorded successfully", gin.H{
		"id":          rating.ID,
		"total_score": rating.TotalScore(),
	})
}

// GetSubmissionRatings —— 组织者查询某提交的全部评分
func GetSubmissionRatings(c *gin.Context) {
	submissionID, _ := strconv.Atoi(c.Param("id"))

	var submission models.Submission
	if err := database.DB.First(&submission, submissionID).Error; err != nil {
		utils.Error(c, 4004, "提交不存在")
		return
	}
	if !requireOrganizer(c, submission.HackathonID) {
		return
	}

	var ratings []models.Rating
	database.DB.Where("submission_id = ?", submissionID).Order("rated_at asc").Find(&ratings)

	items := make([]dto.RatingResp, 0, len(ratings))
	total := 0
	for i := range ratings {
		items = append(items, mappers.ToRatingResp(&ratings[i]))
		total += ratings[i].TotalScore()
	}

	utils.Success(c, "success", gin.H{
		"total_score": total,
		"ratings":     items,
	})
}
