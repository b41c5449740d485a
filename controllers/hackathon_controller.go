// file: controllers/hackathon_controller.go
package controllers

import (
	"HackHub/database"
	"HackHub/dto"
	"HackHub/models"
	"HackHub/services"
	"HackHub/utils"
	"github.com/gin-gonic/gin"
	"strconv"
	"time"
)

// GetHackathonList 公开活动列表（draft 仅组织者可见）
func GetHackathonList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var hackathons []models.Hackathon
	var total int64

	db := database.DB.Model(&models.Hackathon{}).Where("status <> ?", models.HackathonStatusDraft)
	db.Count(&total)
	db.Order("id desc").Offset((page - 1) * limit).Limit(limit).Find(&hackathons)

	now := time.Now()
	items := make([]dto.HackathonItemResp, 0, len(hackathons))
	for _, h := range hackathons {
		items = append(items, dto.HackathonItemResp{
			ID:          h.ID,
			Name:        h.Name,
			CoverImage:  h.CoverImage,
			Status:      string(h.Status),
			Phase:       string(services.EvaluatePhase(&h, now)),
			MaxTeamSize: h.MaxTeamSize,
		})
	}

	utils.Success(c, "success", gin.H{
		"total":      total,
		"hackathons": items,
	})
}

// GetHackathonDetail 公开活动详情，带按当前时间计算的阶段与各窗口谓词。
// 谓词仅供前端显隐控件，API 在每个动作上会重新判定。
func GetHackathonDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var hackathon models.Hackathon
	if err := database.DB.Preload("Sponsors").Preload("Categories").First(&hackathon, id).Error; err != nil {
		utils.Error(c, 4004, "活动不存在")
		return
	}

	now := time.Now()
	resp := dto.HackathonDetailResp{
		ID:           hackathon.ID,
		Name:         hackathon.Name,
		CoverImage:   hackathon.CoverImage,
		Description:  hackathon.Description,
		OrganizerURL: hackathon.OrganizerURL,
		Status:       string(hackathon.Status),
		Phase:        string(services.EvaluatePhase(&hackathon, now)),
		MaxTeamSize:  hackathon.MaxTeamSize,

		TeamRegStart:    hackathon.TeamRegStart,
		TeamRegEnd:      hackathon.TeamRegEnd,
		TeamRegDeadline: hackathon.TeamRegDeadline,

		SubmissionStart:    hackathon.SubmissionStart,
		SubmissionEnd:      hackathon.SubmissionEnd,
		SubmissionDeadline: hackathon.SubmissionDeadline,

		JudgingStart:    hackathon.JudgingStart,
		JudgingEnd:      hackathon.JudgingEnd,
		JudgingDeadline: hackathon.JudgingDeadline,

		RegistrationOpen: services.IsRegistrationOpen(&hackathon, now),
		SubmissionOpen:   services.IsSubmissionOpen(&hackathon, now),
		JudgingOpen:      services.IsJudgingOpen(&hackathon, now),
		Ended:            services.HasEnded(&hackathon, now),
	}

	utils.Success(c, "success", resp)
}

// CheckPermission 统一权限预检接口：UI 用它决定控件显隐，
// 判定逻辑全部走访问控制器，前端不自行重算窗口。
func CheckPermission(c *gin.Context) {
	hackathonID, _ := strconv.Atoi(c.Param("id"))
	action := services.Action(c.Query("action"))
	teamIDStr := c.Query("team_id")

	var hackathon models.Hackathon
	if err := database.DB.First(&hackathon, hackathonID).Error; err != nil {
		utils.Error(c, 4004, "活动不存在")
		return
	}

	var tc *services.TeamContext
	var targetTeamID uint32
	if teamIDStr != "" {
		teamID, _ := strconv.Atoi(teamIDStr)
		var team models.Team
		if err := database.DB.First(&team, teamID).Error; err != nil {
			utils.Error(c, 4004, "队伍不存在")
			return
		}
		var memberCount int64
		database.DB.Model(&models.TeamMember{}).Where("team_id = ?", team.ID).Count(&memberCount)
		tc = &services.TeamContext{Team: &team, MemberCount: memberCount}
		targetTeamID = team.ID
	}

	actor, err := buildActor(c, hackathon.ID, targetTeamID)
	if err != nil {
		utils.Error(c, 5000, "数据库错误")
		return
	}

	decision := services.CanPerform(action, &hackathon, actor, tc, time.Now())
	utils.Success(c, "success", decision)
}

// CreateHackathon 创建活动（organizer/super_admin），创建者自动成为该活动组织者
func CreateHackathon(c *gin.Context) {
	var req dto.SaveHackathonReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}
	req.Normalize()

	if req.Name == "" {
		utils.Error(c, 1001, "缺少必填字段 name")
		return
	}
	if req.MaxTeamSize < 1 {
		utils.Error(c, 1001, "max_team_size 必须 ≥ 1")
		return
	}
	if !req.WindowPairsValid() {
		utils.Error(c, 1001, "窗口配置无效：start 不能晚于 end")
		return
	}

	hackathon := models.Hackathon{
		Name:         req.Name,
		CoverImage:   req.CoverImage,
		Description:  req.Description,
		OrganizerURL: req.OrganizerURL,
		MaxTeamSize:  req.MaxTeamSize,
		Status:       models.HackathonStatusDraft,

		TeamRegStart:    req.TeamRegStart,
		TeamRegEnd:      req.TeamRegEnd,
		TeamRegDeadline: req.TeamRegDeadline,

		SubmissionStart:    req.SubmissionStart,
		SubmissionEnd:      req.SubmissionEnd,
		SubmissionDeadline: req.SubmissionDeadline,

		JudgingStart:    req.JudgingStart,
		JudgingEnd:      req.JudgingEnd,
		JudgingDeadline: req.JudgingDeadline,
	}

	if err := database.DB.Create(&hackathon).Error; err != nil {
		utils.Error(c, 5000, "创建活动失败: "+err.Error())
		return
	}

	organizer := models.HackathonOrganizer{
		HackathonID: hackathon.ID,
		UserID:      currentUserID(c),
	}
	database.DB.Create(&organizer)

	utils.Success(c, "Hackathon created successfully", gin.H{"id": hackathon.ID})
}

// requireOrganizer 组织者/超管校验，供活动管理接口复用
func requireOrganizer(c *gin.Context, hackathonID uint32) bool {
	organizer, err := isHackathonOrganizer(currentUserID(c), hackathonID)
	if err != nil {
		utils.Error(c, 5000, "数据库错误")
		return false
	}
	if !organizer && !currentRoles(c).Has(models.RoleSuperAdmin) {
		denyDecision(c, services.Deny(services.ReasonForbidden))
		return false
	}
	return true
}

// UpdateHackathon 更新活动基础信息与窗口配置
func UpdateHackathon(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var hackathon models.Hackathon
	if err := database.DB.First(&hackathon, id).Error; err != nil {
		utils.Error(c, 4004, "活动不存在")
		return
	}
	if !requireOrganizer(c, hackathon.ID) {
		return
	}

	var req dto.SaveHackathonReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}
	req.Normalize()

	if !req.WindowPairsValid() {
		utils.Error(c, 1001, "窗口配置无效：start 不能晚于 end")
		return
	}

	if req.Name != "" {
		hackathon.Name = req.Name
	}
	hackathon.CoverImage = req.CoverImage
	hackathon.Description = req.Description
	hackathon.OrganizerURL = req.OrganizerURL
	if req.MaxTeamSize >= 1 {
		hackathon.MaxTeamSize = req.MaxTeamSize
	}
	hackathon.TeamRegStart = req.TeamRegStart
	hackathon.TeamRegEnd = req.TeamRegEnd
	hackathon.TeamRegDeadline = req.TeamRegDeadline
	hackathon.SubmissionStart = req.SubmissionStart
	hackathon.SubmissionEnd = req.SubmissionEnd
	hackathon.SubmissionDeadline = req.SubmissionDeadline
	hackathon.JudgingStart = req.JudgingStart
	hackathon.JudgingEnd = req.JudgingEnd
	hackathon.JudgingDeadline = req.JudgingDeadline

	if err := database.DB.Save(&hackathon).Error; err != nil {
		utils.Error(c, 5000, "更新活动失败: "+err.Error())
		return
	}

	utils.Success(c, "Hackathon updated successfully", nil)
}

// UpdateHackathonStatus 主办方手动推进生命周期标签。
// 注意：status 改动不影响窗口判定，提交窗口不会因此提前重开或失效。
func UpdateHackathonStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var hackathon models.Hackathon
	if err := database.DB.First(&hackathon, id).Error; err != nil {
		utils.Error(c, 4004, "活动不存在")
		return
	}
	if !requireOrganizer(c, hackathon.ID) {
		return
	}

	var req dto.UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效")
		return
	}

	status := models.HackathonStatus(req.Status)
	switch status {
	case models.HackathonStatusDraft, models.HackathonStatusPublished,
		models.HackathonStatusRegistrationClosed, models.HackathonStatusSubmissionClosed,
		models.HackathonStatusJudging, models.HackathonStatusResultsPublished:
	default:
		utils.Error(c, 1001, "status 取值无效")
		return
	}

	if err := database.DB.Model(&hackathon).Update("status", status).Error; err != nil {
		utils.Error(c, 5000, "更新状态失败")
		return
	}

	// 公布结果时重建榜单缓存
	if status == models.HackathonStatusResultsPublished {
		services.UpdateLeaderboardCache(hackathon.ID)
	}

	utils.Success(c, "Hackathon status updated successfully", nil)
}

// AddOrganizer 为活动追加组织者
func AddOrganizer(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var hackathon models.Hackathon
	if err := database.DB.First(&hackathon, id).Error; err != nil {
		utils.Error(c, 4004, "活动不存在")
		return
	}
	if !requireOrganizer(c, hackathon.ID) {
		return
	}

	var req struct {
		UserID uint32 `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效")
		return
	}

	var user models.User
	if err := database.DB.First(&user, req.UserID).Error; err != nil {
		utils.Error(c, 4004, "用户不存在")
		return
	}

	organizer := models.HackathonOrganizer{HackathonID: hackathon.ID, UserID: req.UserID}
	if err := database.DB.Create(&organizer).Error; err != nil {
		utils.Error(c, 3001, "该用户已是组织者")
		return
	}

	utils.Success(c, "Organizer added successfully", nil)
}
