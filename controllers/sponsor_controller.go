// file: controllers/sponsor_controller.go
package controllers

import (
	"HackHub/database"
	"HackHub/models"
	"HackHub/utils"
	"github.com/gin-gonic/gin"
	"strconv"
)

// GetSponsorList 查询活动的赞助商列表（公开）
func GetSponsorList(c *gin.Context) {
	hackathonID, _ := strconv.Atoi(c.Param("id"))

	var sponsors []models.Sponsor
	database.DB.Where("hackathon_id = ?", hackathonID).Order("id asc").Find(&sponsors)

	utils.Success(c, "success", gin.H{
		"total":    len(sponsors),
		"sponsors": sponsors,
	})
}

// AddSponsor 新增赞助商（组织者）。赞助费用/广告投放流程由外部系统处理
func AddSponsor(c *gin.Context) {
	hackathonID, _ := strconv.Atoi(c.Param("id"))

	var hackathon models.Hackathon
	if err := database.DB.First(&hackathon, hackathonID).Error; err != nil {
		utils.Error(c, 4004, "活动不存在")
		return
	}
	if !requireOrganizer(c, hackathon.ID) {
		return
	}

	var req struct {
		SponsorName string `json:"sponsor_name" binding:"required"`
		LogoURL     string `json:"logo_url"`
		Description string `json:"description"`
		Link        string `json:"link"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	sponsor := models.Sponsor{
		HackathonID: hackathon.ID,
		SponsorName: req.SponsorName,
		LogoURL:     req.LogoURL,
		Description: req.Description,
		Link:        req.Link,
	}

	if err := database.DB.Create(&sponsor).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}

	utils.Success(c, "Sponsor added successfully", gin.H{"id": sponsor.ID})
}

// UpdateSponsor 修改赞助商信息（组织者）
func UpdateSponsor(c *gin.Context) {
	sponsorID, _ := strconv.Atoi(c.Param("sponsor_id"))

	var sponsor models.Sponsor
	if err := database.DB.First(&sponsor, sponsorID).Error; err != nil {
		utils.Error(c, 4004, "赞助商不存在")
		return
	}
	if !requireOrganizer(c, sponsor.HackathonID) {
		return
	}

	var req struct {
		SponsorName string `json:"sponsor_name"`
		LogoURL     string `json:"logo_url"`
		Description string `json:"description"`
		Link        string `json:"link"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	if req.SponsorName != "" {
		sponsor.SponsorName = req.SponsorName
	}
	sponsor.LogoURL = req.LogoURL
	sponsor.Description = req.Description
	sponsor.Link = req.Link

	if err := database.DB.Save(&sponsor).Error; err != nil {
		utils.Error(c, 5000, "更新失败: "+err.Error())
		return
	}

	utils.Success(c, "Sponsor updated successfully", nil)
}

// DeleteSponsor 删除赞助商（组织者）
func DeleteSponsor(c *gin.Context) {
	sponsorID, _ := strconv.Atoi(c.Param("sponsor_id"))

	var sponsor models.Sponsor
	if err := database.DB.First(&sponsor, sponsorID).Error; err != nil {
		utils.Error(c, 4004, "赞助商不存在")
		return
	}
	if !requireOrganizer(c, sponsor.HackathonID) {
		return
	}

	if err := database.DB.Delete(&sponsor).Error; err != nil {
		utils.Error(c, 5000, "删除失败: "+err.Error())
		return
	}

	utils.Success(c, "Sponsor deleted successfully", nil)
}
