// file: controllers/category_controller.go
package controllers

import (
	"HackHub/database"
	"HackHub/models"
	"HackHub/utils"
	"github.com/gin-gonic/gin"
	"strconv"
)

// CreateCategory 新增赛道（组织者）
func CreateCategory(c *gin.Context) {
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
		CategoryName string `json:"category_name" binding:"required"`
		Description  string `json:"description"`
		MaxTeams     uint   `json:"max_teams"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var existing models.Category
	if err := database.DB.Where("hackathon_id = ? AND category_name = ?", hackathon.ID, req.CategoryName).First(&existing).Error; err == nil {
		utils.Error(c, 4001, "Category already exists")
		return
	}

	category := models.Category{
		HackathonID:  hackathon.ID,
		CategoryName: req.CategoryName,
		Description:  req.Description,
		MaxTeams:     req.MaxTeams,
	}

	if err := database.DB.Create(&category).Error; err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}

	utils.Success(c, "Category created successfully", gin.H{
		"id":            category.ID,
		"category_name": category.CategoryName,
	})
}

// GetCategoryList 查询活动的赛道列表（公开）
func GetCategoryList(c *gin.Context) {
	hackathonID, _ := strconv.Atoi(c.Param("id"))

	var categories []models.Category
	database.DB.Where("hackathon_id = ?", hackathonID).Order("id asc").Find(&categories)

	infos := make([]models.PublicCategoryInfo, 0, len(categories))
	for _, cat := range categories {
		infos = append(infos, models.PublicCategoryInfo{
			ID:           cat.ID,
			CategoryName: cat.CategoryName,
			Description:  cat.Description,
			TeamCount:    cat.TeamCount,
		})
	}

	utils.Success(c, "success", gin.H{
		"total":      len(infos),
		"categories": infos,
	})
}

// GetCategoryDetail 查询单个赛道详情，组织者可见上限与状态
func GetCategoryDetail(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("category_id"))
	if err != nil {
		utils.Error(c, 1002, "无效的ID")
		return
	}

	var category models.Category
	if err := database.DB.First(&category, categoryID).Error; err != nil {
		utils.Error(c, 4004, "赛道不存在")
		return
	}

	userID, exists := c.Get("user_id")
	if exists {
		if organizer, _ := isHackathonOrganizer(userID.(uint32), category.HackathonID); organizer || currentRoles(c).Has(models.RoleSuperAdmin) {
			utils.Success(c, "success", models.AdminCategoryInfo{
				ID:           category.ID,
				CategoryName: category.CategoryName,
				Description:  category.Description,
				MaxTeams:     category.MaxTeams,
				TeamCount:    category.TeamCount,
				Status:       category.Status,
				CreatedAt:    category.CreatedAt,
				UpdatedAt:    category.UpdatedAt,
			})
			return
		}
	}

	utils.Success(c, "success", models.PublicCategoryInfo{
		ID:           category.ID,
		CategoryName: category.CategoryName,
		Description:  category.Description,
		TeamCount:    category.TeamCount,
	})
}

// UpdateCategory 修改赛道（组织者）
func UpdateCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("category_id"))
	if err != nil {
		utils.Error(c, 1002, "无效的ID")
		return
	}

	var category models.Category
	if err := database.DB.First(&category, categoryID).Error; err != nil {
		utils.Error(c, 4004, "赛道不存在")
		return
	}
	if !requireOrganizer(c, category.HackathonID) {
		return
	}

	var req struct {
		Description string `json:"description"`
		MaxTeams    *uint  `json:"max_teams"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	category.Description = req.Description
	if req.MaxTeams != nil {
		category.MaxTeams = *req.MaxTeams
	}

	if err := database.DB.Save(&category).Error; err != nil {
		utils.Error(c, 5000, "更新失败: "+err.Error())
		return
	}

	utils.Success(c, "Category updated successfully", nil)
}

// DeleteCategory 删除赛道（组织者），有队伍绑定时拒绝删除
func DeleteCategory(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("category_id"))
	if err != nil {
		utils.Error(c, 1002, "无效的ID")
		return
	}

	var category models.Category
	if err := database.DB.First(&category, categoryID).Error; err != nil {
		utils.Error(c, 4004, "赛道不存在")
		return
	}
	if !requireOrganizer(c, category.HackathonID) {
		return
	}

	// 业务逻辑检查：删除前确认没有队伍绑定此赛道
	var teamCount int64
	database.DB.Model(&models.Team{}).Where("category_id = ?", categoryID).Count(&teamCount)

	if teamCount > 0 {
		utils.Error(c, 4002, "Cannot delete category with existing teams")
		return
	}

	if err := database.DB.Delete(&category).Error; err != nil {
		utils.Error(c, 5000, "删除失败: "+err.Error())
		return
	}

	utils.Success(c, "Category deleted successfully", nil)
}
