// file: controllers/user_controller.go
package controllers

import (
	"HackHub/database"
	"HackHub/models"
	"HackHub/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"strconv"
)

// --- 公开接口 ---

func Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required,min=8"`
		Email    string `json:"email" binding:"required,email"`
		RealName string `json:"real_name"`
		Bio      string `json:"bio"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("username = ? OR email = ?", req.Username, req.Email).First(&user).Error; err == nil {
		utils.Error(c, 2001, "用户名或邮箱已被注册")
		return
	}

	newUser := models.User{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		RealName: req.RealName,
		Bio:      req.Bio,
	}

	// 新注册用户默认授予 participant 角色，其余角色由超管另行授予
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}
		grant := models.UserRoleGrant{
			UserID: newUser.ID,
			Role:   models.RoleParticipant,
		}
		return tx.Create(&grant).Error
	})
	if err != nil {
		utils.Error(c, 5000, "数据库错误: "+err.Error())
		return
	}

	utils.Success(c, "User registered successfully", gin.H{
		"id":       newUser.ID,
		"username": newUser.Username,
		"roles":    []models.Role{models.RoleParticipant},
	})
}

func Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Preload("RoleGrants").Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.Error(c, 2002, "用户不存在或密码错误")
		return
	}

	if !user.CheckPassword(req.Password) {
		utils.Error(c, 2002, "用户不存在或密码错误")
		return
	}

	if user.Status == models.StatusBanned {
		utils.Error(c, 2005, "用户已被封禁")
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.Error(c, 5002, "Token 生成失败")
		return
	}

	utils.Success(c, "Login success", gin.H{
		"token":    token,
		"id":       user.ID,
		"username": user.Username,
		"roles":    user.Roles(),
	})
}

// --- 登录后接口 ---

func GetUserDetail(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的用户ID")
		return
	}

	var user models.User
	if err := database.DB.Preload("RoleGrants").First(&user, userID).Error; err != nil {
		utils.Error(c, 4004, "用户不存在")
		return
	}

	utils.Success(c, "success", gin.H{
		"id":        user.ID,
		"username":  user.Username,
		"email":     user.Email,
		"real_name": user.RealName,
		"bio":       user.Bio,
		"roles":     user.Roles(),
		"status":    user.Status,
	})
}

func UpdateUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的用户ID")
		return
	}

	// 只能修改自己的资料，超管除外
	actorID := currentUserID(c)
	if uint32(userID) != actorID && !currentRoles(c).Has(models.RoleSuperAdmin) {
		utils.Error(c, 4003, "权限不足")
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		utils.Error(c, 4004, "用户不存在")
		return
	}

	var req struct {
		RealName string `json:"real_name"`
		Bio      string `json:"bio"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效")
		return
	}

	if req.RealName != "" {
		user.RealName = req.RealName
	}
	user.Bio = req.Bio
	if req.Password != "" {
		if len(req.Password) < 8 {
			utils.Error(c, 1001, "密码长度至少 8 位")
			return
		}
		user.Password = req.Password
	}

	if err := database.DB.Save(&user).Error; err != nil {
		utils.Error(c, 5000, "更新用户失败")
		return
	}

	utils.Success(c, "User updated successfully", nil)
}

// --- 管理员接口 ---

func GetUserList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	search := c.Query("search")

	var users []models.User
	var total int64

	db := database.DB.Model(&models.User{}).Preload("RoleGrants")

	if search != "" {
		db = db.Where("username LIKE ? OR email LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	db.Count(&total)
	db.Order("id asc").Offset((page - 1) * limit).Limit(limit).Find(&users)

	type UserInfo struct {
		ID       uint32            `json:"id"`
		Username string            `json:"username"`
		Email    string            `json:"email"`
		Roles    models.RoleSet    `json:"roles"`
		Status   models.UserStatus `json:"status"`
	}
	infos := make([]UserInfo, 0, len(users))
	for i := range users {
		infos = append(infos, UserInfo{
			ID:       users[i].ID,
			Username: users[i].Username,
			Email:    users[i].Email,
			Roles:    users[i].Roles(),
			Status:   users[i].Status,
		})
	}

	utils.Success(c, "success", gin.H{
		"total": total,
		"users": infos,
	})
}

func UpdateUserStatus(c *gin.Context) {
	userID, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效")
		return
	}

	status := models.UserStatus(req.Status)
	if status != models.StatusActive && status != models.StatusBanned {
		utils.Error(c, 1001, "status 取值无效")
		return
	}

	result := database.DB.Model(&models.User{}).Where("id = ?", userID).Update("status", status)
	if result.Error != nil {
		utils.Error(c, 5000, "更新用户状态失败")
		return
	}
	if result.RowsAffected == 0 {
		utils.Error(c, 4004, "用户不存在")
		return
	}

	utils.Success(c, "User status updated successfully", nil)
}

// GrantRole 超管为用户授予角色（角色是封闭枚举）
func GrantRole(c *gin.Context) {
	userID, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效")
		return
	}

	role := models.Role(req.Role)
	if !models.IsValidRole(role) {
		utils.Error(c, 1001, "role 取值无效")
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		utils.Error(c, 4004, "用户不存在")
		return
	}

	grant := models.UserRoleGrant{
		UserID:    uint32(userID),
		Role:      role,
		GrantedBy: currentUserID(c),
	}
	if err := database.DB.Create(&grant).Error; err != nil {
		utils.Error(c, 3001, "该用户已持有此角色")
		return
	}

	utils.Success(c, "Role granted successfully", nil)
}

// RevokeRole 超管收回用户角色
func RevokeRole(c *gin.Context) {
	userID, _ := strconv.Atoi(c.Param("id"))
	role := models.Role(c.Param("role"))

	if !models.IsValidRole(role) {
		utils.Error(c, 1001, "role 取值无效")
		return
	}

	result := database.DB.Where("user_id = ? AND role = ?", userID, role).Delete(&models.UserRoleGrant{})
	if result.Error != nil {
		utils.Error(c, 5000, "收回角色失败")
		return
	}
	if result.RowsAffected == 0 {
		utils.Error(c, 4004, "该用户未持有此角色")
		return
	}

	utils.Success(c, "Role revoked successfully", nil)
}
