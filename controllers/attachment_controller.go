// file: controllers/attachment_controller.go
package controllers

import (
	"HackHub/database"
	"HackHub/models"
	"HackHub/services"
	"HackHub/utils"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// UploadAttachment —— 为队伍提交上传文档附件 (multipart)。
// 只有队长可以上传，受提交窗口约束；同槽位重复上传视为替换。
func UploadAttachment(c *gin.Context) {
	teamID, _ := strconv.Atoi(c.Param("id"))
	actorID := currentUserID(c)

	slotInt, err := strconv.Atoi(c.DefaultPostForm("slot", "1"))
	if err != nil || !services.CheckAttachmentSlot(uint8(slotInt)) {
		utils.Error(c, 1001, "slot 取值无效（1/2）")
		return
	}
	slot := uint8(slotInt)

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

	// 附件变更与作品提交同一套门禁
	if d := services.CheckSubmit(&hackathon, &team, actorID, time.Now()); !d.Allowed {
		denyDecision(c, d)
		return
	}

	var submission models.Submission
	if err := database.DB.Where("team_id = ?", team.ID).First(&submission).Error; err != nil {
		utils.Error(c, 4004, "该队伍尚未提交作品，请先提交")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		utils.Error(c, 1001, "获取文件失败")
		return
	}

	// 保存到本地（示例路径：./uploads），存储文件名使用随机 key 防覆盖
	if err := os.MkdirAll("./uploads", 0o755); err != nil {
		utils.Error(c, 5000, "创建上传目录失败")
		return
	}
	dst := filepath.Join("./uploads", utils.GenerateStorageKey(filepath.Ext(file.Filename)))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		utils.Error(c, 5000, "保存文件失败")
		return
	}

	// 计算 SHA256
	f, err := os.Open(dst)
	if err != nil {
		utils.Error(c, 5000, "打开文件失败")
		return
	}
	defer f.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, f); err != nil {
		utils.Error(c, 5000, "计算哈希失败")
		return
	}

	newAttachment := models.Attachment{
		SubmissionID: submission.ID,
		Slot:         slot,
		FileName:     file.Filename,
		StoragePath:  dst,
		FileSize:     file.Size,
		SHA256:       hex.EncodeToString(hasher.Sum(nil)),
		Status:       models.AttachmentStatusActive,
		UploadedBy:   actorID,
	}

	// 同槽位已有附件时替换记录，旧文件标记删除
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Attachment
		err := tx.Where("submission_id = ? AND slot = ?", submission.ID, slot).First(&existing).Error
		if err == nil {
			existing.FileName = newAttachment.FileName
			existing.StoragePath = newAttachment.StoragePath
			existing.FileSize = newAttachment.FileSize
			existing.SHA256 = newAttachment.SHA256
			existing.Status = models.AttachmentStatusActive
			existing.UploadedBy = actorID
			newAttachment = existing
			return tx.Save(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&newAttachment).Error
	})
	if err != nil {
		utils.Error(c, 5000, "创建附件记录失败")
		return
	}

	utils.Success(c, "success", gin.H{
		"attachment_id": newAttachment.ID,
		"slot":          newAttachment.Slot,
		"sha256":        newAttachment.SHA256,
	})
}

// DeleteAttachment —— 队长移除文档附件（软标记，不删文件）
func DeleteAttachment(c *gin.Context) {
	attachmentID, _ := strconv.Atoi(c.Param("attachment_id"))
	actorID := currentUserID(c)

	var attachment models.Attachment
	if err := database.DB.First(&attachment, attachmentID).Error; err != nil {
		utils.Error(c, 4004, "附件不存在")
		return
	}

	var submission models.Submission
	if err := database.DB.First(&submission, attachment.SubmissionID).Error; err != nil {
		utils.Error(c, 4004, "提交不存在")
		return
	}
	var team models.Team
	if err := database.DB.First(&team, submission.TeamID).Error; err != nil {
		utils.Error(c, 4004, "队伍不存在")
		return
	}
	var hackathon models.Hackathon
	if err := database.DB.First(&hackathon, team.HackathonID).Error; err != nil {
		utils.Error(c, 4004, "活动不存在")
		return
	}

	if d := services.CheckSubmit(&hackathon, &team, actorID, time.Now()); !d.Allowed {
		denyDecision(c, d)
		return
	}

	if err := database.DB.Model(&attachment).Update("status", models.AttachmentStatusDeleted).Error; err != nil {
		utils.Error(c, 5000, "删除附件失败")
		return
	}

	utils.Success(c, "Attachment deleted successfully", nil)
}

// DownloadAttachment —— 统一网关下载
func DownloadAttachment(c *gin.Context) {
	attachmentID, _ := strconv.Atoi(c.Param("attachment_id"))

	var attachment models.Attachment
	if err := database.DB.First(&attachment, attachmentID).Error; err != nil {
		utils.Error(c, 4004, "附件不存在")
		return
	}
	if attachment.Status != models.AttachmentStatusActive {
		utils.Error(c, 4004, "附件不存在")
		return
	}

	if attachment.StoragePath == "" {
		utils.Error(c, 5000, "存储路径为空")
		return
	}
	c.FileAttachment(attachment.StoragePath, attachment.FileName)
}
