// file: models/attachment.go
package models

import "time"

// 附件状态
type AttachmentStatus string

const (
	AttachmentStatusActive  AttachmentStatus = "active"
	AttachmentStatusDeleted AttachmentStatus = "deleted"
)

// Attachment 提交附带的文档附件，每个提交最多两个槽位 (slot 1/2)，
// 同槽位重复上传视为替换。
type Attachment struct {
	ID           uint64           `gorm:"primarykey" json:"id"`
	SubmissionID uint64           `gorm:"uniqueIndex:unique_submission_slot;not null" json:"submission_id"`
	Slot         uint8            `gorm:"uniqueIndex:unique_submission_slot;not null" json:"slot"`
	FileName     string           `gorm:"size:255;not null" json:"file_name"`
	StoragePath  string           `gorm:"size:255;not null" json:"-"`
	FileSize     int64            `json:"file_size"`
	SHA256       string           `gorm:"size:64" json:"sha256"`
	Status       AttachmentStatus `gorm:"type:enum('active','deleted');default:'active'" json:"status"`
	UploadedBy   uint32           `json:"uploaded_by"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func (Attachment) TableName() string {
	return "hackhub_attachment"
}
