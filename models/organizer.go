// file: models/organizer.go
package models

import "time"

// HackathonOrganizer 对应 hackhub_hackathon_organizers 关联表。
// 组织者身份是按活动授予的，全局 organizer 角色仅表示"可被指派"。
type HackathonOrganizer struct {
	ID          uint32    `gorm:"primarykey" json:"id,omitempty"`
	HackathonID uint32    `gorm:"uniqueIndex:unique_hackathon_organizer;not null" json:"hackathon_id"`
	UserID      uint32    `gorm:"uniqueIndex:unique_hackathon_organizer;not null" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (HackathonOrganizer) TableName() string {
	return "hackhub_hackathon_organizers"
}
