// file: models/category.go
package models

import (
	"gorm.io/gorm"
	"time"
)

// 自定义赛道状态类型
type CategoryStatus string

const (
	CategoryStatusActive    CategoryStatus = "active"
	CategoryStatusSuspended CategoryStatus = "suspended"
)

// Category 队伍可选归属的赛道/组别，MaxTeams 为 0 表示不限队伍数
type Category struct {
	ID           uint32         `gorm:"primarykey" json:"id"`
	HackathonID  uint32         `gorm:"not null" json:"hackathon_id"`
	CategoryName string         `gorm:"column:category_name;size:100;not null" json:"category_name"`
	Description  string         `gorm:"type:text" json:"description"`
	MaxTeams     uint           `gorm:"default:0" json:"max_teams"`
	TeamCount    uint           `gorm:"default:0" json:"team_count"`
	Status       CategoryStatus `gorm:"type:enum('active','suspended');default:'active';not null" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"` // GORM 的软删除支持, JSON中忽略
}

// TableName 方法告诉 GORM 这个模型对应的表名
func (Category) TableName() string {
	return "hackhub_category"
}

// 定义公开和管理员两种不同的序列化结构
type PublicCategoryInfo struct {
	ID           uint32 `json:"id"`
	CategoryName string `json:"category_name"`
	Description  string `json:"description"`
	TeamCount    uint   `json:"team_count"`
}

type AdminCategoryInfo struct {
	ID           uint32         `json:"id"`
	CategoryName string         `json:"category_name"`
	Description  string         `json:"description"`
	MaxTeams     uint           `json:"max_teams"`
	TeamCount    uint           `json:"team_count"`
	Status       CategoryStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
