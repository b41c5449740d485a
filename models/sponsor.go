// file: models/sponsor.go
package models

// Sponsor 对应 hackhub_hackathon_sponsors 表 (已添加 JSON 标签)
type Sponsor struct {
	ID          uint32 `gorm:"primarykey" json:"id,omitempty"`
	HackathonID uint32 `gorm:"not null" json:"hackathon_id"`
	SponsorName string `gorm:"size:100;not null" json:"sponsor_name"`
	LogoURL     string `gorm:"size:255" json:"logo_url"`
	Description string `gorm:"type:text" json:"description"`
	Link        string `gorm:"size:255" json:"link"`
}

func (Sponsor) TableName() string {
	return "hackhub_hackathon_sponsors"
}
