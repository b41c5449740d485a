// file: models/user_role.go
package models

import "time"

// UserRoleGrant 对应 hackhub_user_roles 表，记录用户被授予的角色。
// (user_id, role) 唯一，同一角色不会重复授予。
type UserRoleGrant struct {
	ID        uint32    `gorm:"primarykey" json:"id"`
	UserID    uint32    `gorm:"uniqueIndex:unique_user_role;not null" json:"user_id"`
	Role      Role      `gorm:"uniqueIndex:unique_user_role;type:enum('participant','organizer','sponsor','judge','mentor','super_admin');not null" json:"role"`
	GrantedBy uint32    `json:"granted_by"`
	CreatedAt time.Time `json:"created_at"`
}

func (UserRoleGrant) TableName() string {
	return "hackhub_user_roles"
}
