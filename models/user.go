// file: models/user.go
package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"time"
)

// 自定义类型 Role, UserStatus
type Role string
type UserStatus string

const (
	RoleParticipant Role       = "participant"
	RoleOrganizer   Role       = "organizer"
	RoleSponsor     Role       = "sponsor"
	RoleJudge       Role       = "judge"
	RoleMentor      Role       = "mentor"
	RoleSuperAdmin  Role       = "super_admin"
	StatusActive    UserStatus = "active"
	StatusBanned    UserStatus = "banned"
)

// RoleSet 是用户持有的角色集合，角色是封闭枚举，一个用户可以同时持有多个
type RoleSet []Role

func (rs RoleSet) Has(role Role) bool {
	for _, r := range rs {
		if r == role {
			return true
		}
	}
	return false
}

func (rs RoleSet) HasAny(roles ...Role) bool {
	for _, r := range roles {
		if rs.Has(r) {
			return true
		}
	}
	return false
}

// IsValidRole 校验角色字符串是否属于封闭枚举
func IsValidRole(r Role) bool {
	switch r {
	case RoleParticipant, RoleOrganizer, RoleSponsor, RoleJudge, RoleMentor, RoleSuperAdmin:
		return true
	}
	return false
}

type User struct {
	ID        uint32     `gorm:"primarykey" json:"id"`
	Username  string     `gorm:"size:50;unique;not null" json:"username"`
	Password  string     `gorm:"size:255;not null" json:"-"`
	Email     string     `gorm:"size:100;unique;not null" json:"email"`
	RealName  string     `gorm:"size:50" json:"real_name,omitempty"`
	Bio       string     `gorm:"type:text" json:"bio,omitempty"`
	Status    UserStatus `gorm:"type:enum('active','banned');not null;default:'active'" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	RoleGrants []UserRoleGrant `gorm:"foreignKey:UserID" json:"role_grants,omitempty"`
}

func (User) TableName() string {
	return "hackhub_user"
}

// Roles 返回用户持有的角色集合（需要预加载 RoleGrants）
func (u *User) Roles() RoleSet {
	rs := make(RoleSet, 0, len(u.RoleGrants))
	for _, g := range u.RoleGrants {
		rs = append(rs, g.Role)
	}
	return rs
}

// BeforeSave GORM Hook，在保存用户前自动哈希密码
func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	// 在新用户创建时 (ID=0) 或在老用户更新密码时，都执行哈希
	if u.ID == 0 || tx.Statement.Changed("Password") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashedPassword)
	}
	return
}

// CheckPassword 校验密码是否正确
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}
