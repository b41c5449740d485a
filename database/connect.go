// file: database/connect.go
package database

import (
	"HackHub/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"log"
	"time"
)

var DB *gorm.DB

func Connect() {
	var err error
	dsn := "root:123456@tcp(localhost:3306)/hackhub?charset=utf8mb4&parseTime=True&loc=Local"
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to get underlying sql.DB:", err)
	}

	// SetMaxIdleConns 用于设置连接池中空闲连接的最大数量。
	sqlDB.SetMaxIdleConns(10)

	// SetMaxOpenConns 设置打开数据库连接的最大数量。
	sqlDB.SetMaxOpenConns(100)

	// SetConnMaxLifetime 设置了连接可复用的最大时间。
	// 设置为1小时以规避 MySQL 的 'wait_timeout' 问题，
	// GORM 在下次使用前会安全地重新建立过期连接。
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection successfully established and connection pool configured.")
}

// MigrateTables 函数 (如果你不希望 GORM 自动修改表结构，应该禁用它)
func MigrateTables() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.UserRoleGrant{},
		&models.Hackathon{},
		&models.HackathonOrganizer{},
		&models.Sponsor{},
		&models.Category{},
		&models.Team{},
		&models.TeamMember{},
		&models.Submission{},
		&models.Attachment{},
		&models.Rating{},
		&models.AssignmentRequest{},
		&models.LeaderboardEntry{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	log.Println("Database migration completed.")
}
