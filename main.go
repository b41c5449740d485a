// file: main.go
package main

import (
	"HackHub/database"
	"HackHub/routes"
	"log"
)

func main() {
	database.Connect()
	database.InitRedis()

	// 禁用自动迁移 (推荐，表结构由 SQL 脚本维护)
	// database.MigrateTables()

	r := routes.SetupRouter()

	log.Println("Starting server on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
