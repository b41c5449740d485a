// file: routes/router.go
package routes

import (
	"HackHub/controllers"
	"HackHub/middlewares"
	"HackHub/models"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	apiV1 := r.Group("/api/v1")
	{
		// --- 用户模块 ---
		usersPublic := apiV1.Group("/users")
		{
			usersPublic.POST("/register", controllers.Register)
			usersPublic.POST("/login", controllers.Login)
		}
		usersAuth := apiV1.Group("/users")
		usersAuth.Use(middlewares.JWTAuthMiddleware())
		{
			usersAuth.GET("/:id", controllers.GetUserDetail)
			usersAuth.PUT("/:id", controllers.UpdateUser)
		}
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleSuperAdmin))
		{
			adminRoutes.GET("/users", controllers.GetUserList)
			adminRoutes.PUT("/users/:id/status", controllers.UpdateUserStatus)
			adminRoutes.POST("/users/:id/roles", controllers.GrantRole)
			adminRoutes.DELETE("/users/:id/roles/:role", controllers.RevokeRole)
		}

		// --- 活动模块 ---
		hackathonRoutes := apiV1.Group("/hackathons")
		{
			// 公开接口
			hackathonRoutes.GET("", controllers.GetHackathonList)
			hackathonRoutes.GET("/:id", controllers.GetHackathonDetail)
			hackathonRoutes.GET("/:id/categories", controllers.GetCategoryList)
			hackathonRoutes.GET("/:id/categories/:category_id", middlewares.JWTTryAuthMiddleware(), controllers.GetCategoryDetail)
			hackathonRoutes.GET("/:id/sponsors", controllers.GetSponsorList)
			hackathonRoutes.GET("/:id/leaderboard", middlewares.JWTTryAuthMiddleware(), controllers.GetLeaderboard)

			// 统一权限预检（UI 控件显隐唯一依据）
			hackathonRoutes.GET("/:id/permissions", middlewares.JWTAuthMiddleware(), controllers.CheckPermission)

			// 组织者接口
			hackathonRoutes.POST("", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleOrganizer), controllers.CreateHackathon)
			hackathonRoutes.PUT("/:id", middlewares.JWTAuthMiddleware(), controllers.UpdateHackathon)
			hackathonRoutes.PUT("/:id/status", middlewares.JWTAuthMiddleware(), controllers.UpdateHackathonStatus)
			hackathonRoutes.POST("/:id/organizers", middlewares.JWTAuthMiddleware(), controllers.AddOrganizer)
			hackathonRoutes.POST("/:id/categories", middlewares.JWTAuthMiddleware(), controllers.CreateCategory)
			hackathonRoutes.PUT("/:id/categories/:category_id", middlewares.JWTAuthMiddleware(), controllers.UpdateCategory)
			hackathonRoutes.DELETE("/:id/categories/:category_id", middlewares.JWTAuthMiddleware(), controllers.DeleteCategory)
			hackathonRoutes.POST("/:id/sponsors", middlewares.JWTAuthMiddleware(), controllers.AddSponsor)
			hackathonRoutes.PUT("/:id/sponsors/:sponsor_id", middlewares.JWTAuthMiddleware(), controllers.UpdateSponsor)
			hackathonRoutes.DELETE("/:id/sponsors/:sponsor_id", middlewares.JWTAuthMiddleware(), controllers.DeleteSponsor)
			hackathonRoutes.POST("/:id/leaderboard/refresh", middlewares.JWTAuthMiddleware(), controllers.RefreshLeaderboard)

			// 组织者队伍管理
			hackathonRoutes.GET("/:id/admin/teams", middlewares.JWTAuthMiddleware(), controllers.AdminGetTeams)
			hackathonRoutes.DELETE("/:id/admin/teams/:team_id", middlewares.JWTAuthMiddleware(), controllers.AdminDeleteTeam)

			// 评委接口
			hackathonRoutes.GET("/:id/judge/submissions", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleJudge), controllers.JudgeListSubmissions)
		}

		// --- 队伍模块 ---
		teamRoutes := apiV1.Group("/teams")
		teamRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			teamRoutes.POST("", controllers.CreateTeam)
			teamRoutes.POST("/join", controllers.JoinTeam)
			teamRoutes.GET("/:id", controllers.GetTeamDetail)
			teamRoutes.PUT("/:id", controllers.UpdateTeam)
			teamRoutes.POST("/:id/leave", controllers.LeaveTeam)
			teamRoutes.POST("/:id/transfer-leadership", controllers.TransferLeadership)
			teamRoutes.DELETE("/:id", controllers.DisbandTeam)
			teamRoutes.DELETE("/:id/members/:user_id", controllers.KickMember)

			// 锁定/解锁（组织者/超管，handler 内部校验）
			teamRoutes.PUT("/:id/lock", controllers.LockTeam)
			teamRoutes.PUT("/:id/unlock", controllers.UnlockTeam)

			// 作品提交（create-or-update 归并）
			teamRoutes.POST("/:id/submission", controllers.SubmitProject)
			teamRoutes.PUT("/:id/submission", controllers.SubmitProject)
			teamRoutes.GET("/:id/submission", controllers.GetTeamSubmission)

			// 提交文档附件
			teamRoutes.POST("/:id/attachments", controllers.UploadAttachment)

			// 导师沟通渠道访问判定
			teamRoutes.GET("/:id/mentor-chat/access", controllers.GetMentorChatAccess)
		}

		// --- 指派模块 ---
		assignmentRoutes := apiV1.Group("/assignments")
		assignmentRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			assignmentRoutes.POST("", controllers.CreateAssignment)
			assignmentRoutes.GET("/mine", controllers.ListMyAssignments)
			assignmentRoutes.POST("/:id/accept", controllers.AcceptAssignment)
			assignmentRoutes.POST("/:id/reject", controllers.RejectAssignment)
		}

		// --- 评分模块 ---
		submissionRoutes := apiV1.Group("/submissions")
		submissionRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			submissionRoutes.POST("/:id/rating", middlewares.RoleAuthMiddleware(models.RoleJudge), controllers.RateSubmission)
			submissionRoutes.GET("/:id/ratings", controllers.GetSubmissionRatings)
		}

		// --- 附件下载统一网关 ---
		attachmentRoutes := apiV1.Group("/attachments")
		{
			attachmentRoutes.GET("/:attachment_id/download", middlewares.JWTAuthMiddleware(), controllers.DownloadAttachment)
			attachmentRoutes.DELETE("/:attachment_id", middlewares.JWTAuthMiddleware(), controllers.DeleteAttachment)
		}
	}

	return r
}
