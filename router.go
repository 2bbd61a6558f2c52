package main

import (
	handler "github.com/mdtousif1712-create/prodigy-ai/biz/adaptor/controller"
	"github.com/mdtousif1712-create/prodigy-ai/biz/adaptor/controller/apigateway"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizeRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", handler.Ping)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", apigateway.SignUp)
			auth.POST("/signin", apigateway.SignIn)
			auth.GET("/me", apigateway.GetMe)
			auth.PUT("/me", apigateway.UpdateProfile)
		}

		classes := api.Group("/classes")
		{
			classes.POST("", apigateway.CreateClass)
			classes.GET("", apigateway.ListClasses)
			classes.POST("/join", apigateway.JoinClass)
			classes.GET("/:class_id", apigateway.GetClass)
			classes.DELETE("/:class_id", apigateway.DeleteClass)
			classes.GET("/:class_id/students", apigateway.GetClassStudents)
			classes.DELETE("/:class_id/students/:student_id", apigateway.RemoveStudent)
		}

		announcements := api.Group("/announcements")
		{
			announcements.POST("", apigateway.CreateAnnouncement)
			announcements.GET("", apigateway.ListAnnouncements)
		}

		assignments := api.Group("/assignments")
		{
			assignments.POST("", apigateway.CreateAssignment)
			assignments.GET("", apigateway.ListAssignments)
			assignments.GET("/:assignment_id", apigateway.GetAssignment)
		}

		submissions := api.Group("/submissions")
		{
			submissions.POST("", apigateway.CreateSubmission)
			submissions.GET("", apigateway.ListSubmissions)
			submissions.POST("/grade", apigateway.GradeSubmission)
		}

		files := api.Group("/files")
		{
			files.POST("/upload", apigateway.UploadFile)
			files.GET("", apigateway.ListFiles)
			files.GET("/:file_id", apigateway.GetFile)
			files.GET("/:file_id/download", apigateway.DownloadFile)
			files.DELETE("/:file_id", apigateway.DeleteFile)
		}

		folders := api.Group("/folders")
		{
			folders.POST("", apigateway.CreateFolder)
			folders.GET("", apigateway.ListFolders)
			folders.DELETE("/:folder_id", apigateway.DeleteFolder)
		}

		chat := api.Group("/chat")
		{
			chat.POST("/messages", apigateway.SendMessage)
			chat.GET("/messages", apigateway.ListMessages)
			chat.GET("/conversations", apigateway.ListConversations)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("", apigateway.ListNotifications)
			notifications.PUT("/:notification_id/read", apigateway.MarkNotificationRead)
			notifications.PUT("/read-all", apigateway.MarkAllNotificationsRead)
		}

		ai := api.Group("/ai")
		{
			ai.POST("/chat", apigateway.AIChat)
			ai.POST("/summarize", apigateway.AISummarize)
			ai.GET("/history", apigateway.ListAIHistory)
		}

		analytics := api.Group("/analytics")
		{
			analytics.GET("/student", apigateway.GetStudentAnalytics)
			analytics.GET("/class/:class_id", apigateway.GetClassAnalytics)
		}

		api.GET("/leaderboard", apigateway.GetLeaderboard)
		api.GET("/calendar", apigateway.GetCalendar)
		api.GET("/search", apigateway.Search)
	}
}
