package routes

import (
	"github.com/jiamdoescs/AnnenBites/controllers"
	"github.com/jiamdoescs/AnnenBites/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Public JSON hook used by the React community widget
	r.POST("/api/clubPosts", controllers.ClubPostsAPI)

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/preferences", controllers.GetPreferences)
		user.PUT("/preferences", controllers.SavePreferences)
	}

	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.GET("/dashboard", controllers.GetDashboard)

		protected.POST("/meals", controllers.LogMeal)
		protected.DELETE("/meals/:id", controllers.RemoveMeal)
		protected.DELETE("/meals", controllers.ResetIntake)

		protected.POST("/items/:id/rating", controllers.RateItem)

		protected.GET("/feedback", controllers.ListFeedback)
		protected.POST("/feedback", controllers.PostFeedback)
		protected.POST("/feedback/:id/like", controllers.ToggleFeedbackLike)

		protected.GET("/community", controllers.GetCommunity)
		protected.POST("/community/posts", controllers.CreateClubPost)

		protected.POST("/admin/scrape", controllers.TriggerScrape)
	}

	return r
}
