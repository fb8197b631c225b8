package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smarteredu/portal/internal/app/controllers"
	"github.com/smarteredu/portal/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
) {
	// Root endpoint
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "Welcome to the Smarter Education API!"})
	})

	// User directory routes
	users := router.Group("/users")
	{
		users.POST("", userController.CreateUser)
		users.GET("", userController.ListUsers)
		users.GET("/:id", userController.GetUserByID)
		users.DELETE("/:id", userController.DeleteUser)
	}

	// Course catalog routes
	courses := router.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
