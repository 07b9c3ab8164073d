package routers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"okaziyo-api-io/api/internal/container"
	"okaziyo-api-io/api/internal/middleware"
	"okaziyo-api-io/api/pkg/controllers"
	"okaziyo-api-io/api/pkg/models"
)

// InitRoute wires every route group onto a fresh engine.
func InitRoute() *gin.Engine {
	serviceContainer := container.NewServiceContainer()
	router := gin.Default()
	router.Use(cors.Default())

	api := router.Group("/api", middleware.RateLimiter())
	{
		api.GET("/ping", controllers.Ping)

		authRoutes(api, serviceContainer)
		categoryRoutes(api)
		itemRoutes(api, serviceContainer)
		jobRoutes(api, serviceContainer)
		scholarshipRoutes(api, serviceContainer)
		multijobRoutes(api)
		userRoutes(api)
		subscriberRoutes(api, serviceContainer)
	}

	return router
}

func authRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	authController := sc.AuthController

	auth := api.Group("/auth")
	auth.POST("/register", authController.Register())
	auth.POST("/login", authController.Login())
	auth.DELETE("/logout", authController.Logout())
	auth.POST("/password-reset-request", authController.PasswordResetRequest())
	auth.POST("/password-reset", authController.PasswordReset())
}

func categoryRoutes(api *gin.RouterGroup) {
	category := api.Group("/categories")

	category.GET("/", controllers.GetCategories())

	secured := category.Group("").Use(middleware.Auth())
	secured.GET("/:id", middleware.RequireRoles(models.RoleCreator, models.RoleAdmin), controllers.GetCategory())
	secured.POST("/", middleware.RequireRoles(models.RoleAdmin), controllers.CreateCategory())
	secured.PUT("/:id", middleware.RequireRoles(models.RoleAdmin), controllers.UpdateCategory())
	secured.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), controllers.DeleteCategory())
}

func itemRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	itemController := sc.ItemController

	item := api.Group("/items")
	item.GET("/", itemController.GetItems())
	item.GET("/pagination", itemController.GetItemsPagination())
	item.GET("/category/:id", itemController.GetItemsByCategory())
	item.GET("/sub-category/:id", itemController.GetItemsBySubCategory())
	item.GET("/:id", itemController.GetItem())

	secured := item.Group("").Use(middleware.Auth())
	secured.POST("/", itemController.CreateItem())
	secured.PUT("/:id", middleware.RequireRoles(models.RoleCreator, models.RoleAdmin), itemController.UpdateItem())
	secured.DELETE("/:id", middleware.RequireRoles(models.RoleCreator, models.RoleAdmin), itemController.DeleteItem())
}

func jobRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	jobController := sc.JobController

	job := api.Group("/jobs")
	job.GET("/", jobController.GetJobs())
	job.GET("/active", jobController.GetActiveJobs())
	job.GET("/archives", jobController.GetJobArchives())
	job.GET("/category/:id", jobController.GetJobsByCategory())
	job.GET("/sub-category/:id", jobController.GetJobsBySubCategory())

	secured := job.Group("").Use(middleware.Auth())
	secured.POST("/", middleware.RequireRoles(models.RoleAdmin), jobController.CreateJob())
	secured.PUT("/:id", middleware.RequireRoles(models.RoleCreator, models.RoleAdmin), jobController.UpdateJob())
	secured.DELETE("/:id", middleware.RequireRoles(models.RoleCreator, models.RoleAdmin), jobController.DeleteJob())
}

func scholarshipRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	scholarshipController := sc.ScholarshipController

	scholarship := api.Group("/scholarships")
	scholarship.GET("/", scholarshipController.GetScholarships())
	scholarship.GET("/active", scholarshipController.GetActiveScholarships())
	scholarship.GET("/archives", scholarshipController.GetScholarshipArchives())
	scholarship.GET("/category/:id", scholarshipController.GetScholarshipsByCategory())
	scholarship.GET("/sub-category/:id", scholarshipController.GetScholarshipsBySubCategory())

	// Unlike jobs, scholarship creation is open to creators as well.
	secured := scholarship.Group("").Use(middleware.Auth())
	secured.POST("/", middleware.RequireRoles(models.RoleCreator, models.RoleAdmin), scholarshipController.CreateScholarship())
	secured.PUT("/:id", middleware.RequireRoles(models.RoleCreator, models.RoleAdmin), scholarshipController.UpdateScholarship())
	secured.DELETE("/:id", middleware.RequireRoles(models.RoleCreator, models.RoleAdmin), scholarshipController.DeleteScholarship())
}

func multijobRoutes(api *gin.RouterGroup) {
	multijob := api.Group("/multijobs")
	multijob.GET("/", controllers.GetMultijobs())
	multijob.GET("/:id", controllers.GetMultijob())
	multijob.POST("/", controllers.CreateMultijob())

	secured := multijob.Group("").Use(middleware.Auth())
	secured.PUT("/:id", middleware.RequireRoles(models.RoleCreator, models.RoleAdmin), controllers.UpdateMultijob())
	secured.DELETE("/:id", middleware.RequireRoles(models.RoleCreator, models.RoleAdmin), controllers.DeleteMultijob())
}

func userRoutes(api *gin.RouterGroup) {
	user := api.Group("/users")
	user.GET("/", controllers.GetUsers())

	secured := user.Group("").Use(middleware.Auth(), middleware.RequireRoles(models.RoleAdmin))
	secured.GET("/:id", controllers.GetUser())
	secured.PUT("/:id", controllers.UpdateUser())
	secured.DELETE("/:id", controllers.DeleteUser())
}

func subscriberRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	subscriberController := sc.SubscriberController

	subscriber := api.Group("/subscribers")
	subscriber.POST("/", subscriberController.CreateSubscriber())

	secured := subscriber.Group("").Use(middleware.Auth(), middleware.RequireRoles(models.RoleAdmin))
	secured.GET("/", subscriberController.GetSubscribers())
	secured.DELETE("/:id", subscriberController.DeleteSubscriber())
}
