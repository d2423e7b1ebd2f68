package routes

import (
	"net/http"
	"time"

	"handrest/handlers"
	"handrest/middleware"
	"handrest/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterCustomerHandler)
		api.POST("/register/staff", hb.RegisterStaffHandler)
		api.POST("/login", hb.LoginHandler)

		// Logout needs a valid session for any role.
		api.POST("/logout", middleware.JWTAuth(hb.UserRepo, hb.Sessions), hb.LogoutHandler)
	}
}

// RegisterCatalogRoutes registers the public pricing reference endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/categories", hb.CategoriesHandler)
		api.GET("/packages", hb.PackagesHandler)
		api.GET("/packages/featured", hb.FeaturedPackagesHandler)
		api.GET("/features", hb.FeaturesHandler)
		api.GET("/addons", hb.AddOnsHandler)
		api.GET("/panchayaths", hb.PanchayathsHandler)
	}
}

// RegisterBookingRoutes registers the customer booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		// Quoting and tracking work without an account.
		api.POST("/quote", hb.QuoteHandler)
		api.GET("/track/:number", hb.TrackBookingHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(hb.UserRepo, hb.Sessions, models.RoleCustomer))
		protected.POST("", hb.CreateBookingHandler)
		protected.GET("/my", hb.MyBookingsHandler)
		protected.POST("/:id/rating", hb.RateBookingHandler)
	}
}

// RegisterStaffRoutes registers the staff job portal endpoints.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/staff/jobs")
	{
		api.Use(middleware.JWTAuth(hb.UserRepo, hb.Sessions, models.RoleStaff))
		api.GET("/available", hb.AvailableJobsHandler)
		api.GET("/mine", hb.MyJobsHandler)
		api.POST("/:id/accept", hb.AcceptJobHandler)
		api.POST("/:id/reject", hb.RejectJobHandler)
		api.POST("/:id/start", hb.StartJobHandler)
		api.POST("/:id/complete", hb.CompleteJobHandler)
	}
}

// RegisterAdminRoutes registers the back-office endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuth(hb.UserRepo, hb.Sessions, models.RoleAdmin, models.RoleSuperAdmin))
		api.GET("/bookings", hb.AdminListBookingsHandler)
		api.GET("/bookings/:id", hb.AdminGetBookingHandler)
		api.PATCH("/bookings/:id/status", hb.AdminUpdateStatusHandler)
		api.POST("/bookings/:id/payment", hb.AdminFinalizePaymentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm HandRest"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
