package handlers

import (
	userRepoPkg "handrest/database/repository/user"
	"handrest/services/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct, plus the
// dependencies the auth middleware needs at route registration.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository
	Sessions user.SessionStore

	// Auth endpoints
	RegisterCustomerHandler gin.HandlerFunc
	RegisterStaffHandler    gin.HandlerFunc
	LoginHandler            gin.HandlerFunc
	LogoutHandler           gin.HandlerFunc

	// Catalog endpoints
	CategoriesHandler       gin.HandlerFunc
	PackagesHandler         gin.HandlerFunc
	FeaturedPackagesHandler gin.HandlerFunc
	FeaturesHandler         gin.HandlerFunc
	AddOnsHandler           gin.HandlerFunc
	PanchayathsHandler      gin.HandlerFunc

	// Customer booking endpoints
	QuoteHandler         gin.HandlerFunc
	CreateBookingHandler gin.HandlerFunc
	MyBookingsHandler    gin.HandlerFunc
	TrackBookingHandler  gin.HandlerFunc
	RateBookingHandler   gin.HandlerFunc

	// Staff job endpoints
	AvailableJobsHandler gin.HandlerFunc
	MyJobsHandler        gin.HandlerFunc
	AcceptJobHandler     gin.HandlerFunc
	RejectJobHandler     gin.HandlerFunc
	StartJobHandler      gin.HandlerFunc
	CompleteJobHandler   gin.HandlerFunc

	// Admin endpoints
	AdminListBookingsHandler    gin.HandlerFunc
	AdminGetBookingHandler      gin.HandlerFunc
	AdminUpdateStatusHandler    gin.HandlerFunc
	AdminFinalizePaymentHandler gin.HandlerFunc
}
