package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authhandler "contacts_backend/internal/feature/auth/transport/handler"
	contacthandler "contacts_backend/internal/feature/contacts/transport/handler"
	userhandler "contacts_backend/internal/feature/users/transport/handler"
	healthhandler "contacts_backend/internal/platform/http/handler"
	jwtmw "contacts_backend/internal/platform/jwt"
	"contacts_backend/internal/platform/ratelimit"
)

// NewRouter wires every route of the service. All routes live under
// /api; everything past the auth group requires a bearer token.
func NewRouter(
	db *gorm.DB,
	jwtSecret string,
	auth *authhandler.AuthHandler,
	contacts *contacthandler.ContactHandler,
	users *userhandler.UserHandler,
	createLimiter *ratelimit.Limiter,
) *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")

	// No authentication required
	health := healthhandler.Health(db)
	api.GET("/healthchecker", health)
	api.HEAD("/healthchecker", health)
	api.OPTIONS("/healthchecker", health)
	api.POST("/auth/signup", auth.Signup)
	api.POST("/auth/login", auth.Login)
	api.POST("/auth/refresh_token", auth.Refresh)
	api.GET("/auth/confirmed_email/:token", auth.ConfirmEmail)

	// Authenticated routes
	authed := api.Group("/")
	authed.Use(jwtmw.AuthRequired(jwtSecret))
	{
		authed.POST("/auth/logout", auth.Logout)

		authed.GET("/contacts", contacts.List)
		authed.POST("/contacts", createLimiter.Middleware(), contacts.Create)
		authed.GET("/contacts/:id", contacts.Get)
		authed.PUT("/contacts/:id", contacts.Update)
		authed.DELETE("/contacts/:id", contacts.Delete)

		authed.GET("/users/me", users.Me)
		authed.PATCH("/users/avatar", users.UpdateAvatar)
	}

	return r
}
