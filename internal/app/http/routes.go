package routes

import (
	authapi "gallery-app/internal/api/auth"
	paintingsapi "gallery-app/internal/api/paintings"
	"gallery-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

// Deps carries the handler set; everything reaches the router through an
// injected handle rather than a package global.
type Deps struct {
	Paintings *paintingsapi.Handler
	Auth      *authapi.Handler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeInputMiddleware())

	public.GET("/paintings", d.Paintings.ListGallery)
	public.GET("/paintings/:id", d.Paintings.GetPainting)
	public.GET("/paintings/:id/inquiry", d.Paintings.InquiryLink)
	public.GET("/inquiry", d.Paintings.GeneralInquiryLink)

	public.POST("/login", d.Auth.Login)
	public.GET("/auth/google", d.Auth.GoogleStart)
	public.GET("/auth/google/callback", d.Auth.GoogleCallback)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"), middleware.SanitizeInputMiddleware())

	admin.GET("/paintings", d.Paintings.ListAdmin)
	admin.POST("/paintings", d.Paintings.CreatePainting)
	admin.PUT("/paintings/:id", d.Paintings.UpdatePainting)
	admin.DELETE("/paintings/:id", d.Paintings.DeletePainting)
	admin.GET("/stats", d.Paintings.Stats)
	admin.POST("/change-password", d.Auth.ChangePassword)
}
