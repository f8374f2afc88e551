package main

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"complainthub.backend/internal/interfaces/http/handlers"
	"complainthub.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	profileHandler      *handlers.ProfileHandler
	complaintHandler    *handlers.ComplaintHandler
	socialHandler       *handlers.SocialHandler
	searchHandler       *handlers.SearchHandler
	notificationHandler *handlers.NotificationHandler
	authMiddleware      gin.HandlerFunc
	uploadRoot          string
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/signup", d.authHandler.Signup)
		auth.POST("/login", d.authHandler.Login)
		auth.POST("/verify-otp", d.authHandler.VerifyOtp)
		auth.POST("/verify-otp-login", d.authHandler.VerifyOtp)
		auth.POST("/resend-otp", d.authHandler.ResendOtp)
	}

	// Everything below requires a bearer token with an allowed role
	api := r.Group("/")
	api.Use(d.authMiddleware, middleware.RequireUser())
	{
		// Profile
		api.GET("/profile", d.profileHandler.GetOwn)
		api.GET("/profile/:id", d.profileHandler.GetByID)
		api.PUT("/update-profile", d.profileHandler.Update)
		api.POST("/upload-profile", d.profileHandler.UploadProfileImage)
		api.POST("/upload-cover", d.profileHandler.UploadCoverImage)

		// Complaints and feeds
		api.POST("/complaints", middleware.IdempotencyMiddleware(), d.complaintHandler.Create)
		api.GET("/complaints-feed", d.complaintHandler.GlobalFeed)
		api.GET("/my-complaints", d.complaintHandler.OwnFeed)
		api.GET("/complaints-by-user", d.complaintHandler.UserFeed)
		api.GET("/liked-posts", d.complaintHandler.LikedFeed)
		api.DELETE("/complaints/:id", d.complaintHandler.Delete)

		// Reactions
		api.POST("/like", d.socialHandler.Like)
		api.DELETE("/like", d.socialHandler.Unlike)
		api.POST("/save", d.socialHandler.Save)
		api.DELETE("/save", d.socialHandler.Unsave)
		api.POST("/repost", d.socialHandler.Repost)

		// Comments
		api.POST("/comment", d.socialHandler.Comment)
		api.GET("/comments/:complaint_id", d.socialHandler.Comments)

		// Follow graph
		api.POST("/follow", d.socialHandler.Follow)
		api.POST("/unfollow", d.socialHandler.Unfollow)
		api.GET("/followers/:id", d.socialHandler.Followers)
		api.GET("/following/:id", d.socialHandler.Following)

		// Discovery
		api.GET("/search-users", d.searchHandler.Search)
		api.GET("/explore-users", d.searchHandler.Explore)

		// Notifications
		api.GET("/notifications-feed", d.notificationHandler.Digest)
		api.POST("/save-push-token", d.notificationHandler.SavePushToken)
		api.POST("/notifications-test", d.notificationHandler.TestPush)
	}

	registerStaticRoutes(r, d.uploadRoot)
}

// registerStaticRoutes exposes the upload directories read-only, one mount
// per attachment type so URLs map 1:1 to disk paths.
func registerStaticRoutes(r *gin.Engine, root string) {
	for _, dir := range []string{"images", "videos", "audios", "documents", "others"} {
		r.Static("/uploads/complaints/"+dir, filepath.Join(root, "complaints", dir))
	}
	for _, dir := range []string{"profile", "cover"} {
		r.Static("/uploads/users/"+dir, filepath.Join(root, "users", dir))
	}
}
