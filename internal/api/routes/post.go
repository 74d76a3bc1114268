package routes

import (
	"github.com/go-chi/chi/v5"

	"PickMe/internal/api/handlers/like"
	"PickMe/internal/api/handlers/post"
	"PickMe/internal/api/middleware"
	"PickMe/internal/core/likes"
	"PickMe/internal/core/posts"
)

// RegisterPostRoutes registers post, feed, and like endpoints
// Every endpoint requires authentication: visibility is always evaluated for
// a concrete viewer.
func RegisterPostRoutes(r chi.Router, postService posts.Service, likeService likes.Service, authMiddleware *middleware.AuthMiddleware) {
	postHandler := post.NewHandler(postService)
	likeHandler := like.NewHandler(likeService)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)

		r.Get("/api/posts", postHandler.HandleFeed)
		r.Post("/api/posts", postHandler.HandleCreate)
		r.Get("/api/posts/user/{userID}", postHandler.HandleUserPosts)
		r.Get("/api/posts/{postID}", postHandler.HandleGet)
		r.Put("/api/posts/{postID}", postHandler.HandleUpdate)
		r.Delete("/api/posts/{postID}", postHandler.HandleDelete)

		r.Post("/api/posts/{postID}/like", likeHandler.HandleLike)
		r.Delete("/api/posts/{postID}/like", likeHandler.HandleUnlike)
		r.Get("/api/posts/{postID}/likes", likeHandler.HandleLikers)
	})
}
