package main

import (
	"net/http"
	"net/netip"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/poetree/docs"
	"github.com/sbilibin2017/poetree/internal/handlers"
	"github.com/sbilibin2017/poetree/internal/middlewares"
)

type routes struct {
	auth       handlers.Authenticator
	users      handlers.UserManager
	topics     handlers.TopicManager
	poems      handlers.PoemManager
	comments   handlers.CommentManager
	engagement handlers.Engager

	tokener        middlewares.Tokener
	realm          string
	limiter        middlewares.Limiter
	trustedProxies []netip.Prefix
	health         http.HandlerFunc
	swagger        string
}

func newRouter(rt routes) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares.RealIP(rt.trustedProxies))
	r.Use(middlewares.LoggingMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.SecurityHeaders)

	r.Get("/health", rt.health)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(rt.swagger)))

	r.Route("/auth", func(r chi.Router) {
		r.Use(middlewares.RateLimitMiddleware(rt.limiter))
		r.Post("/signup", handlers.NewSignUpHandler(rt.auth))
		r.Post("/signin", handlers.NewSignInHandler(rt.auth))
		r.Post("/refresh", handlers.NewRefreshHandler(rt.auth))
		r.Post("/reset", handlers.NewResetPasswordHandler(rt.auth))
	})

	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(rt.tokener, rt.realm))

		r.Route("/users", func(r chi.Router) {
			r.Get("/", handlers.NewSearchUsersHandler(rt.users))
			r.Get("/me", handlers.NewGetMeHandler(rt.users))
			r.Put("/me", handlers.NewUpdateUserHandler(rt.users))
			r.Delete("/me", handlers.NewDeleteUserHandler(rt.users))
			r.Post("/me/setup", handlers.NewSetupHandler(rt.users))
			r.Put("/me/password", handlers.NewUpdatePasswordHandler(rt.auth))
			r.Get("/{id}", handlers.NewGetUserHandler(rt.users))
		})

		r.Route("/topics", func(r chi.Router) {
			r.Get("/", handlers.NewListTopicsHandler(rt.topics))
			r.Post("/", handlers.NewCreateTopicHandler(rt.topics))
			r.Get("/{id}", handlers.NewGetTopicHandler(rt.topics))
			r.Put("/{id}", handlers.NewUpdateTopicHandler(rt.topics))
			r.Delete("/{id}", handlers.NewDeleteTopicHandler(rt.topics))
		})

		r.Route("/poems", func(r chi.Router) {
			r.Get("/", handlers.NewListPoemsHandler(rt.poems))
			r.Post("/", handlers.NewCreatePoemHandler(rt.poems))
			r.Get("/{id}", handlers.NewGetPoemHandler(rt.poems))
			r.Put("/{id}", handlers.NewUpdatePoemHandler(rt.poems))
			r.Delete("/{id}", handlers.NewDeletePoemHandler(rt.poems))
			r.Get("/{id}/comments", handlers.NewListPoemCommentsHandler(rt.poems))
			r.Post("/{id}/like", handlers.NewLikePoemHandler(rt.engagement))
			r.Delete("/{id}/unlike", handlers.NewUnlikePoemHandler(rt.engagement))
			r.Post("/{id}/bookmark", handlers.NewBookmarkPoemHandler(rt.engagement))
			r.Delete("/{id}/un-bookmark", handlers.NewUnbookmarkPoemHandler(rt.engagement))
			r.Post("/{id}/read", handlers.NewMarkPoemReadHandler(rt.engagement))
		})

		r.Route("/comments", func(r chi.Router) {
			r.Post("/", handlers.NewCreateCommentHandler(rt.comments))
			r.Get("/{id}", handlers.NewGetCommentHandler(rt.comments))
			r.Put("/{id}", handlers.NewUpdateCommentHandler(rt.comments))
			r.Delete("/{id}", handlers.NewDeleteCommentHandler(rt.comments))
			r.Post("/{id}/like", handlers.NewLikeCommentHandler(rt.engagement))
			r.Delete("/{id}/unlike", handlers.NewUnlikeCommentHandler(rt.engagement))
		})
	})

	return r
}
