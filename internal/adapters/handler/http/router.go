package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vncsmyrnk/notes/internal/core/domain"
	"github.com/vncsmyrnk/notes/internal/core/ports"
)

func NewHandler(authHandler *AuthHandler, noteHandler *NoteHandler, tokens ports.TokenService, users ports.UserService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	requireAccess := Authenticator(tokens, users, domain.TokenKindAccess)
	requireRefresh := Authenticator(tokens, users, domain.TokenKindRefresh)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.With(requireRefresh).Post("/refresh_token", authHandler.Refresh)
			r.With(requireAccess).Get("/profile", authHandler.Profile)
		})

		r.Route("/notes", func(r chi.Router) {
			r.Get("/", noteHandler.List)
			r.Get("/{id}", noteHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(requireAccess)
				r.Post("/", noteHandler.Create)
				r.Put("/{id}", noteHandler.Update)
				r.Delete("/{id}", noteHandler.Delete)
			})
		})
	})

	return r
}
