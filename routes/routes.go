package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Dosada05/floppoker-console/docs"
	"github.com/Dosada05/floppoker-console/handlers"
	"github.com/Dosada05/floppoker-console/lifecycle"
	"github.com/Dosada05/floppoker-console/middleware"
)

func SetupRoutes(
	router *chi.Mux,
	allowedOrigins []string,
	auth *middleware.Authenticator,
	authHandler *handlers.AuthHandler,
	tournamentHandler *handlers.TournamentHandler,
	formHandler *handlers.FormHandler,
	ratingHandler *handlers.RatingHandler,
	playerHandler *handlers.PlayerHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/console", func(r chi.Router) {
		r.Post("/auth/director", authHandler.LoginDirector)
		r.Post("/auth/player", authHandler.LoginPlayer)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/session", authHandler.Session)

			r.Route("/tournaments", func(r chi.Router) {
				r.Get("/", tournamentHandler.List)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", tournamentHandler.Detail)
					r.Delete("/detail", tournamentHandler.CloseDetail)
					r.Post("/register", tournamentHandler.Register)
					r.Get("/tables", tournamentHandler.Tables)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireDirector)
						r.Post("/start", tournamentHandler.Transition(lifecycle.TransitionStart))
						r.Post("/close-late-reg", tournamentHandler.Transition(lifecycle.TransitionCloseLateReg))
						r.Post("/complete", tournamentHandler.Transition(lifecycle.TransitionComplete))
						r.Post("/create-tables", tournamentHandler.CreateTables)
						r.Post("/chips", tournamentHandler.UpdateChips)
						r.Delete("/", tournamentHandler.Delete)
					})
				})
			})

			r.Get("/rating", ratingHandler.List)
			r.Delete("/forms", formHandler.Cancel)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireDirector)

				r.Post("/forms/tournament", formHandler.OpenTournament)
				r.Post("/forms/tournament/save", formHandler.SaveTournament)
				r.Post("/forms/tournament/{id}", formHandler.OpenTournament)
				r.Post("/forms/rating", formHandler.OpenRating)
				r.Post("/forms/rating/save", formHandler.SaveRating)
				r.Post("/forms/rating/{id}", formHandler.OpenRating)
				r.Post("/forms/player", formHandler.OpenPlayer)
				r.Post("/forms/player/save", formHandler.SavePlayer)

				r.Delete("/rating/{id}", ratingHandler.Delete)
				r.Get("/players", playerHandler.List)
				r.Delete("/players/{id}", playerHandler.Delete)
			})
		})
	})
}
