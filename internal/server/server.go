package server

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/ADARSH-E404/diet-eco-plan/internal/config"
	"github.com/ADARSH-E404/diet-eco-plan/internal/handlers"
	"github.com/ADARSH-E404/diet-eco-plan/internal/middleware"
	"github.com/ADARSH-E404/diet-eco-plan/internal/repository"
	"github.com/ADARSH-E404/diet-eco-plan/internal/services"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	router *chi.Mux
	config config.Config
}

func New(database *sql.DB, cfg config.Config, authService *services.AuthService) *Server {
	userRepo := repository.NewUserRepository(database)
	entryRepo := repository.NewEntryRepository(database)
	profileRepo := repository.NewProfileRepository(database)
	tokenRepo := repository.NewAPITokenRepository(database)

	statsService := services.NewStatsService(entryRepo, profileRepo)
	groceryStore := services.NewGroceryStore()

	authHandler := handlers.NewAuthHandler(authService)
	dashboardHandler := handlers.NewDashboardHandler(entryRepo, statsService)
	trackerHandler := handlers.NewTrackerHandler(entryRepo)
	profileHandler := handlers.NewProfileHandler(profileRepo)
	groceryHandler := handlers.NewGroceryHandler(groceryStore)
	plannerHandler := handlers.NewPlannerHandler()
	guideHandler := handlers.NewGuideHandler()
	statsHandler := handlers.NewStatsHandler(statsService)
	apiHandler := handlers.NewAPIHandler(entryRepo, profileRepo, tokenRepo, statsService)

	router := chi.NewRouter()

	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(chimiddleware.Compress(5))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	router.Post("/auth/signup", authHandler.SignUp)
	router.Post("/auth/login", authHandler.Login)
	router.Get("/auth/oidc", authHandler.OIDCLogin)
	router.Get("/auth/callback", authHandler.Callback)
	router.Get("/logout", authHandler.Logout)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(authService))

		r.Get("/dashboard", dashboardHandler.Show)

		r.Get("/tracker", trackerHandler.List)
		r.Post("/tracker", trackerHandler.Add)
		r.Post("/tracker/{id}/delete", trackerHandler.Delete)

		r.Get("/profile", profileHandler.Show)
		r.Post("/profile", profileHandler.Save)

		r.Get("/grocery", groceryHandler.List)
		r.Post("/grocery/items", groceryHandler.Add)
		r.Post("/grocery/items/{id}/toggle", groceryHandler.Toggle)
		r.Post("/grocery/items/{id}/delete", groceryHandler.Remove)

		r.Get("/meal-planner", plannerHandler.Day)
		r.Get("/meal-planner/feed.ics", plannerHandler.Feed)

		r.Get("/shopping-guide", guideHandler.Show)
		r.Get("/statistics", statsHandler.Show)

		r.Post("/api/tokens", apiHandler.CreateToken)
		r.Delete("/api/tokens/{id}", apiHandler.DeleteToken)
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.APITokenAuth(tokenRepo, userRepo))

		r.Get("/api/entries", apiHandler.ListEntries)
		r.Get("/api/profile", apiHandler.GetProfile)
		r.Get("/api/stats", apiHandler.GetStats)
	})

	return &Server{
		router: router,
		config: cfg,
	}
}

func (server *Server) Start() error {
	address := ":" + server.config.Port
	slog.Info("starting server", "address", address)
	return http.ListenAndServe(address, server.router)
}
