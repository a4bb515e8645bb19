package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/2nist/Band-Manager/internal/api"
	"github.com/2nist/Band-Manager/internal/config"
	"github.com/2nist/Band-Manager/internal/constants"
	"github.com/2nist/Band-Manager/internal/logging"
	"github.com/2nist/Band-Manager/internal/rng"
	"github.com/2nist/Band-Manager/internal/version"
)

func main() {
	// Load a .env file when present; real deployments set variables directly.
	_ = godotenv.Load()

	envCfg, err := config.LoadEnv()
	if err != nil {
		logging.Fatal("Invalid environment configuration", err, nil)
	}
	if envCfg.SessionSecret == "" {
		logging.Warn("SESSION_SECRET not set, sessions will not survive restarts", nil)
	}

	cfg := loadConfigOrExit(envCfg.ConfigPath)
	repo := createRepositoryOrExit(envCfg.DatabasePath)

	handler := api.NewCareerHandler(repo, cfg.Content, rng.Default())
	authHandler := api.NewAuthHandler(repo)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		// Public endpoints
		apiRoutes.GET(constants.RouteContent, handler.GetContent)
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)
		apiRoutes.GET(constants.RouteVersion, api.Version)

		// Authenticated endpoints
		protected := apiRoutes.Group("")
		protected.Use(api.AuthRequired())

		protected.GET(constants.RouteProfile, handler.GetProfile)
		protected.POST(constants.RouteProfile, handler.UpdateProfile)

		protected.POST(constants.RouteCareers, handler.CreateCareer)
		protected.GET(constants.RouteCareers, handler.ListCareers)
		protected.GET(constants.RouteCareerByCode, handler.GetCareer)
		protected.DELETE(constants.RouteCareerByCode, handler.DeleteCareer)
		protected.POST(constants.RouteCareerAction, handler.PerformAction)
		protected.GET(constants.RouteCareerEvent, handler.GetEvent)
		protected.POST(constants.RouteCareerEvent, handler.ResolveEvent)
		protected.GET(constants.RouteCareerCharts, handler.GetCharts)
		protected.POST(constants.RouteCareerSave, handler.SaveCareer)
		protected.GET(constants.RouteSaves, handler.ListSaves)
		protected.POST(constants.RouteSaveLoad, handler.LoadSave)
		protected.DELETE(constants.RouteSaveByKey, handler.DeleteSave)
	}

	router.POST(constants.RouteAuthGoogleCallBack, authHandler.GoogleOAuthCallback)
	router.POST(constants.RouteAPIPrefix+constants.RouteAuthLogout, authHandler.Logout)

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr, "build": version.String()})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
