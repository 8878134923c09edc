package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"tripforge/cmd/fx/controllers_fx"
	"tripforge/cmd/fx/db_fx"
	"tripforge/cmd/fx/geocoder_fx"
	"tripforge/cmd/fx/itinerary_fx"
	"tripforge/cmd/fx/matrix_fx"
	"tripforge/cmd/fx/planner_fx"
	"tripforge/cmd/fx/routing_fx"
	"tripforge/cmd/fx/suggestions_fx"
	"tripforge/cmd/fx/trips_fx"
	"tripforge/internal/api/controllers"
	"tripforge/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	app := fx.New(
		db_fx.Module,
		geocoder_fx.Module,
		matrix_fx.Module,
		routing_fx.Module,
		planner_fx.Module,
		trips_fx.Module,
		itinerary_fx.Module,
		suggestions_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tripsController *controllers.TripsController,
	itineraryController *controllers.ItineraryController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, tripsController, itineraryController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripsController *controllers.TripsController,
	itineraryController *controllers.ItineraryController) {

	tripsGroup := r.Group("/trips")
	tripsGroup.GET("/:tripId/places/scored", tripsController.GetScoredPlaces)
	tripsGroup.GET("/:tripId/places/suggest", tripsController.SuggestPlaces)
	tripsGroup.GET("/:tripId/itinerary", itineraryController.GetItinerary)

	// Regeneration rewrites rows, so it sits behind auth.
	tripsGroup.POST("/:tripId/itinerary", middleware.JWTAuthMiddleware(), itineraryController.GenerateItinerary)
	tripsGroup.POST("/:tripId/places/reindex",
		middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), tripsController.ReindexPlaces)
}
