package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"sitegen_server/internal/ai"
	"sitegen_server/internal/api"
	"sitegen_server/internal/publish"
	"sitegen_server/internal/render"
)

var serveAddr string

// serveCmd runs the HTTP API: chat turns, on-demand rendering and
// publishing of generated sites.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the website generator API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := appConfig.ServerAddress
		if serveAddr != "" {
			addr = serveAddr
		}

		// The refiner stays nil without credentials; only the optional
		// AI mode depends on it.
		var refiner *ai.Refiner
		if appConfig.OpenAIKey != "" {
			refiner = ai.NewRefiner(appConfig.OpenAIKey, appConfig.OpenAIModel)
		}

		handler := api.NewAPIHandler(
			refiner,
			render.New(),
			publish.NewPublisher(appConfig.PublishDir),
		)

		if os.Getenv("APP_ENV") == "production" {
			gin.SetMode(gin.ReleaseMode)
		} else {
			gin.SetMode(gin.DebugMode)
			log.Println("Running in Gin Debug Mode")
		}

		router := gin.New()
		router.Use(gin.Logger())
		router.Use(gin.Recovery())
		router.Use(api.CORSMiddleware())
		api.RegisterRoutes(router, handler)

		server := &http.Server{
			Addr:    addr,
			Handler: router,
			// Set timeouts to prevent slow client attacks
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		go func() {
			log.Printf("Starting API server on %s", addr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("API server listen error: %s", err)
			}
			log.Println("API server has stopped listening.")
		}()

		// --- Graceful Shutdown ---
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit
		log.Printf("Received signal: %s. Shutting down server...", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server forced shutdown error: %v", err)
		} else {
			log.Println("API server gracefully stopped.")
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides SERVER_ADDRESS)")
	rootCmd.AddCommand(serveCmd)
}
