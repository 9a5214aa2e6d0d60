package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/skip2/go-qrcode"
	"github.com/user/cultivation-life/config"
	"github.com/user/cultivation-life/internal/interfaces"
	"go.uber.org/zap"
)

// NewRouter builds the HTTP routes of the server
func NewRouter(cfg config.Config, game interfaces.Game, logger *zap.Logger) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	health := healthHandler(logger)
	router.Get("/health", health)
	router.Get("/healthcheck", health)

	router.Get("/share.png", shareHandler(cfg.Server.PublicURL, logger))

	router.Route("/api", NewGameHandler(game, logger.Named("api")).Routes)

	return router
}

func healthHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("Health check request received",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote_addr", r.RemoteAddr))
		w.Write([]byte("OK"))
	}
}

// shareHandler serves a QR code pointing at the public URL of the game
func shareHandler(publicURL string, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		png, err := qrcode.Encode(publicURL, qrcode.Medium, 256)
		if err != nil {
			logger.Error("Failed to generate QR code",
				zap.String("url", publicURL),
				zap.Error(err))
			http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Write(png)
	}
}
