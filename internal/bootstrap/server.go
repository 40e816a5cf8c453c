package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/BoysInc/volair-dashboard-sub000/api"
	"github.com/BoysInc/volair-dashboard-sub000/config"
	"github.com/gin-gonic/gin"
)

// Run starts the dashboard HTTP server and blocks until the context is
// canceled or the server fails.
func Run(ctx context.Context, cfg *config.Config, flightHandler *api.FlightHandler, activityHandler *api.ActivityHandler) error {
	router := gin.Default()

	v1 := router.Group("/api/v1")
	flightHandler.Register(v1.Group("/flights"))
	if activityHandler != nil {
		activityHandler.Register(v1.Group("/activity"))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
