// Package api exposes the application over HTTP with gin.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/budai/internal/app"
)

const shutdownTimeout = 10 * time.Second

type handler struct {
	app    *app.App
	logger *zap.Logger
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(a *app.App, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	setupValidator()

	h := &handler{app: a, logger: logger}
	r := gin.New()
	r.Use(requestLogger(logger), recovery(logger))
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "接口不存在"})
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/code", h.sendCode)
		authGroup.POST("/register", h.register)
		authGroup.POST("/login", h.login)
	}

	protected := api.Group("")
	protected.Use(requireAuth(a.Tokens()))
	{
		protected.GET("/children", h.listChildren)
		protected.POST("/children", h.createChild)
		protected.PUT("/children", h.updateChild)
		protected.GET("/children/:id", h.getChild)

		protected.GET("/assessment", h.listAssessments)
		protected.POST("/assessment", h.submitAssessment)

		protected.POST("/tasks/daily", h.dailyTask)
		protected.POST("/tasks/evaluate", h.evaluateTask)
		protected.GET("/tasks/coach", h.coachHistory)
		protected.POST("/tasks/coach", h.coach)

		protected.GET("/cocreate/themes", h.listThemes)
		protected.POST("/cocreate/contribute", h.contribute)

		protected.POST("/weekly-report/generate", h.weeklyReport)
		protected.GET("/growth", h.growth)
	}
	return r
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
