package api

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	appcfg "github.com/Ninja-cloud-sorce/back-end/internal/app/config"
	"github.com/Ninja-cloud-sorce/back-end/internal/app/handler"
	"github.com/Ninja-cloud-sorce/back-end/internal/app/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Ninja-cloud-sorce/back-end/docs" // generated API documentation
)

// NewRouter builds the application object: one engine owning the whole
// route table. Routes are registered here and nowhere else.
func NewRouter(h *handler.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger())

	// allow everything, frontend runs on a different origin in dev
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "not found", "data": gin.H{}})
	})

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/upload_resume", h.UploadResume)
	r.POST("/analyze", h.Analyze)
	r.POST("/suggest", h.Suggest)
	r.POST("/optimize_resume", h.OptimizeResume)
	r.POST("/generate_cover_letter", h.GenerateCoverLetter)
	r.POST("/download_pdf", h.DownloadPDF)
	r.POST("/user/preferences", h.SetPreferences)

	r.GET("/health", h.Health)
	r.GET("/test", h.Test)

	return r
}

func StartServer() {
	logrus.Println("Starting server")

	// load config if present, otherwise fall back to env/defaults
	cfg, err := appcfg.Load("config/config.toml")
	if err != nil {
		logrus.Warnf("config load failed, using env/defaults: %v", err)
	}
	cfg.ApplyEnv()

	h := handler.NewHandler(repository.NewPreferences(), cfg.Upload.MaxPDFSizeMB)

	srv := &http.Server{
		Addr:    cfg.Serve.Host + ":" + cfg.Serve.Port,
		Handler: NewRouter(h),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			// bind failures (port already in use) land here
			logrus.Fatalf("server error: %v", err)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.Fatalf("shutdown error: %v", err)
		}
		logrus.Println("Server down")
	}
}
