// launching the server and wiring the provider, auth and HTTP layers
package appServer

import (
	"context"
	"crypto/tls"
	"log"

	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopstudio/bg-removal-service/config"
	"github.com/shopstudio/bg-removal-service/internal/pkg/auth"
	"github.com/shopstudio/bg-removal-service/internal/pkg/removebg"
	"github.com/shopstudio/bg-removal-service/internal/service"
	"github.com/shopstudio/bg-removal-service/internal/transport"

	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},           // ban on outdate TLS certificate
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags), // os.Stderr can be replaced with ElsasticSearch in the feature
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(new(logrus.JSONFormatter))

	apiKey := config.GetEnv("REMOVE_BG_API_KEY", "")
	if apiKey == "" {
		logrus.Warn("REMOVE_BG_API_KEY is not set, image requests will be rejected")
	}
	cfg.RemoveBG.APIKey = apiKey

	provider := removebg.NewClient(cfg.RemoveBG.APIURL, apiKey, cfg.RemoveBG.Size, cfg.RemoveBG.Type)
	validator := auth.NewHTTPValidator(cfg.Auth.ValidateURL)
	imgService := service.NewImageService(provider, apiKey)
	imgHandler := transport.NewImageHandler(imgService)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(imgHandler, validator)); err != nil {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}

}
