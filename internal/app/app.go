package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/annakov/streetstore/internal/config"
	"github.com/annakov/streetstore/internal/controllers"
	"github.com/annakov/streetstore/internal/feed"
	"github.com/annakov/streetstore/internal/logger"
	"github.com/annakov/streetstore/internal/middleware"
	"github.com/annakov/streetstore/internal/notifier"
	"github.com/annakov/streetstore/internal/storage"
	"github.com/go-chi/chi"
	"go.uber.org/zap"
)

type Server struct {
	srv *http.Server
	ctx context.Context

	logMx sync.RWMutex
	log   *logger.Logger
}

// NewServer creates a new Server instance with the provided context
func NewServer(ctx context.Context) *Server {
	server := new(Server)
	server.ctx = ctx
	// nop logger until Serve builds the configured one
	server.log = &logger.Logger{}
	return server
}

// Logger returns the current server logger. Safe for concurrent use: the
// signal-handling goroutine reads it while Serve installs the configured one.
func (server *Server) Logger() *logger.Logger {
	server.logMx.RLock()
	defer server.logMx.RUnlock()
	return server.log
}

func (server *Server) setLogger(l *logger.Logger) {
	server.logMx.Lock()
	defer server.logMx.Unlock()
	server.log = l
}

// Serve starts the server and handles signal interruption for graceful shutdown
func (server *Server) Serve() {
	// create and initialize a new option instance
	option := config.NewOptions()
	option.ParseFlags()

	// get a new logger
	nLogger, err := logger.NewLogger(option.LogLevel())
	if err != nil {
		log.Fatalln(err)
	}
	server.setLogger(nLogger)

	// assemble the ingestion pipeline: parser -> fetcher -> cached storage
	parser := feed.NewParser()
	fetcher := feed.NewFetcher(option.FeedURL, option.FeedTimeout(), parser, nLogger)
	memStorage := storage.NewMemoryStorage(server.ctx, fetcher, option.CacheTTL(), nLogger)

	// order notification relay
	tg := notifier.NewTelegram(option.TelegramToken, option.TelegramChatID, nLogger)

	basecontr := controllers.NewBaseController(server.ctx, memStorage, tg, nLogger)
	reqLog := middleware.NewReqLog(nLogger)

	// create router and mount routes
	r := chi.NewRouter()
	r.Use(reqLog.RequestLogger)
	r.Use(middleware.MetricsMiddleware)
	r.Mount("/", basecontr.Route())

	// configure and start the server
	server.srv = startServer(r, option.RunAddr())
	nLogger.Info("server started", zap.String("address", option.RunAddr()))

	// Create a channel to receive interrupt signals (e.g., CTRL+C)
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt)

	// Block execution until a signal is received
	<-stopChan
}

// Shutdown gracefully stops the HTTP server within the given timeout.
func (server *Server) Shutdown(timeout time.Duration) {
	if server.srv == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.srv.Shutdown(ctx); err != nil {
		server.Logger().Error("server shutdown failed", zap.Error(err))
		return
	}
	server.Logger().Info("server stopped gracefully")
}

func startServer(r chi.Router, addr string) *http.Server {
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	return srv
}
