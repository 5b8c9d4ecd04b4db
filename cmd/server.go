package cmd

import (
	"fmt"
	"msgboard/internal/config"
	"msgboard/internal/core"
	"msgboard/internal/db"
	"msgboard/internal/http/handler"
	"msgboard/internal/http/handler/middleware"
	"msgboard/internal/http/payload"
	"msgboard/internal/http/server"
	"msgboard/internal/http/view"
	"msgboard/internal/metrics"
	"msgboard/internal/repository"
	"msgboard/internal/session"
	"msgboard/pkg/jwt"
	"msgboard/pkg/log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("msgboard", zapcore.InfoLevel)

	cfg, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Errorw("failed to parse log level", "error", err)
		return err
	}
	logger = log.NewZapLogger("msgboard", level)
	defer logger.Sync()

	app, err := NewApp(logger, cfg)
	if err != nil {
		logger.Errorw("failed to create app", "error", err)
		return err
	}
	defer app.Close()

	srv := server.NewHTTP(logger, app.Handler, cfg.Port)
	return run(srv)
}

// App is the assembled board: the routed handler and the resources it owns.
type App struct {
	Handler http.Handler
	db      *db.GormDB
}

func NewApp(logger *zap.SugaredLogger, cfg config.App) (*App, error) {
	dbConn, err := db.Open(cfg.DBDriver, cfg.DBConnectionURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// repository
	repo := repository.NewBoardRepository(dbConn)
	if err := repo.Migrate(); err != nil {
		dbConn.Close()
		return nil, fmt.Errorf("migrate tables: %w", err)
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(cfg.SessionSecret))

	// board
	board := core.NewBoard(
		logger,
		repo,
		jwtService,
		cfg.BcryptCost,
		cfg.SessionTTL)

	views, err := view.NewTemplates()
	if err != nil {
		dbConn.Close()
		return nil, fmt.Errorf("load templates: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// handler
	boardHlr := handler.NewBoardHandler(
		logger,
		payload.FormDecoder{},
		board,
		session.NewManager([]byte(cfg.SessionSecret), cfg.SessionTTL, cfg.SecureCookie),
		views,
		m)

	// register routes
	router := mux.NewRouter()
	router.HandleFunc(handler.Login, boardHlr.HandleLogin).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc(handler.Register, boardHlr.HandleRegister).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc(handler.User, boardHlr.HandleUser).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc(handler.Logout, boardHlr.HandleLogout).Methods(http.MethodGet, http.MethodPost)
	router.Handle(handler.Metrics, promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// middleware
	router.Use(middleware.NewMetricsMiddleware(m).Instrument)
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(router)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	return &App{
		Handler: hdlr,
		db:      dbConn,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
