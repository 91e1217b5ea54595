package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/aialexidea/CHORD-DEMO/config"
	"github.com/aialexidea/CHORD-DEMO/internal/connection"
	connRepository "github.com/aialexidea/CHORD-DEMO/internal/connection/repository"
	connUsecase "github.com/aialexidea/CHORD-DEMO/internal/connection/usecase"
	"github.com/aialexidea/CHORD-DEMO/internal/discovery"
	discUsecase "github.com/aialexidea/CHORD-DEMO/internal/discovery/usecase"
	"github.com/aialexidea/CHORD-DEMO/internal/notification/dispatcher"
	"github.com/aialexidea/CHORD-DEMO/internal/notification/throttle"
	"github.com/aialexidea/CHORD-DEMO/internal/realtime"
	userRepository "github.com/aialexidea/CHORD-DEMO/internal/user/repository"
	"github.com/aialexidea/CHORD-DEMO/pkg/logger"
)

// application holds the wired core. HTTP routing beyond the realtime
// attach point and health lives in the gateway, not here.
type application struct {
	cfg         *config.Config
	logger      *logger.Logger
	hub         *realtime.Hub
	connections connection.ConnectionUsecase
	discovery   discovery.DiscoveryUsecase
}

func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN))
	sqlDB := sql.OpenDB(connector)
	db := bun.NewDB(sqlDB, pgdialect.New())
	defer db.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	defer rdb.Close()

	hub := realtime.NewHub(appLogger)
	go hub.Run()

	userRepo := userRepository.NewUserRepository(db, appLogger)
	connRepo := connRepository.NewConnectionRepository(db, appLogger)

	// Push provider hook: nil degrades to a no-op sender, in-app
	// delivery over the hub still works.
	notifier := dispatcher.NewNotificationDispatcher(
		userRepo, throttle.NewRedisStore(rdb), hub, nil, cfg.Notify, appLogger)

	app := &application{
		cfg:         cfg,
		logger:      appLogger,
		hub:         hub,
		connections: connUsecase.NewConnectionUsecase(connRepo, userRepo, notifier, appLogger),
		discovery: discUsecase.NewDiscoveryUsecase(
			userRepo, connRepo, discovery.NoopProximity{}, discovery.NoopCompatibility{}, notifier, appLogger),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", app.hub.ServeWS)
	mux.HandleFunc("/health", app.health)

	addr := ":" + cfg.Server.Port
	appLogger.Info("chord core listening", "addr", addr, "env", cfg.Server.Environment)
	if err := http.ListenAndServe(addr, mux); err != nil {
		appLogger.Error("server stopped", "err", err)
	}
}

func (a *application) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
