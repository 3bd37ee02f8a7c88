package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobportal-dev/job-board/backend/internal/config"
	"github.com/jobportal-dev/job-board/backend/internal/domain"
	"github.com/jobportal-dev/job-board/backend/internal/handler"
	"github.com/jobportal-dev/job-board/backend/internal/mailer"
	"github.com/jobportal-dev/job-board/backend/internal/notification"
	"github.com/jobportal-dev/job-board/backend/internal/repository"
	"github.com/jobportal-dev/job-board/backend/internal/seed"
	"github.com/jobportal-dev/job-board/backend/internal/store"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	/**********************************************
	 * logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * configuration
	 **********************************************/
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", "error", err)
		return
	}

	/**********************************************
	 * storage substrate
	 **********************************************/
	st, cleanup, err := openStore(cfg)
	if err != nil {
		logger.Error("unable to open store", "driver", cfg.Store.Driver, "error", err)
		return
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Store.OperationTimeout)*time.Second)
	if err := store.InitializeDefaults(ctx, st, seed.DemoJobs()); err != nil {
		cancel()
		logger.Error("unable to seed default collections", "error", err)
		return
	}
	cancel()

	/**********************************************
	 * mail dispatch
	 **********************************************/
	var m mailer.Mailer = mailer.NewLog()
	if cfg.Mailer.Mode == "queue" {
		conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
		if err != nil {
			logger.Error("unable to connect to rabbitmq", "error", err)
			return
		}
		defer conn.Close()

		ch, err := conn.Channel()
		if err != nil {
			logger.Error("unable to open channel", "error", err)
			return
		}
		defer ch.Close()

		if err := mailer.DeclareQueue(ch); err != nil {
			logger.Error("unable to declare queue", "error", err)
			return
		}

		m = mailer.NewQueue(ch, time.Duration(cfg.RabbitMQ.PublishTimeout)*time.Second)
	}

	/**********************************************
	 * notification engine and repository
	 **********************************************/
	engine := notification.NewEngine(st, m)

	demoHash, err := bcrypt.GenerateFromPassword([]byte(cfg.DemoAccounts.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("unable to hash demo account password", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, st, engine, seed.DemoUsers(string(demoHash)))

	/**********************************************
	 * initial admin
	 **********************************************/
	admin, err := repo.GetUserByEmail(cfg.InitialAdmin.Email)
	if err != nil {
		logger.Error("unable to look up initial admin", "error", err)
		return
	}
	if admin == nil {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.InitialAdmin.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("unable to hash initial admin password", "error", err)
			return
		}
		initialAdmin := &domain.User{
			Email:        cfg.InitialAdmin.Email,
			Name:         cfg.InitialAdmin.Name,
			Role:         domain.RoleAdmin,
			PasswordHash: string(passwordHash),
		}
		if err := repo.CreateUser(initialAdmin); err != nil {
			logger.Error("unable to create initial admin", "error", err)
			return
		}
	}

	/**********************************************
	 * handler
	 **********************************************/
	handler, err := handler.NewHandler(cfg, repo, engine)
	if err != nil {
		logger.Error("unable to create handler", "error", err)
		return
	}
	handler.RegisterRoutes()

	/**********************************************
	 * HTTP server
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("starting server...", "port", cfg.Server.Port, "store", cfg.Store.Driver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("unable to start server", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.String("error", err.Error()))
	}
	logger.Info("server stopped")
}

// openStore builds the substrate selected by STORE_DRIVER and returns a
// cleanup for its connections.
func openStore(cfg *config.Config) (store.Store, func(), error) {
	switch cfg.Store.Driver {
	case "memory":
		return store.NewMemory(), func() {}, nil

	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       0,
		})

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Redis.ConnectTimeout)*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, nil, err
		}

		return store.NewRedis(rdb), func() { _ = rdb.Close() }, nil

	case "postgres":
		db, err := sql.Open("pgx", cfg.Database.DSN)
		if err != nil {
			return nil, nil, err
		}

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
		defer cancel()

		// sql.Open does not touch the network; ping to fail fast.
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		pg := store.NewPostgres(db)
		if err := pg.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		return pg, func() { _ = db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
