package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobportal-dev/job-board/backend/internal/config"
	"github.com/jobportal-dev/job-board/backend/internal/domain"
	"github.com/jobportal-dev/job-board/backend/internal/mailer"
	"github.com/jobportal-dev/job-board/backend/internal/notification"
	"github.com/jobportal-dev/job-board/backend/internal/repository"
	"github.com/jobportal-dev/job-board/backend/internal/seed"
	"github.com/jobportal-dev/job-board/backend/internal/store"
	"github.com/jobportal-dev/job-board/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operation (1: reset demo catalog, 2: insert random users, 3: insert random applications)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	st, cleanup, err := openStore(cfg)
	if err != nil {
		logger.Error("unable to open store", "driver", cfg.Store.Driver, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Store.OperationTimeout)*time.Second)
	defer cancel()

	// Seeding always goes through the simulated dispatcher; nobody wants
	// thousands of queued demo emails.
	engine := notification.NewEngine(st, mailer.NewLog())

	demoHash, err := bcrypt.GenerateFromPassword([]byte(cfg.DemoAccounts.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("unable to hash demo account password", "error", err)
		os.Exit(1)
	}
	repo := repository.NewRepository(cfg, st, engine, seed.DemoUsers(string(demoHash)))

	switch op {
	case 0:
		slog.Error("no operation specified")
	case 1:
		if err := store.ResetToDefaults(ctx, st, seed.DemoJobs()); err != nil {
			slog.Error("unable to reset demo catalog", slog.String("error", err.Error()))
		} else {
			slog.Info("demo catalog restored")
		}
	case 2:
		if n <= 0 {
			slog.Error("invalid number of users")
			return
		}
		cnt := n
		for i := 0; i < n; i++ {
			user, err := utils.GenerateRandomUser(cfg.Seed.User.Password)
			if err != nil {
				slog.Error("unable to generate random user", slog.String("error", err.Error()))
				continue
			}
			if err := repo.CreateUser(user); err != nil {
				slog.Error("unable to insert random user", slog.String("error", err.Error()))
				cnt--
			}
		}
		slog.Info("random users inserted", "count", cnt)
	case 3:
		if n <= 0 {
			slog.Error("invalid number of applications")
			return
		}
		jobs, err := repo.ListJobs()
		if err != nil {
			slog.Error("unable to list jobs", slog.String("error", err.Error()))
			return
		}
		candidates, err := repo.ListUsersByRole(domain.RoleCandidate)
		if err != nil {
			slog.Error("unable to list candidates", slog.String("error", err.Error()))
			return
		}
		if len(jobs) == 0 || len(candidates) == 0 {
			slog.Error("need at least one job and one candidate")
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			job := jobs[rand.Intn(len(jobs))]
			candidate := candidates[rand.Intn(len(candidates))]

			app := &domain.Application{
				JobID:          job.ID,
				CandidateID:    candidate.ID,
				CandidateName:  candidate.Name,
				CandidateEmail: candidate.Email,
				CoverLetter:    utils.GenerateRandomCoverLetter(job.Title),
			}
			if err := repo.CreateApplication(app); err != nil {
				// Random pairs collide with the duplicate rule; skip those.
				slog.Error("unable to insert random application", slog.String("error", err.Error()))
				cnt--
			}
		}
		slog.Info("random applications inserted", "count", cnt)
	default:
		slog.Error("unknown operation", "op", op)
	}
}

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
