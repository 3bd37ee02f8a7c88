package repository

import (
	"context"
	"time"

	"github.com/jobportal-dev/job-board/backend/internal/config"
	"github.com/jobportal-dev/job-board/backend/internal/domain"
	"github.com/jobportal-dev/job-board/backend/internal/notification"
	"github.com/jobportal-dev/job-board/backend/internal/store"
)

// Repository owns every domain collection through the injected store and
// dispatches notifications through the engine as a postcondition of its
// mutations. It is transport-agnostic: call sites see the same contract
// whichever substrate backs the store.
type Repository struct {
	cfg     *config.Config
	store   store.Store
	engine  *notification.Engine
	builtin []domain.User
}

func NewRepository(cfg *config.Config, s store.Store, engine *notification.Engine, builtinUsers []domain.User) *Repository {
	return &Repository{
		cfg:     cfg,
		store:   s,
		engine:  engine,
		builtin: builtinUsers,
	}
}

func (r *Repository) opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(r.cfg.Store.OperationTimeout)*time.Second)
}
