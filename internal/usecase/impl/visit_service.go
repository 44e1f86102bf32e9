package impl

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"arches/config"
	deliverycontext "arches/internal/delivery/context"
	"arches/internal/domain/entity"
	"arches/internal/domain/repository"
	"arches/internal/errors"
	"arches/internal/usecase"
)

type visitService struct {
	txManager    repository.TransactionManager
	visitRepo    repository.VisitRepository
	queryTimeout time.Duration
	logger       *slog.Logger
}

// VisitServiceParams holds dependencies for VisitService, injected by Fx.
type VisitServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	VisitRepo repository.VisitRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewVisitService is the constructor for visitService.
func NewVisitService(params VisitServiceParams) usecase.VisitUsecase {
	return &visitService{
		txManager:    params.TxManager,
		visitRepo:    params.VisitRepo,
		queryTimeout: params.Config.Store.QueryTimeout,
		logger:       params.Logger,
	}
}

func (srv *visitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListVisited returns the user's visited locations ordered by visit ID.
// A user with no visits gets an empty, non-nil slice.
func (srv *visitService) ListVisited(ctx context.Context, userID int64) ([]usecase.VisitedItem, error) {
	queryCtx, cancel := withQueryTimeout(ctx, srv.queryTimeout)
	defer cancel()

	visited, err := srv.visitRepo.FindVisitedByUser(queryCtx, userID)
	if err != nil {
		return nil, translateError(err, "find visited locations")
	}

	items := make([]usecase.VisitedItem, 0, len(visited))
	for _, v := range visited {
		items = append(items, usecase.VisitedItem{
			Address:    v.Location.Address,
			X:          v.Location.Point.Lon(),
			Y:          v.Location.Point.Lat(),
			LocationID: v.Location.ID,
			VisitID:    v.VisitID,
		})
	}

	return items, nil
}

// IsVisited reports whether the pair has a visit. Unknown locations fail with ErrLocationNotFound.
func (srv *visitService) IsVisited(ctx context.Context, userID, locationID int64) (bool, error) {
	queryCtx, cancel := withQueryTimeout(ctx, srv.queryTimeout)
	defer cancel()

	var visited bool
	err := srv.txManager.Execute(queryCtx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewLocationRepository().FindByID(queryCtx, locationID); err != nil {
			return err
		}

		var err error
		visited, err = repoFactory.NewVisitRepository().Exists(queryCtx, userID, locationID)

		return err
	})
	if err != nil {
		return false, translateError(err, "check visit")
	}

	return visited, nil
}

// ToggleVisit flips the visit for the pair. A toggle that loses a race with a
// concurrent writer is retried once before surfacing ErrToggleConflict.
func (srv *visitService) ToggleVisit(ctx context.Context, userID, locationID int64) (entity.ToggleOutcome, error) {
	outcome, err := srv.toggleOnce(ctx, userID, locationID)
	if errors.Is(err, repository.ErrConcurrentUpdate) {
		srv.log(ctx).Info("Retrying visit toggle after concurrent update",
			slog.Int64("userID", userID),
			slog.Int64("locationID", locationID),
		)
		outcome, err = srv.toggleOnce(ctx, userID, locationID)
	}
	if err != nil {
		return "", translateError(err, "toggle visit")
	}

	srv.log(ctx).Debug("Visit toggled",
		slog.Int64("userID", userID),
		slog.Int64("locationID", locationID),
		slog.String("outcome", string(outcome)),
	)

	return outcome, nil
}

// toggleOnce resolves both sides of the pair before the write so a missing
// user or location never leaves a partial mutation behind.
func (srv *visitService) toggleOnce(ctx context.Context, userID, locationID int64) (entity.ToggleOutcome, error) {
	queryCtx, cancel := withQueryTimeout(ctx, srv.queryTimeout)
	defer cancel()

	var outcome entity.ToggleOutcome
	err := srv.txManager.Execute(queryCtx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewUserRepository().FindByID(queryCtx, userID); err != nil {
			return err
		}
		if _, err := repoFactory.NewLocationRepository().FindByID(queryCtx, locationID); err != nil {
			return err
		}

		var err error
		outcome, err = repoFactory.NewVisitRepository().Toggle(queryCtx, userID, locationID)

		return err
	})

	return outcome, err
}
