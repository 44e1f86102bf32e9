package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"arches/config"
	deliverycontext "arches/internal/delivery/context"
	"arches/internal/domain/entity"
	domainerrors "arches/internal/domain/errors"
	"arches/internal/domain/lifecycle"
	"arches/internal/domain/repository"
	"arches/internal/domain/service"
	"arches/internal/errors"
	"arches/internal/usecase"
)

type coordinatorService struct {
	userRepo     repository.UserRepository
	visits       usecase.VisitUsecase
	proximity    usecase.ProximityUsecase
	publisher    service.EventPublisher
	metrics      service.MetricsRecorder
	queryTimeout time.Duration
	now          func() time.Time
	logger       *slog.Logger
}

// CoordinatorServiceParams holds dependencies for CoordinatorService, injected by Fx.
type CoordinatorServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	Visits    usecase.VisitUsecase
	Proximity usecase.ProximityUsecase
	Publisher service.EventPublisher
	Metrics   service.MetricsRecorder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCoordinatorService is the constructor for coordinatorService.
func NewCoordinatorService(params CoordinatorServiceParams) usecase.CoordinatorUsecase {
	return &coordinatorService{
		userRepo:     params.UserRepo,
		visits:       params.Visits,
		proximity:    params.Proximity,
		publisher:    params.Publisher,
		metrics:      params.Metrics,
		queryTimeout: params.Config.Store.QueryTimeout,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *coordinatorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetVisitedForUser lists the caller's visited locations.
func (srv *coordinatorService) GetVisitedForUser(ctx context.Context, identity *entity.Identity) ([]usecase.VisitedItem, error) {
	if err := srv.authenticate(ctx, identity); err != nil {
		return nil, err
	}

	return srv.visits.ListVisited(ctx, identity.UserID)
}

// FindNearby searches around the query point, falling back to the default radius.
func (srv *coordinatorService) FindNearby(ctx context.Context, query usecase.NearbyQuery) ([]usecase.NearbyItem, error) {
	if query.RadiusMeters == nil {
		return srv.proximity.FindNearbyDefault(ctx, query.Coordinate)
	}

	return srv.proximity.FindNearby(ctx, query.Coordinate, *query.RadiusMeters)
}

// FindAll lists the catalog.
func (srv *coordinatorService) FindAll(ctx context.Context) ([]usecase.CatalogItem, error) {
	return srv.proximity.FindAll(ctx)
}

// IsVisited reports whether the caller has visited the location.
func (srv *coordinatorService) IsVisited(ctx context.Context, identity *entity.Identity, locationID int64) (bool, error) {
	if err := srv.authenticate(ctx, identity); err != nil {
		return false, err
	}

	return srv.visits.IsVisited(ctx, identity.UserID, locationID)
}

// ToggleVisit flips the caller's visit and announces the committed result.
func (srv *coordinatorService) ToggleVisit(ctx context.Context, identity *entity.Identity, locationID int64) (entity.ToggleOutcome, error) {
	if identity == nil {
		return "", domainerrors.ErrUnauthenticated
	}

	outcome, err := srv.visits.ToggleVisit(ctx, identity.UserID, locationID)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		// The token outlived its account.
		return "", domainerrors.ErrUnauthenticated.WithDetails("account no longer exists")
	}
	if err != nil {
		return "", err
	}

	srv.metrics.RecordToggle(string(outcome))
	srv.publishToggle(ctx, identity.UserID, locationID, outcome)

	return outcome, nil
}

// authenticate rejects a missing identity or one whose account was removed.
func (srv *coordinatorService) authenticate(ctx context.Context, identity *entity.Identity) error {
	if identity == nil {
		return domainerrors.ErrUnauthenticated
	}

	queryCtx, cancel := withQueryTimeout(ctx, srv.queryTimeout)
	defer cancel()

	if _, err := srv.userRepo.FindByID(queryCtx, identity.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUnauthenticated.WithDetails("account no longer exists")
		}

		return translateError(err, "resolve identity")
	}

	return nil
}

// publishToggle is best effort. The toggle is already committed, so a
// publishing failure is logged and never changes the reported outcome.
func (srv *coordinatorService) publishToggle(ctx context.Context, userID, locationID int64, outcome entity.ToggleOutcome) {
	event := &service.VisitEvent{
		EventID:    uuid.New().String(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		UserID:     userID,
		LocationID: locationID,
		Outcome:    string(outcome),
		OccurredAt: srv.now().UTC(),
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := srv.publisher.PublishVisitEvent(publishCtx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish visit event",
			slog.String("event_id", event.EventID),
			slog.Int64("userID", userID),
			slog.Int64("locationID", locationID),
			slog.Any("error", err),
		)
	}
}
