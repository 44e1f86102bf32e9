package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	deliverycontext "arches/internal/delivery/context"
	"arches/internal/domain/entity"
	domainerrors "arches/internal/domain/errors"
	"arches/internal/domain/repository"
	"arches/internal/domain/service"
	"arches/internal/errors"
	"arches/internal/infra/cache"
	"arches/internal/infra/metrics"
	"arches/internal/infra/persistence/memory"
	"arches/internal/infra/pubsub"
	mockRepo "arches/internal/mocks/repository"
	mockSvc "arches/internal/mocks/service"
	mockUsecase "arches/internal/mocks/usecase"
	"arches/internal/usecase"
)

type coordinatorMocks struct {
	users     *mockRepo.MockUserRepository
	visits    *mockUsecase.MockVisitUsecase
	proximity *mockUsecase.MockProximityUsecase
	publisher *mockSvc.MockEventPublisher
	metrics   *mockSvc.MockMetricsRecorder
}

func newCoordinatorWithMocks(t *testing.T) (*coordinatorService, *coordinatorMocks) {
	t.Helper()

	m := &coordinatorMocks{
		users:     mockRepo.NewMockUserRepository(t),
		visits:    mockUsecase.NewMockVisitUsecase(t),
		proximity: mockUsecase.NewMockProximityUsecase(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		metrics:   mockSvc.NewMockMetricsRecorder(t),
	}

	srv := NewCoordinatorService(CoordinatorServiceParams{
		UserRepo:  m.users,
		Visits:    m.visits,
		Proximity: m.proximity,
		Publisher: m.publisher,
		Metrics:   m.metrics,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}).(*coordinatorService)
	srv.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	return srv, m
}

func TestCoordinator_GetVisitedForUser_RequiresIdentity(t *testing.T) {
	srv, _ := newCoordinatorWithMocks(t)

	items, err := srv.GetVisitedForUser(context.Background(), nil)
	assert.Nil(t, items)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestCoordinator_GetVisitedForUser_StaleIdentity(t *testing.T) {
	srv, m := newCoordinatorWithMocks(t)

	m.users.EXPECT().FindByID(mock.Anything, int64(7)).Return(nil, repository.ErrUserNotFound)

	_, err := srv.GetVisitedForUser(context.Background(), &entity.Identity{UserID: 7, Username: "gone"})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestCoordinator_GetVisitedForUser(t *testing.T) {
	srv, m := newCoordinatorWithMocks(t)
	identity := &entity.Identity{UserID: 7, Username: "alice"}
	want := []usecase.VisitedItem{{Address: "5th Ave", X: -73.99, Y: 40.75, LocationID: 1, VisitID: 10}}

	m.users.EXPECT().FindByID(mock.Anything, int64(7)).Return(&entity.User{ID: 7, Username: "alice"}, nil)
	m.visits.EXPECT().ListVisited(mock.Anything, int64(7)).Return(want, nil)

	items, err := srv.GetVisitedForUser(context.Background(), identity)
	require.NoError(t, err)
	assert.Equal(t, want, items)
}

func TestCoordinator_FindNearby_DefaultsRadius(t *testing.T) {
	srv, m := newCoordinatorWithMocks(t)
	coord := entity.NewCoordinate(-73.991, 40.751)

	m.proximity.EXPECT().FindNearbyDefault(mock.Anything, coord).Return([]usecase.NearbyItem{}, nil)

	_, err := srv.FindNearby(context.Background(), usecase.NearbyQuery{Coordinate: coord})
	require.NoError(t, err)
}

func TestCoordinator_FindNearby_ExplicitRadius(t *testing.T) {
	srv, m := newCoordinatorWithMocks(t)
	coord := entity.NewCoordinate(-73.991, 40.751)
	radius := 250.0

	m.proximity.EXPECT().FindNearby(mock.Anything, coord, 250.0).Return([]usecase.NearbyItem{}, nil)

	_, err := srv.FindNearby(context.Background(), usecase.NearbyQuery{Coordinate: coord, RadiusMeters: &radius})
	require.NoError(t, err)
}

func TestCoordinator_ToggleVisit_RequiresIdentity(t *testing.T) {
	srv, _ := newCoordinatorWithMocks(t)

	_, err := srv.ToggleVisit(context.Background(), nil, 1)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestCoordinator_ToggleVisit_PublishesAfterCommit(t *testing.T) {
	srv, m := newCoordinatorWithMocks(t)
	identity := &entity.Identity{UserID: 7, Username: "alice"}
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

	m.visits.EXPECT().ToggleVisit(mock.Anything, int64(7), int64(3)).Return(entity.ToggleAdded, nil)
	m.metrics.EXPECT().RecordToggle("added").Return()
	m.publisher.EXPECT().
		PublishVisitEvent(mock.Anything, mock.MatchedBy(func(e *service.VisitEvent) bool {
			return e.UserID == 7 &&
				e.LocationID == 3 &&
				e.Outcome == "added" &&
				e.RequestID == "req-1" &&
				e.EventID != "" &&
				e.OccurredAt.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
		})).
		Return(nil)

	outcome, err := srv.ToggleVisit(ctx, identity, 3)
	require.NoError(t, err)
	assert.Equal(t, entity.ToggleAdded, outcome)
}

func TestCoordinator_ToggleVisit_PublishFailureKeepsOutcome(t *testing.T) {
	srv, m := newCoordinatorWithMocks(t)
	identity := &entity.Identity{UserID: 7}

	m.visits.EXPECT().ToggleVisit(mock.Anything, int64(7), int64(3)).Return(entity.ToggleRemoved, nil)
	m.metrics.EXPECT().RecordToggle("removed").Return()
	m.publisher.EXPECT().PublishVisitEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	outcome, err := srv.ToggleVisit(context.Background(), identity, 3)
	require.NoError(t, err)
	assert.Equal(t, entity.ToggleRemoved, outcome)
}

func TestCoordinator_ToggleVisit_DeletedAccount(t *testing.T) {
	srv, m := newCoordinatorWithMocks(t)

	m.visits.EXPECT().ToggleVisit(mock.Anything, int64(7), int64(3)).Return("", domainerrors.ErrUserNotFound)

	_, err := srv.ToggleVisit(context.Background(), &entity.Identity{UserID: 7}, 3)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestCoordinator_ToggleVisit_UnknownLocation(t *testing.T) {
	srv, m := newCoordinatorWithMocks(t)

	m.visits.EXPECT().ToggleVisit(mock.Anything, int64(7), int64(99)).Return("", domainerrors.ErrLocationNotFound)

	_, err := srv.ToggleVisit(context.Background(), &entity.Identity{UserID: 7}, 99)
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}

func TestCoordinator_IsVisited(t *testing.T) {
	srv, m := newCoordinatorWithMocks(t)

	m.users.EXPECT().FindByID(mock.Anything, int64(7)).Return(&entity.User{ID: 7}, nil)
	m.visits.EXPECT().IsVisited(mock.Anything, int64(7), int64(3)).Return(true, nil)

	visited, err := srv.IsVisited(context.Background(), &entity.Identity{UserID: 7}, 3)
	require.NoError(t, err)
	assert.True(t, visited)
}

func TestCoordinator_EndToEndOnMemoryStore(t *testing.T) {
	catalog := newTestCatalog(t,
		newLocation(1, "5th Ave", -73.99, 40.75),
		newLocation(2, "Hollywood Blvd", -118.33, 34.10),
	)
	store := memory.NewStore(catalog)
	cfg := newTestConfig()
	logger := newDiscardLogger()
	recorder := metrics.New()

	users := memory.NewUserRepository(store)
	user := &entity.User{Username: "alice", PasswordHash: "hash"}
	require.NoError(t, users.Create(context.Background(), user))

	coordinator := NewCoordinatorService(CoordinatorServiceParams{
		UserRepo: users,
		Visits: NewVisitService(VisitServiceParams{
			TxManager: memory.NewTransactionManager(store),
			VisitRepo: memory.NewVisitRepository(store),
			Config:    cfg,
			Logger:    logger,
		}),
		Proximity: NewProximityService(ProximityServiceParams{
			Locations: catalog,
			Cache:     cache.NewNoopCache(),
			Metrics:   recorder,
			Config:    cfg,
			Logger:    logger,
		}),
		Publisher: pubsub.NewNoopPublisher(logger),
		Metrics:   recorder,
		Config:    cfg,
		Logger:    logger,
	})

	ctx := context.Background()
	identity := &entity.Identity{UserID: user.ID, Username: user.Username}

	visited, err := coordinator.GetVisitedForUser(ctx, identity)
	require.NoError(t, err)
	assert.Empty(t, visited)

	nearby, err := coordinator.FindNearby(ctx, usecase.NearbyQuery{Coordinate: entity.NewCoordinate(-73.991, 40.751)})
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, "5th Ave", nearby[0].Address)
	assert.Equal(t, int64(1), nearby[0].LocationID)

	outcome, err := coordinator.ToggleVisit(ctx, identity, nearby[0].LocationID)
	require.NoError(t, err)
	assert.Equal(t, entity.ToggleAdded, outcome)

	visited, err = coordinator.GetVisitedForUser(ctx, identity)
	require.NoError(t, err)
	require.Len(t, visited, 1)
	assert.Equal(t, int64(1), visited[0].LocationID)

	all, err := coordinator.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []usecase.CatalogItem{
		{X: -73.99, Y: 40.75, LocationID: 1},
		{X: -118.33, Y: 34.10, LocationID: 2},
	}, all)
}
