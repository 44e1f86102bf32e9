package usecase

import (
	"context"

	"arches/internal/domain/entity"
)

// VisitedItem is a visited location as presented to clients.
type VisitedItem struct {
	Address    string  `json:"address"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	LocationID int64   `json:"location_id"`
	VisitID    int64   `json:"visit_id"`
}

// VisitUsecase manages the visited set of a single user.
type VisitUsecase interface {
	ListVisited(ctx context.Context, userID int64) ([]VisitedItem, error)
	IsVisited(ctx context.Context, userID, locationID int64) (bool, error)

	// ToggleVisit flips the visit for the pair in one transaction.
	ToggleVisit(ctx context.Context, userID, locationID int64) (entity.ToggleOutcome, error)
}
