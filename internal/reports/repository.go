// Package reports stores the outcomes of resolved battles.
package reports

//go:generate mockgen -destination=mock/mock_repository.go -package=reportsmock github.com/hargrim/skirmish/internal/reports Repository

import (
	"context"
	"time"
)

// Repository defines the storage interface for battle reports
type Repository interface {
	// Save stores a battle report
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves a battle report by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// List returns all battle reports in the order they were saved
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}

// Report is the persistent record of a resolved battle. First and Second
// name the participants in the order they were handed to the battle, not
// the order they attacked in.
type Report struct {
	ID         string
	First      string
	Second     string
	Winner     string
	Turns      int
	StartedAt  time.Time
	ResolvedAt time.Time
}

// SaveInput defines the request for saving a report
type SaveInput struct {
	Report *Report
}

// SaveOutput defines the response for saving a report
type SaveOutput struct {
	Success bool
}

// GetInput defines the request for retrieving a report
type GetInput struct {
	BattleID string
}

// GetOutput defines the response for retrieving a report
type GetOutput struct {
	Report *Report
}

// ListInput defines the request for listing reports
type ListInput struct{}

// ListOutput defines the response for listing reports
type ListOutput struct {
	Reports []*Report
}
