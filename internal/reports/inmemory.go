package reports

import (
	"context"
	"sync"

	"github.com/hargrim/skirmish/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*Report
	order []string
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*Report),
	}
}

// Save stores a battle report
func (r *InMemoryRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Report == nil {
		return nil, errors.InvalidArgument("report is required")
	}

	if input.Report.ID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Report.ID]; !exists {
		r.order = append(r.order, input.Report.ID)
	}

	saved := *input.Report
	r.store[input.Report.ID] = &saved

	return &SaveOutput{Success: true}, nil
}

// Get retrieves a battle report by ID
func (r *InMemoryRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	report, exists := r.store[input.BattleID]
	if !exists {
		return nil, errors.NotFound("battle report not found")
	}

	// Return a copy to prevent external modification
	out := *report
	return &GetOutput{Report: &out}, nil
}

// List returns all battle reports in the order they were saved
func (r *InMemoryRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Report, 0, len(r.order))
	for _, id := range r.order {
		report := *r.store[id]
		out = append(out, &report)
	}

	return &ListOutput{Reports: out}, nil
}
