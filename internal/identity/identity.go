// Package identity issues and tracks equipment identifiers.
//
// Identifiers are non-negative and unique within their category; the same
// number may be issued to a weapon and an armor without conflict. Each
// category also imposes a structural rule on the number itself: weapon
// identifiers divide evenly by both 2 and 3, armor identifiers are prime,
// purse and backpack identifiers carry no extra structure. Issued
// identifiers are remembered forever, so a destroyed item's identifier is
// never handed out again.
package identity

import (
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/hargrim/skirmish/internal/errors"
	"github.com/hargrim/skirmish/internal/pkg/prime"
)

// Category partitions the identifier space
type Category string

// Equipment categories
const (
	CategoryWeapon   Category = "weapon"
	CategoryArmor    Category = "armor"
	CategoryPurse    Category = "purse"
	CategoryBackpack Category = "backpack"
)

func (c Category) String() string {
	return string(c)
}

// drawSpace is the range of a raw identifier draw. Shaping an armor draw
// onto the next prime thins the usable space; acceptable at this scale.
const drawSpace = 1<<31 - 1

// maxDrawAttempts bounds collision retries so a misbehaving roller cannot
// spin Generate forever.
const maxDrawAttempts = 100

// Validates reports whether id satisfies the structural rule of cat
func Validates(cat Category, id int64) bool {
	if id < 0 {
		return false
	}
	switch cat {
	case CategoryWeapon:
		return id%2 == 0 && id%3 == 0
	case CategoryArmor:
		return prime.IsPrime(id)
	case CategoryPurse, CategoryBackpack:
		return true
	default:
		return false
	}
}

// Config holds the dependencies for the registry
type Config struct {
	Roller dice.Roller
}

// Validate checks that all required dependencies are provided
func (c *Config) Validate() error {
	if c.Roller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// Registry hands out identifiers and remembers every identifier it has
// issued, per category. It is the one shared resource of the realm and is
// safe for concurrent use.
type Registry struct {
	mu     sync.Mutex
	roller dice.Roller
	issued map[Category]map[int64]struct{}
}

// New creates a registry with empty issued sets
func New(cfg *Config) (*Registry, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Registry{
		roller: cfg.Roller,
		issued: make(map[Category]map[int64]struct{}),
	}, nil
}

// Generate draws a fresh identifier for cat, shapes it onto the category
// rule, and registers it. Collisions with already-issued identifiers are
// redrawn.
func (r *Registry) Generate(cat Category) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for attempt := 0; attempt < maxDrawAttempts; attempt++ {
		draw, err := r.roller.Roll(drawSpace)
		if err != nil {
			return 0, errors.Wrap(err, "failed to draw identifier")
		}

		id, err := shape(cat, int64(draw))
		if err != nil {
			return 0, err
		}

		if _, taken := r.set(cat)[id]; taken {
			continue
		}
		r.set(cat)[id] = struct{}{}
		return id, nil
	}

	return 0, errors.Internalf("could not find a free %s identifier after %d draws", cat, maxDrawAttempts)
}

// Register adopts an identifier chosen outside the registry. The identifier
// must satisfy the category rule and must not already be issued.
func (r *Registry) Register(cat Category, id int64) error {
	if !Validates(cat, id) {
		return errors.InvalidIdentifierf("identifier %d does not satisfy the %s rule", id, cat).
			WithMeta("category", cat.String()).
			WithMeta("identifier", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.set(cat)[id]; taken {
		return errors.DuplicateIdentifierf("identifier %d already issued for %s", id, cat).
			WithMeta("category", cat.String()).
			WithMeta("identifier", id)
	}
	r.set(cat)[id] = struct{}{}
	return nil
}

// IsUnique reports whether id has never been issued for cat
func (r *Registry) IsUnique(cat Category, id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, taken := r.set(cat)[id]
	return !taken
}

// set returns the issued set for cat, creating it on first use.
// Callers must hold r.mu.
func (r *Registry) set(cat Category) map[int64]struct{} {
	s, ok := r.issued[cat]
	if !ok {
		s = make(map[int64]struct{})
		r.issued[cat] = s
	}
	return s
}

// shape moves a raw draw onto the nearest identifier satisfying the
// category rule
func shape(cat Category, draw int64) (int64, error) {
	switch cat {
	case CategoryWeapon:
		return draw + (6-draw%6)%6, nil
	case CategoryArmor:
		return prime.Next(draw), nil
	case CategoryPurse, CategoryBackpack:
		return draw, nil
	default:
		return 0, errors.InvalidArgumentf("unknown category %q", cat)
	}
}
