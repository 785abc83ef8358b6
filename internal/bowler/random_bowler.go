package bowler

import (
	"math/rand"
	"sync"

	"github.com/KirkDiggler/tenpin/internal/domain/rules"
	bowlerr "github.com/KirkDiggler/tenpin/internal/errors"
)

// DefaultSkill is the chance a random bowler clears whatever is standing
const DefaultSkill = 0.3

// RandomBowler knocks down a random number of the standing pins
type RandomBowler struct {
	mu    sync.Mutex
	rng   *rand.Rand
	skill float64
}

// NewRandomBowler creates a seeded random bowler. Skill is the chance of
// clearing the rack on any ball; values outside [0, 1] fall back to
// DefaultSkill.
func NewRandomBowler(seed int64, skill float64) *RandomBowler {
	if skill < 0 || skill > 1 {
		skill = DefaultSkill
	}

	return &RandomBowler{
		rng:   rand.New(rand.NewSource(seed)),
		skill: skill,
	}
}

// Bowl implements Bowler.Bowl
func (b *RandomBowler) Bowl(standing int) (int, error) {
	if err := validateStanding(standing); err != nil {
		return 0, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	pins := standing
	if b.rng.Float64() >= b.skill {
		pins = b.rng.Intn(standing + 1)
	}
	return pins, nil
}

func validateStanding(standing int) error {
	if standing < 1 || standing > rules.MaxPins {
		return bowlerr.InvalidArgumentf("cannot bowl at %d standing pins", standing)
	}
	return nil
}
