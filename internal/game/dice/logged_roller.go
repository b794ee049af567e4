package dice

import "go.uber.org/zap"

var (
	threeD6 = MustParse("3d6")
	oneD6   = MustParse("1d6")
)

// Roller wraps a Source and logger. Dice rolls are logged at debug level with
// expression, dice values, modifier, and total; plain random draws (picks,
// shuffles, percentages) are not logged.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Roll evaluates expr and logs the result at debug level.
func (r *Roller) Roll(expr Expression) RollResult {
	result := Roll(expr, r.src)
	r.logger.Debug("dice roll",
		zap.String("expression", result.Expression),
		zap.Ints("dice", result.Dice),
		zap.Int("modifier", result.Modifier),
		zap.Int("total", result.Total()),
	)
	return result
}

// RollExpr parses expr and rolls it, logging the result.
func (r *Roller) RollExpr(expr string) (RollResult, error) {
	e, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return r.Roll(e), nil
}

// ThreeD6 rolls 3d6 and returns the total.
func (r *Roller) ThreeD6() int { return r.Roll(threeD6).Total() }

// D6 rolls 1d6 and returns the total.
func (r *Roller) D6() int { return r.Roll(oneD6).Total() }

// Intn returns a value in [0, n) from the underlying Source.
//
// Precondition: n > 0.
func (r *Roller) Intn(n int) int { return r.src.Intn(n) }

// Between returns a value in [lo, hi] inclusive.
//
// Precondition: lo <= hi.
func (r *Roller) Between(lo, hi int) int { return lo + r.src.Intn(hi-lo+1) }

// Chance reports true with probability percent/100.
func (r *Roller) Chance(percent int) bool { return r.src.Intn(100) < percent }

// Pick returns a uniformly chosen element of items.
//
// Precondition: len(items) > 0.
func Pick[T any](r *Roller, items []T) T {
	return items[r.src.Intn(len(items))]
}

// Shuffle permutes items in place (Fisher-Yates).
func Shuffle[T any](r *Roller, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := r.src.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Sample returns up to n distinct elements of items in random order without
// modifying items.
//
// Postcondition: len(result) == min(n, len(items)).
func Sample[T any](r *Roller, items []T, n int) []T {
	cp := append([]T(nil), items...)
	Shuffle(r, cp)
	if n < 0 {
		n = 0
	}
	if n < len(cp) {
		cp = cp[:n]
	}
	return cp
}
