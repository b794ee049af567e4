// Package generator assembles complete characters from the reference tables
// through a fixed, ordered pipeline.
package generator

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cory-johannsen/swngen/internal/game/character"
	"github.com/cory-johannsen/swngen/internal/game/dice"
	"github.com/cory-johannsen/swngen/internal/game/inventory"
	"github.com/cory-johannsen/swngen/internal/game/ruleset"
	"github.com/cory-johannsen/swngen/internal/game/skill"
)

// MaxTechLevel is the highest equipment tech level.
const MaxTechLevel = 5

// Request describes one character to generate. Empty Name, Class and
// Background are chosen at random.
type Request struct {
	Name       string
	Level      int
	Method     character.Method
	Class      string
	Background string
	TechLevel  int
	// ExcludeClasses are never chosen at random, in addition to classes
	// whose policy sets random_excluded.
	ExcludeClasses []string
}

// CreditsHook optionally overrides starting credits.
type CreditsHook interface {
	// StartingCredits reports an override of base and true, or false to keep base.
	StartingCredits(class string, level, base int) (int, bool)
}

// Options tune generation.
type Options struct {
	FocusPower         ruleset.PowerLevel
	AllocationAttempts int
	BatchWorkers       int
	Credits            CreditsHook
}

// Generator builds characters. It holds only read-only state and is safe for
// concurrent use when its Source is.
type Generator struct {
	reg    *ruleset.Registry
	src    dice.Source
	logger *zap.Logger
	opts   Options
}

// New creates a Generator.
//
// Precondition: reg, src and logger must be non-nil.
func New(reg *ruleset.Registry, src dice.Source, logger *zap.Logger, opts Options) *Generator {
	if reg == nil || src == nil || logger == nil {
		panic("generator.New: precondition violated: nil argument")
	}
	if !ruleset.ValidPowerLevel(opts.FocusPower) {
		opts.FocusPower = ruleset.FocusNormal
	}
	if opts.AllocationAttempts <= 0 {
		opts.AllocationAttempts = skill.DefaultMaxAttempts
	}
	if opts.BatchWorkers <= 0 {
		opts.BatchWorkers = 4
	}
	return &Generator{reg: reg, src: src, logger: logger, opts: opts}
}

// Generate builds one character.
//
// Postcondition: on error no Character is returned; unknown explicit names
// wrap ErrUnknownClass or ErrUnknownBackground.
func (g *Generator) Generate(req Request) (*character.Character, error) {
	method := req.Method
	if method == "" {
		method = character.MethodRoll
	}
	method, err := character.ParseMethod(string(method))
	if err != nil {
		return nil, err
	}
	if req.Class != "" {
		if _, ok := g.reg.Class(req.Class); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownClass, req.Class)
		}
	}
	if req.Background != "" {
		if _, ok := g.reg.Background(req.Background); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBackground, req.Background)
		}
	}
	req.Method = method

	b := newBuild(g, req)
	c := b.run()
	g.logger.Info("character generated",
		zap.String("id", c.ID),
		zap.String("name", c.Name),
		zap.String("class", c.Class.Name),
		zap.String("background", c.Background.Name),
		zap.Int("level", c.Level),
		zap.Int("hp", c.HP),
		zap.Int("credits", c.Credits),
	)
	return c, nil
}

// GenerateBatch builds n characters with the same request, always with
// random names, using up to Options.BatchWorkers goroutines.
//
// Postcondition: on success len(result) == max(n, 0) in index order; the
// first error cancels the remaining work.
func (g *Generator) GenerateBatch(ctx context.Context, n int, req Request) ([]*character.Character, error) {
	if n <= 0 {
		return []*character.Character{}, nil
	}
	req.Name = ""
	out := make([]*character.Character, n)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.BatchWorkers)
	for i := range n {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := g.Generate(req)
			if err != nil {
				return fmt.Errorf("character %d: %w", i, err)
			}
			out[i] = c
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ClassNames returns every class name in load order.
func (g *Generator) ClassNames() []string {
	classes := g.reg.Classes()
	out := make([]string, len(classes))
	for i, c := range classes {
		out[i] = c.Name
	}
	return out
}

// BackgroundNames returns every background name in load order, optionally
// leaving out class-restricted backgrounds.
func (g *Generator) BackgroundNames(excludeRestricted bool) []string {
	var out []string
	for _, b := range g.reg.Backgrounds() {
		if excludeRestricted && !b.General() {
			continue
		}
		out = append(out, b.Name)
	}
	return out
}

// Class looks up a class by name.
func (g *Generator) Class(name string) (*ruleset.Class, error) {
	c, ok := g.reg.Class(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClass, name)
	}
	return c, nil
}

// Background looks up a background by name.
func (g *Generator) Background(name string) (*ruleset.Background, error) {
	b, ok := g.reg.Background(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackground, name)
	}
	return b, nil
}

// randomClass picks uniformly among classes not excluded from random choice.
func (g *Generator) randomClass(r *dice.Roller, exclude []string) *ruleset.Class {
	var pool []*ruleset.Class
	for _, c := range g.reg.Classes() {
		if c.Policy.RandomExcluded || slices.ContainsFunc(exclude, func(x string) bool {
			ex, ok := g.reg.Class(x)
			return ok && ex == c
		}) {
			continue
		}
		pool = append(pool, c)
	}
	if len(pool) == 0 {
		pool = g.reg.Classes()
	}
	return dice.Pick(r, pool)
}

// explicitBackground resolves a caller-named background. Names are unique
// across the table, so a background outside the class pool is still honoured.
func (g *Generator) explicitBackground(name string, class *ruleset.Class) *ruleset.Background {
	b, _ := g.reg.Background(name)
	if !b.FitsClass(class.Name) {
		g.logger.Debug("explicit background outside class pool",
			zap.String("background", b.Name),
			zap.String("class", class.Name),
		)
	}
	return b
}

// randomBackground picks among backgrounds that are general or tied to class.
func (g *Generator) randomBackground(r *dice.Roller, class *ruleset.Class) *ruleset.Background {
	var pool []*ruleset.Background
	for _, b := range g.reg.Backgrounds() {
		if b.FitsClass(class.Name) {
			pool = append(pool, b)
		}
	}
	if len(pool) == 0 {
		pool = g.reg.Backgrounds()
	}
	return dice.Pick(r, pool)
}

// startingCredits applies the hook, falling back to the class formula.
func (g *Generator) startingCredits(class *ruleset.Class, level int) int {
	base := inventory.StartingCredits(class.Policy.BaseCredits, level)
	if g.opts.Credits != nil {
		if v, ok := g.opts.Credits.StartingCredits(class.Name, level, base); ok && v >= 0 {
			return v
		}
	}
	return base
}

func newID() string { return uuid.NewString() }
