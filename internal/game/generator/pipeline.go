package generator

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/swngen/internal/game/ability"
	"github.com/cory-johannsen/swngen/internal/game/character"
	"github.com/cory-johannsen/swngen/internal/game/dice"
	"github.com/cory-johannsen/swngen/internal/game/focus"
	"github.com/cory-johannsen/swngen/internal/game/inventory"
	"github.com/cory-johannsen/swngen/internal/game/magic"
	"github.com/cory-johannsen/swngen/internal/game/psionics"
	"github.com/cory-johannsen/swngen/internal/game/ruleset"
	"github.com/cory-johannsen/swngen/internal/game/skill"
)

// sameDisciplinePercent is the chance both discipline picks land on one
// discipline, granting it at level 1.
const sameDisciplinePercent = 30

// build is the state of one pipeline run.
type build struct {
	g      *Generator
	req    Request
	roller *dice.Roller
	logger *zap.Logger
	c      *character.Character
}

func newBuild(g *Generator, req Request) *build {
	return &build{
		g:      g,
		req:    req,
		roller: dice.NewLoggedRoller(g.src, g.logger),
		logger: g.logger,
		c:      &character.Character{ID: newID(), Skills: skill.NewSet()},
	}
}

// run executes every step in order. Explicit names were validated by the caller.
func (b *build) run() *character.Character {
	steps := []struct {
		name string
		fn   func()
	}{
		{"level", b.level},
		{"name", b.name},
		{"attributes", b.attributes},
		{"class", b.class},
		{"background", b.background},
		{"background skills", b.backgroundSkills},
		{"class skills", b.classSkills},
		{"skill points", b.skillPoints},
		{"foci", b.foci},
		{"psychic powers", b.psychicPowers},
		{"spells", b.spells},
		{"ability track", b.abilityTrack},
		{"hit points", b.hitPoints},
		{"saving throws", b.savingThrows},
		{"attack bonus", b.attackBonus},
		{"equipment", b.equipment},
	}
	for _, s := range steps {
		s.fn()
		b.logger.Debug("pipeline step", zap.String("step", s.name), zap.String("id", b.c.ID))
	}
	return b.c
}

func (b *build) level() { b.c.Level = character.ClampLevel(b.req.Level) }

func (b *build) name() {
	if b.req.Name != "" {
		b.c.Name = b.req.Name
		return
	}
	b.c.Name = RandomName(b.roller)
}

func (b *build) attributes() {
	b.c.Attributes = character.RollAbilities(b.req.Method, b.roller)
}

func (b *build) class() {
	if b.req.Class != "" {
		b.c.Class, _ = b.g.reg.Class(b.req.Class)
		return
	}
	b.c.Class = b.g.randomClass(b.roller, b.req.ExcludeClasses)
}

func (b *build) background() {
	if b.req.Background != "" {
		b.c.Background = b.g.explicitBackground(b.req.Background, b.c.Class)
		return
	}
	b.c.Background = b.g.randomBackground(b.roller, b.c.Class)
}

// eligibleSkills lists the skills general allocation may raise: every
// non-exclusive skill, plus the disciplines for psionic classes.
func (b *build) eligibleSkills() []string {
	out := b.g.reg.SkillNames(ruleset.CategoryCombat, ruleset.CategoryGeneral)
	if b.c.Class.Psionic() {
		out = append(out, b.g.reg.DisciplineNames()...)
	}
	return out
}

// resolveSkill turns a background grant into one concrete skill name.
func (b *build) resolveSkill(ref ruleset.SkillRef) string {
	switch ref.Kind {
	case ruleset.RefAnyCombat:
		return dice.Pick(b.roller, ruleset.CombatSkills)
	case ruleset.RefAnySkill:
		eligible := b.g.reg.SkillNames(ruleset.CategoryCombat, ruleset.CategoryGeneral)
		if len(eligible) == 0 {
			return dice.Pick(b.roller, ruleset.CombatSkills)
		}
		return dice.Pick(b.roller, eligible)
	case ruleset.RefOneOf:
		return dice.Pick(b.roller, ref.Options)
	default:
		return ref.Name
	}
}

func (b *build) backgroundSkills() {
	bg := b.c.Background
	b.c.Skills.Add(b.resolveSkill(bg.FreeSkill), -1)
	if len(bg.QuickSkills) > 0 {
		b.c.Skills.Add(b.resolveSkill(dice.Pick(b.roller, bg.QuickSkills)), 0)
	}
}

func (b *build) classSkills() {
	switch b.c.Class.Policy.BonusSkills {
	case ruleset.BonusSkillsDisciplines:
		names := b.g.reg.DisciplineNames()
		if len(names) == 0 {
			return
		}
		if b.roller.Chance(sameDisciplinePercent) {
			b.c.Skills.Add(dice.Pick(b.roller, names), 1)
			return
		}
		for _, d := range dice.Sample(b.roller, names, 2) {
			b.c.Skills.Add(d, 0)
		}
	case ruleset.BonusSkillsSunblade:
		b.c.Skills.Add(ruleset.SunbladeSkill, 0)
	}
}

// skillPoints spends class base + INT + 3*level: Sunblades first raise the
// Sunblade skill toward its level cap, then the allocator spends the rest.
func (b *build) skillPoints() {
	c := b.c
	budget := max(1, c.Class.SkillPointsBase+c.Mod(character.INT)+3*c.Level)

	if c.Class.Policy.BonusSkills == ruleset.BonusSkillsSunblade {
		spent := c.Skills.Raise(ruleset.SunbladeSkill, skill.MaxLevelAt(c.Level), budget-c.Skills.PointsSpent())
		b.logger.Debug("sunblade skill raised", zap.Int("spent", spent), zap.Int("level", c.Skills.Level(ruleset.SunbladeSkill)))
	}

	left := skill.NewAllocator(b.roller, b.g.opts.AllocationAttempts).
		Allocate(c.Skills, budget, b.eligibleSkills(), c.Class.Policy.PrioritySkills, c.Level)
	if left > 0 {
		b.logger.Debug("skill points unspent", zap.Int("left", left), zap.Int("budget", budget))
	}
}

func (b *build) foci() {
	c := b.c
	sel := focus.NewSelector(b.g.reg.Foci(), b.roller, b.logger)
	filter := focus.Filter{
		Tiers:   b.g.opts.FocusPower.Tiers(),
		Psychic: c.Class.Psionic(),
		Class:   c.Class.Name,
	}
	c.Foci = sel.Build(filter, c.Class.Policy.BaseFoci, c.Level, c.Class.Policy.BonusFocus)
}

func (b *build) psychicPowers() {
	c := b.c
	if !c.Class.Psionic() {
		return
	}
	levels := make(map[string]int)
	for _, d := range b.g.reg.DisciplineNames() {
		if c.Skills.Has(d) {
			levels[d] = c.Skills.Level(d)
		}
	}
	mod := max(c.Mod(character.WIS), c.Mod(character.CON))
	c.Psychic = psionics.NewBuilder(b.g.reg.Discipline, b.roller, b.logger).Build(levels, mod)
}

func (b *build) spells() {
	c := b.c
	if !c.Class.Spellcaster {
		return
	}
	t, ok := b.g.reg.Tradition(c.Class.Tradition)
	if !ok {
		return
	}
	c.Spells = magic.NewBuilder(b.roller, b.logger).Build(t, c.Level)
	c.Skills.Add(ruleset.CastMagicSkill, 0)
}

func (b *build) abilityTrack() {
	c := b.c
	id := c.Class.Policy.AbilityTrack
	if id == ruleset.TrackNone {
		return
	}
	def, ok := b.g.reg.Track(id)
	if !ok {
		return
	}
	in := ability.Input{Level: c.Level, MentalMod: c.MentalMod()}
	if id == ruleset.TrackSunblade {
		in.SkillLevel = max(0, c.Skills.Level(ruleset.SunbladeSkill))
	}
	c.Abilities = ability.NewBuilder(b.roller, b.logger).Build(def, in)
}

func (b *build) trackStats() ability.Stats {
	if b.c.Abilities == nil {
		return ability.Stats{}
	}
	return b.c.Abilities.Stats
}

func (b *build) hitPoints() {
	c := b.c
	// Only the Godhunter track carries an HP bonus.
	c.HP = character.RollHP(c.Level, c.Class.HPBonus, c.Mod(character.CON), b.roller) + b.trackStats().HPBonus
}

func (b *build) savingThrows() {
	c := b.c
	c.Saves = character.ComputeSaves(c.Level, c.Attributes)
}

func (b *build) attackBonus() {
	b.c.AttackBonus = character.AttackBonus(b.c.Class.AttackBonus, b.c.Level)
}

func (b *build) equipment() {
	c := b.c
	credits := b.g.startingCredits(c.Class, c.Level)
	tl := min(max(b.req.TechLevel, 0), MaxTechLevel)
	sel := inventory.NewSelector(b.g.reg.Equipment(), b.roller, b.logger)
	c.Equipment = sel.Select(c.Class.Policy.EquipmentProfile, tl, credits)
	c.Credits = inventory.Remaining(credits, c.Equipment)
}
