// Package main provides the swngen binary, which generates characters from
// the reference tables and prints their sheets as JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cory-johannsen/swngen/internal/config"
	"github.com/cory-johannsen/swngen/internal/game/character"
	"github.com/cory-johannsen/swngen/internal/game/dice"
	"github.com/cory-johannsen/swngen/internal/game/generator"
	"github.com/cory-johannsen/swngen/internal/game/ruleset"
	"github.com/cory-johannsen/swngen/internal/observability"
	"github.com/cory-johannsen/swngen/internal/scripting"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env: %v", err)
	}
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath      string
	contentDir      string
	scriptsDir      string
	name            string
	class           string
	background      string
	exclude         string
	level           int
	method          string
	techLevel       int
	count           int
	seed            uint64
	pretty          bool
	listClasses     bool
	listBackgrounds bool
}

func parseFlags(args []string) (options, map[string]bool, error) {
	var o options
	fset := flag.NewFlagSet("swngen", flag.ContinueOnError)
	fset.StringVar(&o.configPath, "config", "", "path to configuration file; empty = defaults and SWN_ environment")
	fset.StringVar(&o.contentDir, "content", "", "reference table directory (overrides content.dir)")
	fset.StringVar(&o.scriptsDir, "scripts", "", "Lua hook script directory (overrides content.scripts_dir)")
	fset.StringVar(&o.name, "name", "", "character name; empty = random")
	fset.StringVar(&o.class, "class", "", "class name; empty = random")
	fset.StringVar(&o.background, "background", "", "background name; empty = random")
	fset.StringVar(&o.exclude, "exclude", "", "comma-separated classes never chosen at random")
	fset.IntVar(&o.level, "level", 0, "character level 1-10 (overrides generation.level)")
	fset.StringVar(&o.method, "method", "", "attribute method: roll or array (overrides generation.attribute_method)")
	fset.IntVar(&o.techLevel, "tech-level", 0, "equipment tech level 0-5 (overrides generation.tech_level)")
	fset.IntVar(&o.count, "count", 1, "number of characters to generate")
	fset.Uint64Var(&o.seed, "seed", 0, "random seed; 0 = generation.seed or crypto randomness")
	fset.BoolVar(&o.pretty, "pretty", false, "indent JSON output")
	fset.BoolVar(&o.listClasses, "list-classes", false, "print class names and exit")
	fset.BoolVar(&o.listBackgrounds, "list-backgrounds", false, "print background names and exit")
	if err := fset.Parse(args); err != nil {
		return o, nil, err
	}
	set := make(map[string]bool)
	fset.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return o, set, nil
}

// applyFlags overlays explicitly set flags onto the loaded configuration.
func applyFlags(cfg *config.Config, o options, set map[string]bool) error {
	if set["content"] {
		cfg.Content.Dir = o.contentDir
	}
	if set["scripts"] {
		cfg.Content.ScriptsDir = o.scriptsDir
	}
	if set["level"] {
		cfg.Generation.Level = o.level
	}
	if set["method"] {
		cfg.Generation.AttributeMethod = o.method
	}
	if set["tech-level"] {
		cfg.Generation.TechLevel = o.techLevel
	}
	if set["seed"] {
		cfg.Generation.Seed = o.seed
	}
	return cfg.Validate()
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	start := time.Now()
	o, set, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := applyFlags(&cfg, o, set); err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	reg, err := ruleset.Load(cfg.Content.Dir)
	if err != nil {
		return err
	}
	logger.Info("content loaded",
		zap.String("dir", cfg.Content.Dir),
		zap.Int("classes", len(reg.Classes())),
		zap.Int("backgrounds", len(reg.Backgrounds())),
		zap.Int("equipment", reg.Equipment().Len()),
		zap.Duration("elapsed", time.Since(start)),
	)

	var src dice.Source
	if cfg.Generation.Seed != 0 {
		src = dice.NewSeededSource(cfg.Generation.Seed)
	} else {
		src = dice.NewCryptoSource()
	}

	opts := generator.Options{
		FocusPower:         ruleset.PowerLevel(cfg.Generation.FocusPower),
		AllocationAttempts: cfg.Generation.AllocationAttempts,
		BatchWorkers:       cfg.Generation.BatchWorkers,
	}
	if cfg.Content.ScriptsDir != "" {
		hooks, err := scripting.LoadHooks(cfg.Content.ScriptsDir, cfg.Content.InstructionLimit, src, logger)
		if err != nil {
			return err
		}
		defer hooks.Close()
		opts.Credits = hooks
	}
	gen := generator.New(reg, src, logger, opts)

	switch {
	case o.listClasses:
		return printLines(stdout, gen.ClassNames())
	case o.listBackgrounds:
		return printLines(stdout, gen.BackgroundNames(false))
	}

	req := generator.Request{
		Name:       o.name,
		Level:      cfg.Generation.Level,
		Method:     character.Method(cfg.Generation.AttributeMethod),
		Class:      o.class,
		Background: o.background,
		TechLevel:  cfg.Generation.TechLevel,
	}
	if o.exclude != "" {
		for _, c := range strings.Split(o.exclude, ",") {
			req.ExcludeClasses = append(req.ExcludeClasses, strings.TrimSpace(c))
		}
	}

	var chars []*character.Character
	if o.count > 1 {
		chars, err = gen.GenerateBatch(ctx, o.count, req)
	} else {
		var c *character.Character
		c, err = gen.Generate(req)
		chars = []*character.Character{c}
	}
	if err != nil {
		return err
	}
	return writeSheets(stdout, chars, o.pretty)
}

func printLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

// writeSheets prints one sheet as an object and several as an array.
func writeSheets(w io.Writer, chars []*character.Character, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if len(chars) == 1 {
		return enc.Encode(chars[0].Sheet())
	}
	sheets := make([]*character.Sheet, len(chars))
	for i, c := range chars {
		sheets[i] = c.Sheet()
	}
	return enc.Encode(sheets)
}
