package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Content: ContentConfig{
			Dir: "content",
		},
		Generation: GenerationConfig{
			Level:              1,
			AttributeMethod:    "roll",
			TechLevel:          4,
			FocusPower:         "normal",
			AllocationAttempts: 1000,
			BatchWorkers:       4,
		},
	}
}

func TestValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: debug
  format: json
  file: /tmp/swngen.log
content:
  dir: /srv/content
  scripts_dir: /srv/content/scripts
generation:
  level: 5
  attribute_method: array
  tech_level: 3
  focus_power: strong
  seed: 42
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/swngen.log", cfg.Logging.File)
	assert.Equal(t, 10, cfg.Logging.MaxSizeMB)
	assert.Equal(t, "/srv/content", cfg.Content.Dir)
	assert.Equal(t, "/srv/content/scripts", cfg.Content.ScriptsDir)
	assert.Equal(t, 5, cfg.Generation.Level)
	assert.Equal(t, "array", cfg.Generation.AttributeMethod)
	assert.Equal(t, "strong", cfg.Generation.FocusPower)
	assert.Equal(t, uint64(42), cfg.Generation.Seed)
	assert.Equal(t, 4, cfg.Generation.BatchWorkers)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "content", cfg.Content.Dir)
	assert.Equal(t, 1, cfg.Generation.Level)
	assert.Equal(t, "roll", cfg.Generation.AttributeMethod)
	assert.Equal(t, "normal", cfg.Generation.FocusPower)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SWN_GENERATION_LEVEL", "7")
	t.Setenv("SWN_CONTENT_DIR", "/elsewhere")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Generation.Level)
	assert.Equal(t, "/elsewhere", cfg.Content.Dir)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "loud"
	cfg.Content.Dir = ""
	cfg.Generation.AttributeMethod = "dream"
	cfg.Generation.BatchWorkers = 0

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"logging.level", "content.dir", "generation.attribute_method", "generation.batch_workers"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestProperty_LevelRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		level := rapid.IntRange(-20, 30).Draw(rt, "level")
		cfg := validConfig()
		cfg.Generation.Level = level
		err := cfg.Validate()
		if level >= 1 && level <= 10 {
			assert.NoError(rt, err)
		} else {
			assert.Error(rt, err)
		}
	})
}
