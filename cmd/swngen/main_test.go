package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/swngen/internal/game/generator"
)

const contentDir = "../../content"

func runArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SWN_LOGGING_LEVEL", "error")
	var out bytes.Buffer
	err := run(context.Background(), append([]string{"-content", contentDir}, args...), &out)
	return out.String(), err
}

func TestRun_SingleSheet(t *testing.T) {
	out, err := runArgs(t, "-class", "Warrior", "-level", "3", "-seed", "7", "-name", "Kira Vance")
	require.NoError(t, err)

	var sheet map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &sheet))
	assert.Equal(t, "Kira Vance", sheet["name"])
	assert.Equal(t, "Warrior", sheet["class"])
	assert.EqualValues(t, 3, sheet["level"])
	assert.Contains(t, sheet, "saving_throws")
	assert.Contains(t, sheet, "ac")
}

func TestRun_Batch(t *testing.T) {
	out, err := runArgs(t, "-count", "4", "-seed", "3", "-method", "array")
	require.NoError(t, err)

	var sheets []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &sheets))
	require.Len(t, sheets, 4)
	ids := map[any]bool{}
	for _, s := range sheets {
		ids[s["id"]] = true
	}
	assert.Len(t, ids, 4)
}

func TestRun_Lists(t *testing.T) {
	out, err := runArgs(t, "-list-classes")
	require.NoError(t, err)
	assert.Contains(t, strings.Split(strings.TrimSpace(out), "\n"), "Sunblade")

	out, err = runArgs(t, "-list-backgrounds")
	require.NoError(t, err)
	assert.Contains(t, out, "Soldier")
}

func TestRun_Errors(t *testing.T) {
	_, err := runArgs(t, "-class", "Pirate")
	assert.ErrorIs(t, err, generator.ErrUnknownClass)

	_, err = runArgs(t, "-level", "11")
	assert.ErrorContains(t, err, "generation.level")

	_, err = runArgs(t, "-content", "/does/not/exist")
	assert.Error(t, err)

	_, err = runArgs(t, "-bogus")
	assert.Error(t, err)
}

func TestRun_CreditsScript(t *testing.T) {
	out, err := runArgs(t, "-class", "Rectifier", "-level", "1", "-seed", "5", "-scripts", contentDir+"/scripts")
	require.NoError(t, err)

	var sheet struct {
		Credits   int `json:"credits"`
		Equipment struct {
			TotalCost int `json:"total_cost"`
		} `json:"equipment"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &sheet))
	assert.Equal(t, 1600, sheet.Credits+sheet.Equipment.TotalCost)
}
