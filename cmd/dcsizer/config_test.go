package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "margins.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeConfig(t, `
vdc: 600
line_fluct_pct: 7.5
ambient_c: 35
`)
	fc, err := loadFileConfig(path)
	require.NoError(t, err)

	require.NotNil(t, fc.Vdc)
	assert.Equal(t, 600.0, *fc.Vdc)
	require.NotNil(t, fc.LineFluctPct)
	assert.Equal(t, 7.5, *fc.LineFluctPct)
	require.NotNil(t, fc.AmbientC)
	assert.Equal(t, 35.0, *fc.AmbientC)

	// absent keys stay nil so flag defaults survive
	assert.Nil(t, fc.Idc)
	assert.Nil(t, fc.InsideC)
	assert.Nil(t, fc.AirflowSafetyPct)
}

func TestLoadFileConfig_Missing(t *testing.T) {
	_, err := loadFileConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadFileConfig_Malformed(t *testing.T) {
	path := writeConfig(t, "vdc: [not a number")
	_, err := loadFileConfig(path)
	require.Error(t, err)
}

func TestFileConfig_ApplyPrecedence(t *testing.T) {
	vdc, fluct, inside := 130.0, 8.0, 50.0
	fc := &fileConfig{Vdc: &vdc, LineFluctPct: &fluct, InsideC: &inside}

	o := opts{vdc: 600, lineFluctPct: 5, insideC: 55}
	provided := map[string]bool{"vdc": true}

	// --vdc and --line-fluct were passed on the command line
	changed := func(name string) bool { return name == "vdc" || name == "line-fluct" }
	fc.apply(&o, changed, provided)

	assert.Equal(t, 600.0, o.vdc, "flag beats file")
	assert.Equal(t, 5.0, o.lineFluctPct, "flag beats file")
	assert.Equal(t, 50.0, o.insideC, "file beats default")
	assert.True(t, provided["vdc"])
	assert.False(t, provided["idc"], "file did not supply idc")
}

func TestFileConfig_ApplyMarksNameplateProvided(t *testing.T) {
	vdc, idc, vpri := 600.0, 600.0, 480.0
	fc := &fileConfig{Vdc: &vdc, Idc: &idc, Vpri: &vpri}

	var o opts
	provided := map[string]bool{}
	fc.apply(&o, func(string) bool { return false }, provided)

	assert.Equal(t, 600.0, o.vdc)
	assert.Equal(t, 480.0, o.vpri)
	assert.True(t, provided["vdc"] && provided["idc"] && provided["vpri"])
}
