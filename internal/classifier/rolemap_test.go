package classifier_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandhuDev/JobLens/internal/classifier"
)

func TestLoadRoleMap_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Rockstar Ninja":"Sales","Wizard":"Other"}`), 0o644))

	m, err := classifier.LoadRoleMap(path)
	require.NoError(t, err)
	assert.Equal(t, "Sales", m["Rockstar Ninja"])
	assert.Equal(t, classifier.Other, m["Wizard"])
}

func TestLoadRoleMap_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Rockstar Ninja: Sales\nCode Monkey: Software Development (General)\n"), 0o644))

	m, err := classifier.LoadRoleMap(path)
	require.NoError(t, err)
	assert.Len(t, m, 2)
	assert.Equal(t, "Software Development (General)", m["Code Monkey"])
}

func TestLoadRoleMap_Missing(t *testing.T) {
	_, err := classifier.LoadRoleMap(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRoleMap_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.json")
	require.NoError(t, os.WriteFile(path, []byte(`["not", "a", "map"]`), 0o644))

	_, err := classifier.LoadRoleMap(path)
	assert.Error(t, err)
}

func TestSaveRoleMap(t *testing.T) {
	for _, name := range []string{"roles.json", "roles.yml"} {
		path := filepath.Join(t.TempDir(), name)
		want := classifier.RoleMap{"Rockstar Ninja": "Sales"}

		require.NoError(t, classifier.SaveRoleMap(path, want))
		got, err := classifier.LoadRoleMap(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
}

func TestRoleMap_Valid(t *testing.T) {
	m := classifier.RoleMap{"a": "Sales", "b": classifier.Other, "c": "Astronaut"}
	assert.Equal(t, classifier.RoleMap{"a": "Sales"}, m.Valid(classifier.DefaultTaxonomy()))
}
