package store

import (
	"os"
	"path/filepath"
	"testing"

	"looper/finance-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRules_TopLevelKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.yaml")
	content := `categories:
  - name: Food
    keywords: [swiggy, zomato]
  - name: Travel
    keywords: [irctc, makemytrip]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s := NewRuleStore(path)
	rules, err := s.LoadRules()
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "Food", rules[0].Name)
	assert.Equal(t, []string{"irctc", "makemytrip"}, rules[1].Keywords)
}

func TestLoadRules_BareArray(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := `- name: Fuel
  keywords: [petrol]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s := NewRuleStore(path)
	rules, err := s.LoadRules()
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "Fuel", rules[0].Name)
}

func TestLoadRules_MissingFileReturnsEmpty(t *testing.T) {
	s := NewRuleStore(filepath.Join(t.TempDir(), "nope.yaml"))
	rules, err := s.LoadRules()
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestSaveRules_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	s := NewRuleStore(path)

	rules := []models.CategoryRule{
		{Name: "Rent", Keywords: []string{"rent", "apartment"}},
	}
	require.NoError(t, s.SaveRules(rules))

	loaded, err := s.LoadRules()
	require.NoError(t, err)
	assert.Equal(t, rules, loaded)
}
