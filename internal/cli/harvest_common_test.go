package cli

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for collector construction from flags:
// - Default flags build a collector over every language
// - Explicit language selection is honored
// - Unknown language names are rejected
// - A parallelism setting below one is rejected

func TestNewCollector_Defaults(t *testing.T) {
	c, err := newCollector(&harvestFlags{parallel: 1})
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestNewCollector_LanguageSelection(t *testing.T) {
	c, err := newCollector(&harvestFlags{langs: []string{"python", "c"}, parallel: 1})
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestNewCollector_UnsupportedLanguage(t *testing.T) {
	_, err := newCollector(&harvestFlags{langs: []string{"cobol"}, parallel: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language")
}

func TestNewCollector_InvalidParallel(t *testing.T) {
	viper.Set("parallel", -1)
	defer viper.Set("parallel", 1)

	_, err := newCollector(&harvestFlags{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--parallel")
}
