package stocksync

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("STOCKSYNC_API_URL", "https://store.example/wp-json/wc/v3")
	t.Setenv("STOCKSYNC_CONSUMER_KEY", "ck_test")
	t.Setenv("STOCKSYNC_CONSUMER_SECRET", "cs_test")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	config, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "https://store.example/wp-json/wc/v3", config.ApiUrl)
	require.Equal(t, "warde_url", config.MetaKey)
	require.Equal(t, NotFoundSkip, config.OnNotFound)
	require.Equal(t, "", config.Category)
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STOCKSYNC_META_KEY", "supplier_page")
	t.Setenv("STOCKSYNC_CATEGORY", "17")
	t.Setenv("STOCKSYNC_ON_NOT_FOUND", "zero")

	config, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "supplier_page", config.MetaKey)
	require.Equal(t, "17", config.Category)
	require.Equal(t, NotFoundZero, config.OnNotFound)
}

func TestLoadConfigMissingCredential(t *testing.T) {
	setRequiredEnv(t)
	// t.Setenv registered the restore, the variable itself must be gone
	t.Setenv("STOCKSYNC_CONSUMER_SECRET", "")
	os.Unsetenv("STOCKSYNC_CONSUMER_SECRET")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigInvalidNotFoundBehavior(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STOCKSYNC_ON_NOT_FOUND", "explode")

	_, err := LoadConfig()
	require.Error(t, err)
}
