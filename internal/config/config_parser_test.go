package config

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSettings(t *testing.T) {
	cases := []struct {
		name     string
		content  string
		env      string
		expected bool
	}{
		{name: "debug on", content: "debug: true\n", expected: true},
		{name: "debug off", content: "debug: false\n", expected: false},
		{name: "weakly typed", content: "debug: 1\n", expected: true},
		{name: "expanded from env", content: "debug: ${JSONIT_TEST_FLAG}\n", expected: true},
		{name: "env overrides file", content: "debug: true\n", env: "false", expected: false},
		{name: "unrelated keys", content: "debug: true\nother: 3\n", expected: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Setenv("JSONIT_TEST_FLAG", "true")
			t.Setenv(DebugEnv, c.env)

			path := writeFile(t, "settings.yml", c.content)
			settings, err := LoadSettings(path)
			require.NoError(t, err)
			assert.Equal(t, c.expected, settings.Debug)
		})
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	t.Setenv(DebugEnv, "")
	settings, err := LoadSettings("")
	require.NoError(t, err)
	assert.False(t, settings.Debug)

	t.Setenv(DebugEnv, "true")
	settings, err = LoadSettings("")
	require.NoError(t, err)
	assert.True(t, settings.Debug)
}

func TestLoadSettingsErrors(t *testing.T) {
	t.Setenv(DebugEnv, "")

	_, err := LoadSettings(writeFile(t, "settings.toml", "debug = true"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = LoadSettings(writeFile(t, "empty.yml", ""))
	assert.Error(t, err)

	_, err = LoadSettings(writeFile(t, "bad.yml", "debug: [1, 2]\n"))
	assert.Error(t, err)

	_, err = LoadSettings(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	t.Setenv(DebugEnv, "maybe")
	_, err = LoadSettings("")
	assert.Error(t, err)
}

func TestLoadSettingsOverHTTP(t *testing.T) {
	t.Setenv(DebugEnv, "")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/settings.yml" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("debug: true\n"))
	}))
	defer srv.Close()

	settings, err := LoadSettings(srv.URL + "/settings.yml")
	require.NoError(t, err)
	assert.True(t, settings.Debug)

	_, err = LoadSettings(srv.URL + "/missing.yml")
	assert.Error(t, err)
}

func TestWatchFile(t *testing.T) {
	path := writeFile(t, "doc.yml", "a: 1\n")

	var calls int32
	require.NoError(t, WatchFile(path, func() { atomic.AddInt32(&calls, 1) }))

	require.NoError(t, os.WriteFile(path, []byte("a: 2\n"), 0o644))
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) > 0
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatchFileMissing(t *testing.T) {
	err := WatchFile(filepath.Join(t.TempDir(), "missing.yml"), func() {})
	assert.Error(t, err)
}
