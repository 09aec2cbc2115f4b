package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/moltwatch/pkg/config"
	"github.com/umputun/moltwatch/pkg/repository"
)

func newTestRepos(t *testing.T, ctx context.Context, dir string) *repository.Repositories {
	t.Helper()
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN: "file:" + dir + "/test.db?cache=shared&mode=rwc",
	})
	require.NoError(t, err)
	t.Cleanup(func() { repos.Close() })
	return repos
}

func testConfig() *config.Config {
	return &config.Config{}
}

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	opts := Opts{
		Config: "non-existent-config.yml",
	}

	err := run(ctx, opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	// create a temporary invalid config file
	tmpFile, err := os.CreateTemp("", "invalid-config-*.yml")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	// write invalid yaml
	_, err = tmpFile.WriteString("invalid: yaml: content: [")
	require.NoError(t, err)
	tmpFile.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	opts := Opts{
		Config: tmpFile.Name(),
	}

	err = run(ctx, opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_ServerStartStop(t *testing.T) {
	// create temp directory for database
	tmpDir, err := os.MkdirTemp("", "moltwatch-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	// set environment variable for config
	err = os.Setenv("DB_PATH", tmpDir)
	require.NoError(t, err)
	defer os.Unsetenv("DB_PATH")

	t.Logf("DB_PATH set to: %s", tmpDir)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	serverErr := make(chan error, 1)

	// get absolute path to config file
	wd, err := os.Getwd()
	require.NoError(t, err)
	configPath := wd + "/testdata/test_config.yml"

	opts := Opts{
		Config: configPath,
	}

	// start everything
	go func() {
		err := run(ctx, opts)
		if err != nil {
			t.Logf("run error: %v", err)
			if ctx.Err() == nil {
				serverErr <- err
			}
		}
		close(serverErr)
	}()

	// wait for server to start
	time.Sleep(2 * time.Second)

	// check if server failed to start
	select {
	case err := <-serverErr:
		t.Fatalf("server failed to start: %v", err)
	default:
		// server is running
	}

	// test that server is running by making a request
	resp, err := http.Get("http://127.0.0.1:18765/ping")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "pong", string(body))

	// shutdown
	cancel()

	// wait for server to stop
	select {
	case err := <-serverErr:
		if err != nil {
			t.Logf("server stopped with error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Error("server shutdown timeout")
	}
}

func TestSeedThemes(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tmpDir := t.TempDir()
	repos := newTestRepos(t, ctx, tmpDir)

	wd, err := os.Getwd()
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Taxonomy.ThemesFile = wd + "/testdata/themes.yml"

	err = seedThemes(ctx, cfg, repos.Theme)
	require.NoError(t, err)

	themes, err := repos.Theme.GetThemes(ctx, true)
	require.NoError(t, err)
	require.Len(t, themes, 2)

	// second run must not duplicate or reset anything
	err = seedThemes(ctx, cfg, repos.Theme)
	require.NoError(t, err)

	themes, err = repos.Theme.GetThemes(ctx, true)
	require.NoError(t, err)
	assert.Len(t, themes, 2)
}

func TestSeedThemes_NoFile(t *testing.T) {
	cfg := testConfig()
	cfg.Taxonomy.ThemesFile = ""

	// nil repo is fine, the function must return before touching it
	err := seedThemes(context.Background(), cfg, nil)
	require.NoError(t, err)
}

func TestSetupLog(t *testing.T) {
	t.Run("debug mode enabled", func(t *testing.T) {
		setupLog(true)
		// the function should complete without panic
	})

	t.Run("debug mode disabled", func(t *testing.T) {
		setupLog(false)
	})

	t.Run("with secrets", func(t *testing.T) {
		setupLog(true, "secret1", "secret2")
	})
}
