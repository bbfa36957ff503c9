package configuration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearBackendEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV", "")
	t.Setenv("BACKEND_URL", "")
	t.Setenv("NEXT_PUBLIC_BACKEND_URL", "")
}

func TestLoadConfig_FallsBackToBuiltInBackend(t *testing.T) {
	clearBackendEnv(t)

	c, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultBackendURL, c.Backend.BaseURL)
	assert.Equal(t, 60*time.Second, c.Backend.Timeout)
	assert.Equal(t, "/api/ytmp3", c.Backend.Endpoints.Audio)
	assert.Equal(t, "/api/ytmp4", c.Backend.Endpoints.Video)
	assert.Equal(t, "/api/search", c.Backend.Endpoints.Search)
	assert.Equal(t, "320 kbps", c.Quality.DefaultAudio)
	assert.Equal(t, "720p", c.Quality.DefaultVideo)
	assert.Len(t, c.Quality.Audio, 17)
	assert.Equal(t, "8 kbps", c.Quality.Audio[0])
	assert.Equal(t, "320 kbps", c.Quality.Audio[16])
	assert.Equal(t, []string{"144p", "240p", "360p", "480p", "720p", "1080p", "1440p", "2160p", "4320p"}, c.Quality.Video)
}

func TestLoadConfig_BackendFromEnvironment(t *testing.T) {
	clearBackendEnv(t)
	t.Setenv("BACKEND_URL", "http://localhost:9000/")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000", c.Backend.BaseURL)
}

func TestLoadConfig_LegacyPublicBackendVariable(t *testing.T) {
	clearBackendEnv(t)
	t.Setenv("NEXT_PUBLIC_BACKEND_URL", "http://legacy.example:2000")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://legacy.example:2000", c.Backend.BaseURL)
}

func TestLoadConfig_RejectsMalformedBackend(t *testing.T) {
	clearBackendEnv(t)
	t.Setenv("BACKEND_URL", "not a url")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.Quality.Audio[0] = "changed"

	b := Default()
	assert.Equal(t, "8 kbps", b.Quality.Audio[0])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"default audio outside list", func(c *Config) { c.Quality.DefaultAudio = "999 kbps" }, true},
		{"default video outside list", func(c *Config) { c.Quality.DefaultVideo = "8K" }, true},
		{"duplicate quality", func(c *Config) { c.Quality.Video = append(c.Quality.Video, "720p") }, true},
		{"endpoint without slash", func(c *Config) { c.Backend.Endpoints.Search = "api/search" }, true},
		{"zero timeout", func(c *Config) { c.Backend.Timeout = 0 }, true},
		{"empty backend", func(c *Config) { c.Backend.BaseURL = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadEnvFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.env")
	content := "# comment\n\nYTDL_TEST_A=one\nexport YTDL_TEST_B=\"two\"\nYTDL_TEST_KEEP=file\nbroken line\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("YTDL_TEST_KEEP", "os")
	os.Unsetenv("YTDL_TEST_A")
	os.Unsetenv("YTDL_TEST_B")
	t.Cleanup(func() {
		os.Unsetenv("YTDL_TEST_A")
		os.Unsetenv("YTDL_TEST_B")
	})

	loaded := LoadEnvFromFile(path, filepath.Join(dir, "missing.env"))

	assert.Equal(t, []string{path}, loaded)
	assert.Equal(t, "one", os.Getenv("YTDL_TEST_A"))
	assert.Equal(t, "two", os.Getenv("YTDL_TEST_B"))
	assert.Equal(t, "os", os.Getenv("YTDL_TEST_KEEP"))
}
