package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"GLASS_ADDR", "GLASS_DIR", "GLASS_ENTRY", "GLASS_ENV_FILE", "GLASS_CORS"} {
		t.Setenv(k, "")
	}

	c := Load()
	assert.Equal(t, Config{Addr: "127.0.0.1:8000", Dir: ".", EntryFile: "index.html"}, c)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GLASS_ADDR", "127.0.0.1:9000")
	t.Setenv("GLASS_DIR", "/srv/www")
	t.Setenv("GLASS_ENTRY", "app.html")
	t.Setenv("GLASS_ENV_FILE", ".env.local")
	t.Setenv("GLASS_CORS", "TRUE")

	c := Load()
	assert.Equal(t, "127.0.0.1:9000", c.Addr)
	assert.Equal(t, "/srv/www", c.Dir)
	assert.Equal(t, "app.html", c.EntryFile)
	assert.Equal(t, ".env.local", c.EnvFile)
	assert.True(t, c.CORSEnabled)
}
