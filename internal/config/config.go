package config

import (
	"os"
	"strings"
)

type Config struct {
	Addr        string
	Dir         string
	EntryFile   string
	EnvFile     string
	CORSEnabled bool
}

func Load() Config {
	c := Config{
		Addr:      "127.0.0.1:8000",
		Dir:       ".",
		EntryFile: "index.html",
	}
	if v := os.Getenv("GLASS_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("GLASS_DIR"); v != "" {
		c.Dir = v
	}
	if v := os.Getenv("GLASS_ENTRY"); v != "" {
		c.EntryFile = v
	}
	if v := os.Getenv("GLASS_ENV_FILE"); v != "" {
		c.EnvFile = v
	}
	switch strings.ToLower(os.Getenv("GLASS_CORS")) {
	case "1", "true", "yes":
		c.CORSEnabled = true
	}
	return c
}
