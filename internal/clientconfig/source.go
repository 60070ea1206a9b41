package clientconfig

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Environment variable names read by the config endpoint.
const (
	EnvURL     = "SUPABASE_URL"
	EnvAnonKey = "SUPABASE_ANON_KEY"
	EnvExpose  = "ALLOW_EXPOSE_KEYS"
)

// ExposeEnabled is the only ALLOW_EXPOSE_KEYS value that disables masking.
const ExposeEnabled = "1"

const exposeDefault = "0"

// Values is one snapshot of the settings handed to the browser.
// URLSet and AnonKeySet mark values that were defined but empty.
type Values struct {
	URL        string
	AnonKey    string
	Expose     string
	URLSet     bool
	AnonKeySet bool
}

// Source supplies a fresh Values snapshot on every call.
type Source interface {
	Values() (Values, error)
}

// Environ reads the process environment. A nil Lookup uses os.LookupEnv.
type Environ struct {
	Lookup func(key string) (string, bool)
}

func (e Environ) Values() (Values, error) {
	lookup := e.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return fromLookup(lookup), nil
}

// DotenvFile parses a .env file on every call so edits apply without a
// restart. Variables inherited from the parent process win; variables put
// into the environment by LoadDotenv do not.
type DotenvFile struct {
	Path string
}

func (d DotenvFile) Values() (Values, error) {
	file, err := godotenv.Read(d.Path)
	if err != nil {
		return Values{}, fmt.Errorf("read env file %s: %w", d.Path, err)
	}
	return fromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && !fromDotenv(key) {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}), nil
}

// Static always returns the same snapshot.
type Static Values

func (s Static) Values() (Values, error) {
	v := Values(s)
	if v.Expose == "" {
		v.Expose = exposeDefault
	}
	return v, nil
}

func fromLookup(lookup func(string) (string, bool)) Values {
	v := Values{Expose: exposeDefault}
	v.URL, v.URLSet = lookup(EnvURL)
	v.AnonKey, v.AnonKeySet = lookup(EnvAnonKey)
	if s, ok := lookup(EnvExpose); ok {
		v.Expose = s
	}
	return v
}

var (
	dotenvMu   sync.RWMutex
	dotenvKeys = map[string]bool{}
)

// LoadDotenv loads .env files into the process environment like
// godotenv.Load and remembers which keys it set, so DotenvFile can tell
// them apart from variables inherited from the parent process.
func LoadDotenv(filenames ...string) error {
	before := make(map[string]bool)
	for _, kv := range os.Environ() {
		k, _, _ := strings.Cut(kv, "=")
		before[k] = true
	}

	err := godotenv.Load(filenames...)

	dotenvMu.Lock()
	defer dotenvMu.Unlock()
	for _, kv := range os.Environ() {
		k, _, _ := strings.Cut(kv, "=")
		if !before[k] {
			dotenvKeys[k] = true
		}
	}
	return err
}

func fromDotenv(key string) bool {
	dotenvMu.RLock()
	defer dotenvMu.RUnlock()
	return dotenvKeys[key]
}
