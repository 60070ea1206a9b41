// Package clientconfig builds the configuration document served to the
// front-end, masking the Supabase settings unless exposure is enabled.
package clientconfig

import "fmt"

const (
	urlPrefixLen = 8
	ellipsis     = "..."
	keyRedacted  = "*****"
)

// Payload is the /config response body. Absent values encode as null.
type Payload struct {
	HasKeys bool    `json:"hasKeys"`
	URL     *string `json:"SUPABASE_URL"`
	AnonKey *string `json:"SUPABASE_ANON_KEY"`
}

// Build computes the payload for a snapshot. Raw values are returned only
// when Expose is exactly ExposeEnabled; masking treats empty as absent.
func Build(v Values) Payload {
	p := Payload{HasKeys: v.URL != "" && v.AnonKey != ""}
	if v.Expose == ExposeEnabled {
		p.URL = raw(v.URL, v.URLSet)
		p.AnonKey = raw(v.AnonKey, v.AnonKeySet)
		return p
	}
	p.URL = MaskURL(v.URL)
	p.AnonKey = MaskKey(v.AnonKey)
	return p
}

// Resolve reads a snapshot from src and builds its payload.
func Resolve(src Source) (Payload, error) {
	v, err := src.Values()
	if err != nil {
		return Payload{}, fmt.Errorf("load client config: %w", err)
	}
	return Build(v), nil
}

// MaskURL keeps the first 8 characters of a URL followed by "...". Shorter
// values are returned unchanged and an empty value yields nil.
func MaskURL(s string) *string {
	if s == "" {
		return nil
	}
	r := []rune(s)
	if len(r) < urlPrefixLen {
		return &s
	}
	masked := string(r[:urlPrefixLen]) + ellipsis
	return &masked
}

// MaskKey replaces any non-empty key with a fixed marker.
func MaskKey(s string) *string {
	if s == "" {
		return nil
	}
	masked := keyRedacted
	return &masked
}

// raw returns nil only for unset values; set-but-empty stays "".
func raw(s string, set bool) *string {
	if s == "" && !set {
		return nil
	}
	return &s
}
