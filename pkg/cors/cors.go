// Package cors resolves the cross-origin policy of the API server from
// environment state. Resolution is a pure function of an injected environment
// lookup, so the same logic can configure the middleware pipeline at startup
// and answer the /cors-config diagnostic endpoint against the live
// environment at request time.
package cors

import "strings"

// Mode classifies how the allowed-origins list was derived.
type Mode string

const (
	// ModeDebug allows every origin. Intended only for diagnosing CORS
	// problems, never for production traffic.
	ModeDebug Mode = "debug"
	// ModeProduction uses the explicit origin list from CORS_ORIGINS.
	ModeProduction Mode = "production"
	// ModeDevelopment falls back to the fixed set of local development origins.
	ModeDevelopment Mode = "development"
)

// Environment variables consumed by Resolve.
const (
	OriginsVar = "CORS_ORIGINS"
	DebugVar   = "DEBUG_CORS"
)

// Lookup reads a single environment variable. Production code passes
// os.Getenv; tests inject a map-backed lookup.
type Lookup func(key string) string

// Policy is the resolved cross-origin policy.
type Policy struct {
	// AllowedOrigins is the ordered origin list. Duplicates are harmless and
	// entries are not validated; a malformed entry simply never matches.
	AllowedOrigins []string
	// Mode records how AllowedOrigins was derived.
	Mode Mode
}

// defaultDevOrigins are the origins allowed when neither DEBUG_CORS nor
// CORS_ORIGINS is set. Ports 3000/3001/8080 across both loopback host forms.
func defaultDevOrigins() []string {
	return []string{
		"http://localhost:3000",
		"http://localhost:3001",
		"http://127.0.0.1:3000",
		"http://127.0.0.1:3001",
		"http://localhost:8080",
		"http://127.0.0.1:8080",
	}
}

// DebugEnabled reports whether the DEBUG_CORS flag is set. The comparison is
// a case-insensitive match against "true"; anything else is false.
func DebugEnabled(lookup Lookup) bool {
	return strings.EqualFold(lookup(DebugVar), "true")
}

// Resolve derives the CORS policy from the environment, in strict precedence
// order: the debug flag overrides everything and yields a wildcard policy;
// otherwise a non-empty CORS_ORIGINS is split on commas with surrounding
// whitespace trimmed; otherwise the fixed local development set is used.
// Resolve re-reads the environment on every call and has no side effects.
func Resolve(lookup Lookup) Policy {
	if DebugEnabled(lookup) {
		return Policy{AllowedOrigins: []string{"*"}, Mode: ModeDebug}
	}

	if raw := lookup(OriginsVar); raw != "" {
		parts := strings.Split(raw, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			origins = append(origins, strings.TrimSpace(p))
		}

		return Policy{AllowedOrigins: origins, Mode: ModeProduction}
	}

	return Policy{AllowedOrigins: defaultDevOrigins(), Mode: ModeDevelopment}
}

// Allows reports whether the given Origin header value is permitted by the
// policy. A wildcard entry permits every origin.
func (p Policy) Allows(origin string) bool {
	for _, allowed := range p.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}

	return false
}
