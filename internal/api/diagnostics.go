package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"clovable/pkg/cors"
	"clovable/pkg/logger"
)

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"ok": true}`))
}

// corsConfigResponse mirrors the resolver's inputs and output so operators
// can see both the raw environment and what it resolved to.
type corsConfigResponse struct {
	CorsOriginsEnv string   `json:"cors_origins_env"`
	DebugCors      string   `json:"debug_cors"`
	AllowedOrigins []string `json:"allowed_origins"`
	CorsMode       string   `json:"cors_mode"`
}

// corsConfigHandler resolves the policy from the live environment on every
// call. A server whose pipeline still enforces a stale policy after an
// environment change will show the drift here.
func corsConfigHandler(lookup cors.Lookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		policy := cors.Resolve(lookup)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(corsConfigResponse{
			CorsOriginsEnv: lookup(cors.OriginsVar),
			DebugCors:      lookup(cors.DebugVar),
			AllowedOrigins: policy.AllowedOrigins,
			CorsMode:       string(policy.Mode),
		}); err != nil {
			logger.Error(r.Context(), "could not encode cors config", zap.Error(err))
		}
	}
}
