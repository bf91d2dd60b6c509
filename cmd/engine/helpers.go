package main

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"jobmatch-engine/internal/httpapi"
	"jobmatch-engine/internal/logger"
)

// lockDataDir takes an exclusive lock so only one engine serves a data dir.
func lockDataDir(dataDir string) (*flock.Flock, bool, error) {
	fl := flock.New(filepath.Join(dataDir, "engine.lock"))
	ok, err := fl.TryLock()
	return fl, ok, err
}

func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// writeToken stores the shutdown token where a local supervisor can read it.
func writeToken(dataDir, token string) (string, error) {
	p := filepath.Join(dataDir, "engine.token")
	return p, os.WriteFile(p, []byte(token+"\n"), 0o600)
}

func shutdownHandler(token string, stop context.CancelFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			httpapi.WriteError(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "POST only")
			return
		}

		// Local-only guard
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if host != "127.0.0.1" && host != "::1" && host != "localhost" {
			httpapi.WriteError(w, r, http.StatusForbidden, "forbidden", "shutdown is local only")
			return
		}

		got := r.Header.Get("X-Shutdown-Token")
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			httpapi.WriteError(w, r, http.StatusUnauthorized, "unauthorized", "bad shutdown token")
			return
		}

		logger.Info().Str("request_id", httpapi.RequestIDFrom(r.Context())).Msg("shutdown requested")
		httpapi.WriteJSON(w, http.StatusOK, map[string]any{"ok": true})

		// Respond first; main drains the server once stop fires.
		go func() {
			time.Sleep(50 * time.Millisecond)
			stop()
		}()
	}
}
