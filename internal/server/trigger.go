package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/common"
	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/worker"
)

// BatchRunner is the slice of the worker the trigger endpoint drives.
type BatchRunner interface {
	Run(ctx context.Context, params worker.RunParams) (*worker.RunReport, error)
}

// TriggerHandler is the endpoint a scheduler hits to run one worker
// invocation. Overlapping calls are expected and safe; the claim transaction
// is what keeps them from processing the same job twice.
type TriggerHandler struct {
	runner BatchRunner
	secret string
	logger *slog.Logger
}

func NewTriggerHandler(runner BatchRunner, secret string, logger *slog.Logger) *TriggerHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TriggerHandler{runner: runner, secret: secret, logger: logger}
}

// ServeHTTP handles POST /worker/render?max=N[&debug=1]. The shared secret
// comes from the X-Worker-Secret header or the secret query parameter and is
// checked before any claim occurs.
func (h *TriggerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !h.authorized(r) {
		h.logger.Warn("trigger.unauthorized", "remote", r.RemoteAddr)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	params := worker.RunParams{
		Debug: r.URL.Query().Get("debug") == "1",
	}
	if raw := r.URL.Query().Get("max"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "max must be a non-negative integer", http.StatusBadRequest)
			return
		}
		params.MaxJobs = n
	}

	ctx := common.WithRequestID(r.Context(), uuid.New().String())
	report, err := h.runner.Run(ctx, params)
	if err != nil {
		h.logger.Error("trigger.run_failed", "err", err)
		http.Error(w, "worker run failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		h.logger.Warn("trigger.encode_failed", "err", err)
	}
}

func (h *TriggerHandler) authorized(r *http.Request) bool {
	if h.secret == "" {
		return false
	}
	presented := r.Header.Get("X-Worker-Secret")
	if presented == "" {
		presented = r.URL.Query().Get("secret")
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(h.secret)) == 1
}
