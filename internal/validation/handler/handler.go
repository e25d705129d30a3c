package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"rutcheck/internal/validation"
	dErrors "rutcheck/pkg/domain-errors"
	"rutcheck/pkg/platform/httputil"
	"rutcheck/pkg/requestcontext"
	"rutcheck/pkg/rut"
)

// Service defines the interface for identifier operations.
type Service interface {
	Validate(ctx context.Context, raw string, enforceRange bool) bool
	Parse(ctx context.Context, raw string) (rut.ID, error)
	Format(ctx context.Context, raw string, separators bool) (string, error)
	Clean(ctx context.Context, raw string) (string, error)
	CheckCharacter(ctx context.Context, body int) (string, error)
	ValidateBatch(ctx context.Context, inputs []string, enforceRange bool) ([]rut.Outcome, error)
	Generate(ctx context.Context, minBody, maxBody int) (string, error)
	Classify(ctx context.Context, raw string) validation.Classification
}

// Handler wires identifier endpoints to the validation service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a validation handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts identifier endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/rut", func(r chi.Router) {
		r.Post("/validate", h.HandleValidate)
		r.Post("/parse", h.HandleParse)
		r.Post("/format", h.HandleFormat)
		r.Post("/clean", h.HandleClean)
		r.Post("/batch", h.HandleBatch)
		r.Post("/classify", h.HandleClassify)
		r.Get("/check-digit/{body}", h.HandleCheckDigit)
		r.Get("/random", h.HandleRandom)
	})
}

// HandleValidate handles POST /rut/validate requests.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &ValidateResponse{
		RUT:   req.RUT,
		Valid: h.service.Validate(ctx, req.RUT, req.EnforceRange),
	})
}

// HandleParse handles POST /rut/parse requests.
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[IdentifierRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	id, err := h.service.Parse(ctx, req.RUT)
	if err != nil {
		h.writeError(ctx, w, "parse", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromID(id))
}

// HandleFormat handles POST /rut/format requests.
func (h *Handler) HandleFormat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[FormatRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	formatted, err := h.service.Format(ctx, req.RUT, req.WithSeparators())
	if err != nil {
		h.writeError(ctx, w, "format", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &FormatResponse{Formatted: formatted})
}

// HandleClean handles POST /rut/clean requests.
func (h *Handler) HandleClean(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[IdentifierRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	cleaned, err := h.service.Clean(ctx, req.RUT)
	if err != nil {
		h.writeError(ctx, w, "clean", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &CleanResponse{Cleaned: cleaned})
}

// HandleBatch handles POST /rut/batch requests.
func (h *Handler) HandleBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[BatchRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	results, err := h.service.ValidateBatch(ctx, req.RUTs, req.EnforceRange)
	if err != nil {
		h.writeError(ctx, w, "batch", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromOutcomes(results, requestcontext.Now(ctx)))
}

// HandleClassify handles POST /rut/classify requests.
func (h *Handler) HandleClassify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[IdentifierRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromClassification(h.service.Classify(ctx, req.RUT)))
}

// HandleCheckDigit handles GET /rut/check-digit/{body} requests.
func (h *Handler) HandleCheckDigit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw := strings.TrimSpace(chi.URLParam(r, "body"))
	body, err := strconv.Atoi(raw)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "body must be an integer"))
		return
	}

	check, err := h.service.CheckCharacter(ctx, body)
	if err != nil {
		h.writeError(ctx, w, "check_digit", err)
		return
	}

	resp := &CheckDigitResponse{Body: body, Check: check}
	if digits := strconv.Itoa(body); len(digits) == 7 || len(digits) == 8 {
		if formatted, err := h.service.Format(ctx, digits+check, true); err == nil {
			resp.Formatted = formatted
		}
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleRandom handles GET /rut/random requests.
func (h *Handler) HandleRandom(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	minBody, err := intQuery(r, "min", rut.DefaultRandomMin)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	maxBody, err := intQuery(r, "max", rut.DefaultRandomMax)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	out, err := h.service.Generate(ctx, minBody, maxBody)
	if err != nil {
		h.writeError(ctx, w, "random", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &RandomResponse{RUT: out})
}

func intQuery(r *http.Request, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeValidation, key+" must be an integer")
	}
	return n, nil
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, endpoint string, err error) {
	if !httputil.IsBadRequest(err) {
		h.logger.ErrorContext(ctx, "identifier request failed",
			"request_id", requestcontext.RequestID(ctx),
			"client_ip", requestcontext.ClientIP(ctx),
			"user_agent", requestcontext.UserAgent(ctx),
			"endpoint", endpoint,
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}
