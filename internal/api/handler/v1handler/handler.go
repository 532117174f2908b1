// Package v1handler implements the v1 HTTP API: cart sharing, shared cart
// access and claiming. Payloads are encoded with go-faster/jx.
package v1handler

import (
	"context"
	"net/http"
	"sharecart/internal/sharing"
	"sharecart/pkg/logger"
	"sharecart/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps are the services behind the v1 endpoints.
type Deps struct {
	Sharing sharing.Sharing
	// Sec authenticates bearer tokens. Requests are anonymous when nil.
	Sec *SecHandler
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts the v1 routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.Handle("POST /v1/carts/{cartID}/share", h.authenticate(h.shareCart))
	mux.Handle("GET /v1/share/{cartID}/{timestamp}/{token}", h.authenticate(h.accessSharedCart))
	mux.Handle("POST /v1/share/{cartID}/{timestamp}/{token}/claim", h.authenticate(h.claimSharedCart))
}

// authenticate resolves the requester. A missing Authorization header makes
// the request anonymous; a malformed or invalid token is rejected.
func (h *Handler) authenticate(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, present := bearerToken(r)
		if !present {
			next(w, r)

			return
		}
		if token == "" || h.deps.Sec == nil {
			h.writeError(w, r, serrors.With(serrors.ErrUnauthorized, "invalid authorization header"))

			return
		}

		ctx, err := h.deps.Sec.HandleBearerAuth(r.Context(), BearerAuth{Token: token})
		if err != nil {
			h.writeError(w, r, err)

			return
		}
		ctx = logger.WithFields(ctx, zap.Stringer("user_id", RequesterFromContext(ctx).UserID))

		next(w, r.WithContext(ctx))
	})
}

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Code    string
	Message string
	// Reason is set when access to a shared cart was denied.
	Reason string
}

func (e ErrorResponse) Encode(enc *jx.Encoder) {
	enc.ObjStart()
	enc.FieldStart("code")
	enc.Str(e.Code)
	enc.FieldStart("message")
	enc.Str(e.Message)
	if e.Reason != "" {
		enc.FieldStart("reason")
		enc.Str(e.Reason)
	}
	enc.ObjEnd()
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

type errorMapping struct {
	status  int
	message string
}

//nolint: gochecknoglobals
var errorMappings = map[serrors.Kind]errorMapping{
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrForbidden:    {http.StatusForbidden, "forbidden"},
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrConflict:     {http.StatusConflict, "conflict"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "service unavailable"},
}

// NewError maps err to a response. Errors without a known kind become an
// opaque 500 and are logged.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	mapping, ok := errorMappings[kind]
	if !ok {
		logger.Error(ctx, "Request failed", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response: ErrorResponse{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	res := &ErrorStatusCode{
		StatusCode: mapping.status,
		Response: ErrorResponse{
			Code:    kind.Error(),
			Message: serrors.MessageOf(err, mapping.message),
		},
	}

	var denied *sharing.DeniedError
	if errors.As(err, &denied) {
		res.Response.Reason = string(denied.Reason)
	}

	return res
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, res.Response.Encode)
}

func writeJSON(w http.ResponseWriter, status int, encode func(*jx.Encoder)) {
	var e jx.Encoder
	encode(&e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
