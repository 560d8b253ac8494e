// Package v1handler implements the generated v1specs.Handler on top of the
// domain services.
package v1handler

import (
	"context"
	"errors"
	"net/http"

	"vocab/internal/api/specs/v1specs"
	"vocab/internal/translate"
	"vocab/internal/users"
	"vocab/internal/wordpairs"
	"vocab/pkg/logger"
	"vocab/pkg/serrors"

	"github.com/go-faster/jx"
	ht "github.com/ogen-go/ogen/http"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"
)

// Deps are the services the v1 handlers delegate to.
type Deps struct {
	Users     users.Service
	WordPairs wordpairs.Service
	Translate translate.Service
}

type Handler struct {
	deps Deps
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// defaultMessages are used when the classified error carries no message.
var defaultMessages = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrNotFound:         "resource not found",
	serrors.ErrConflict:         "resource already exists",
	serrors.ErrInvalidInput:     "invalid input",
	serrors.ErrUnauthenticated:  "wrong credentials",
	serrors.ErrNotFoundLanguage: "language not found",
	serrors.ErrTranslator:       "translation failed",
}

// rootKind returns the top-level kind k refines.
func rootKind(k serrors.Kind) serrors.Kind {
	for k.Parent() != nil {
		k = k.Parent()
	}

	return k
}

func statusOf(k serrors.Kind) int {
	switch rootKind(k) {
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrConflict:
		return http.StatusConflict
	case serrors.ErrInvalidInput:
		return http.StatusUnprocessableEntity
	case serrors.ErrUnauthenticated:
		return http.StatusUnauthorized
	case serrors.ErrNotFoundLanguage:
		return http.StatusBadRequest
	case serrors.ErrTranslator:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewError maps err to a response. The code is the most specific kind name;
// server-side failures never expose their message.
func (h *Handler) NewError(ctx context.Context, err error) *v1specs.ErrorStatusCode {
	k := serrors.KindOf(err)
	status := statusOf(k)

	if status == http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err), zap.String("kind", k.Error()))

		return &v1specs.ErrorStatusCode{
			StatusCode: status,
			Response:   v1specs.Error{Code: rootKind(k).Error(), Message: "internal error"},
		}
	}

	msg := ""
	var se *serrors.Error
	if errors.As(err, &se) {
		msg = se.Message()
	}
	if msg == "" {
		msg = defaultMessages[rootKind(k)]
	}

	return &v1specs.ErrorStatusCode{
		StatusCode: status,
		Response:   v1specs.Error{Code: k.Error(), Message: msg},
	}
}

// ErrorHandler answers requests the generated server rejected before
// reaching a Handler method, in the same Error shape NewError produces.
func ErrorHandler(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	var (
		paramsErr  *ogenerrors.DecodeParamsError
		requestErr *ogenerrors.DecodeRequestError
		res        v1specs.Error
		status     int
	)
	switch {
	case errors.As(err, &paramsErr), errors.As(err, &requestErr):
		status = http.StatusBadRequest
		res = v1specs.Error{Code: serrors.ErrInvalidInput.Error(), Message: err.Error()}
	case errors.Is(err, ht.ErrNotImplemented):
		status = http.StatusNotImplemented
		res = v1specs.Error{Code: "NOT_IMPLEMENTED", Message: "operation not implemented"}
	default:
		logger.Error(ctx, "could not serve request", zap.Error(err))
		status = http.StatusInternalServerError
		res = v1specs.Error{Code: serrors.ErrUnknown.Error(), Message: "internal error"}
	}

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	res.Encode(e)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := e.WriteTo(w); err != nil {
		logger.Debug(ctx, "could not write error response", zap.Error(err))
	}
}
