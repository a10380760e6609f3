package server

import (
	"context"
	"errors"
	"net/http"

	"diskspace/pkg/capacity"
	"diskspace/pkg/diskspace"
	"diskspace/pkg/humanizer"
	"diskspace/pkg/log"

	"github.com/labstack/echo/v4"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error  string           `json:"error"`
	Detail *capacity.Detail `json:"detail,omitempty"`
}

// stat handles GET /stat?path=...&humanize=off|binary|decimal.
func (srv *StatServer) stat(ctx echo.Context) error {
	path := ctx.QueryParam("path")

	mode := srv.cfg.Humanize
	if raw := ctx.QueryParam("humanize"); raw != "" {
		parsed, err := humanizer.ParseMode(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid humanize mode"})
		}
		mode = parsed
	}

	log.Debug().Str("path", path).Str("humanize", string(mode)).Msg("Stat request")

	queryCtx, cancel := context.WithTimeout(ctx.Request().Context(), srv.cfg.QueryTimeout)
	defer cancel()

	report, err := srv.client.StatContext(queryCtx, path, diskspace.Options{Humanize: mode})
	if err != nil {
		return srv.statError(ctx, path, err)
	}

	return ctx.JSON(http.StatusOK, report)
}

func (srv *StatServer) statError(ctx echo.Context, path string, err error) error {
	var queryErr *capacity.QueryError
	if errors.As(err, &queryErr) {
		status := statusFor(queryErr.Reason)
		if status >= http.StatusInternalServerError {
			log.Error().Str("path", path).Err(err).Msg("Capacity query failed")
		}
		return ctx.JSON(status, errorResponse{
			Error:  queryErr.Reason.String(),
			Detail: queryErr.Detail,
		})
	}

	if errors.Is(err, context.DeadlineExceeded) {
		log.Warn().Str("path", path).Dur("timeout", srv.cfg.QueryTimeout).Msg("Capacity query timed out")
		return ctx.JSON(http.StatusGatewayTimeout, errorResponse{Error: "query timed out"})
	}

	if errors.Is(err, context.Canceled) {
		return ctx.NoContent(http.StatusServiceUnavailable)
	}

	log.Error().Str("path", path).Err(err).Msg("Unexpected stat error")
	return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func statusFor(reason capacity.Reason) int {
	switch reason {
	case capacity.ReasonInvalidPath, capacity.ReasonWrongArity, capacity.ReasonPathConversionFailed:
		return http.StatusBadRequest
	case capacity.ReasonNotDirectory:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
