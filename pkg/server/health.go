package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (srv *StatServer) health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": srv.version,
	})
}
