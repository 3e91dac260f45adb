package handler

import (
	"net/http"

	"assetdesk/internal/assetdesk/directory"
	"assetdesk/internal/assetdesk/model"
	"assetdesk/internal/assetdesk/policy"
	"assetdesk/internal/assetdesk/service"

	"github.com/labstack/echo/v4"
)

type AssetHandler struct {
	Service service.AssetService
	Dir     directory.Directory
}

func NewAssetHandler(s service.AssetService, dir directory.Directory) *AssetHandler {
	return &AssetHandler{Service: s, Dir: dir}
}

// resolveScope turns the x-employee-id header into the caller's
// AccessScope. Authentication itself happens upstream; this service only
// trusts the forwarded principal.
func (h *AssetHandler) resolveScope(c echo.Context) (model.AccessScope, error) {
	employeeID := c.Request().Header.Get("x-employee-id")
	if employeeID == "" {
		return model.AccessScope{}, service.ErrUnauthorized
	}
	scope, err := policy.Resolve(c.Request().Context(), h.Dir, employeeID)
	if err != nil {
		return model.AccessScope{}, service.ErrUnauthorized
	}
	return scope, nil
}

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
