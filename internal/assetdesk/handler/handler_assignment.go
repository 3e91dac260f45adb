package handler

import (
	"net/http"

	"assetdesk/internal/assetdesk/model"

	"github.com/labstack/echo/v4"
)

// PostAssignments handles POST /assignments (multi-employee fan-out)
func (h *AssetHandler) PostAssignments(c echo.Context) error {
	scope, err := h.resolveScope(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.AssignAssetReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	entries, err := h.Service.Assign(c.Request().Context(), scope, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, entries)
}

// GetAssignments handles GET /assignments
func (h *AssetHandler) GetAssignments(c echo.Context) error {
	scope, err := h.resolveScope(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.ListAssignmentsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid parameters"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	entries, err := h.Service.ListAssignments(c.Request().Context(), scope, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, entries)
}

// PostAssignmentReturn handles POST /assignments/:id/return
func (h *AssetHandler) PostAssignmentReturn(c echo.Context) error {
	scope, err := h.resolveScope(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.ReturnReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	entry, err := h.Service.UnassignUser(c.Request().Context(), scope, c.Param("id"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, entry)
}

// PostAssetReturn handles POST /assets/:id/return (bulk)
func (h *AssetHandler) PostAssetReturn(c echo.Context) error {
	scope, err := h.resolveScope(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.ReturnReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	returned, err := h.Service.UnassignAsset(c.Request().Context(), scope, c.Param("id"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]int{"returned": returned})
}

// PutAssignment handles PUT /assignments/:id
func (h *AssetHandler) PutAssignment(c echo.Context) error {
	scope, err := h.resolveScope(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.UpdateAssignmentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	entry, err := h.Service.UpdateAssignment(c.Request().Context(), scope, c.Param("id"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, entry)
}

// DeleteAssignment handles DELETE /assignments/:id
func (h *AssetHandler) DeleteAssignment(c echo.Context) error {
	scope, err := h.resolveScope(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	if err := h.Service.DeleteAssignment(c.Request().Context(), scope, c.Param("id")); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// GetEmployeeRollups handles GET /assignments/rollups
func (h *AssetHandler) GetEmployeeRollups(c echo.Context) error {
	scope, err := h.resolveScope(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	rollups, err := h.Service.EmployeeRollups(c.Request().Context(), scope)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, rollups)
}
