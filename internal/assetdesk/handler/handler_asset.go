package handler

import (
	"net/http"

	"assetdesk/internal/assetdesk/model"

	"github.com/labstack/echo/v4"
)

// PostAsset handles POST /assets
func (h *AssetHandler) PostAsset(c echo.Context) error {
	scope, err := h.resolveScope(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.CreateAssetReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	asset, err := h.Service.CreateAsset(c.Request().Context(), scope, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, asset)
}

// PutAsset handles PUT /assets/:id
func (h *AssetHandler) PutAsset(c echo.Context) error {
	scope, err := h.resolveScope(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.UpdateAssetReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	asset, err := h.Service.UpdateAsset(c.Request().Context(), scope, c.Param("id"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, asset)
}

// GetAsset handles GET /assets/:id
func (h *AssetHandler) GetAsset(c echo.Context) error {
	scope, err := h.resolveScope(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	asset, err := h.Service.GetAsset(c.Request().Context(), scope, c.Param("id"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, asset)
}

// GetAssets handles GET /assets
func (h *AssetHandler) GetAssets(c echo.Context) error {
	scope, err := h.resolveScope(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.ListAssetsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid parameters"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	assets, err := h.Service.ListAssets(c.Request().Context(), scope, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, assets)
}

// PostAssetArchive handles POST /assets/:id/archive
func (h *AssetHandler) PostAssetArchive(c echo.Context) error {
	scope, err := h.resolveScope(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	asset, err := h.Service.ArchiveAsset(c.Request().Context(), scope, c.Param("id"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, asset)
}

// PostAssetRestore handles POST /assets/:id/restore
func (h *AssetHandler) PostAssetRestore(c echo.Context) error {
	scope, err := h.resolveScope(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	asset, err := h.Service.RestoreAsset(c.Request().Context(), scope, c.Param("id"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, asset)
}

// PostAssetStatus handles POST /assets/:id/status
func (h *AssetHandler) PostAssetStatus(c echo.Context) error {
	scope, err := h.resolveScope(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}

	asset, err := h.Service.TransitionAssetStatus(c.Request().Context(), scope, c.Param("id"), req.Status)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, asset)
}

// PostCategory handles POST /categories
func (h *AssetHandler) PostCategory(c echo.Context) error {
	scope, err := h.resolveScope(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.CreateCategoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	category, err := h.Service.CreateCategory(c.Request().Context(), scope, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, category)
}

// GetCategories handles GET /categories
func (h *AssetHandler) GetCategories(c echo.Context) error {
	scope, err := h.resolveScope(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	categories, err := h.Service.ListCategories(c.Request().Context(), scope)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, categories)
}
