package handler

import (
	"net/http"

	"assetdesk/internal/assetdesk/model"

	"github.com/labstack/echo/v4"
)

// PostRequest handles POST /requests
func (h *AssetHandler) PostRequest(c echo.Context) error {
	scope, err := h.resolveScope(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.CreateRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	request, err := h.Service.CreateRequest(c.Request().Context(), scope, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, request)
}

// GetRequests handles GET /requests
func (h *AssetHandler) GetRequests(c echo.Context) error {
	scope, err := h.resolveScope(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.ListRequestsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid parameters"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	requests, err := h.Service.ListRequests(c.Request().Context(), scope, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, requests)
}

// PostRequestApprove handles POST /requests/:id/approve
func (h *AssetHandler) PostRequestApprove(c echo.Context) error {
	scope, err := h.resolveScope(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	request, err := h.Service.ApproveRequest(c.Request().Context(), scope, c.Param("id"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, request)
}

// PostRequestReject handles POST /requests/:id/reject
func (h *AssetHandler) PostRequestReject(c echo.Context) error {
	scope, err := h.resolveScope(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.RejectRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	request, err := h.Service.RejectRequest(c.Request().Context(), scope, c.Param("id"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, request)
}

// PostRequestFulfill handles POST /requests/:id/fulfill
func (h *AssetHandler) PostRequestFulfill(c echo.Context) error {
	scope, err := h.resolveScope(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.FulfillRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	request, err := h.Service.FulfillRequest(c.Request().Context(), scope, c.Param("id"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, request)
}

// PostComplaint handles POST /complaints
func (h *AssetHandler) PostComplaint(c echo.Context) error {
	scope, err := h.resolveScope(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.CreateComplaintReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	complaint, err := h.Service.CreateComplaint(c.Request().Context(), scope, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, complaint)
}

// GetComplaints handles GET /complaints
func (h *AssetHandler) GetComplaints(c echo.Context) error {
	scope, err := h.resolveScope(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.ListComplaintsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid parameters"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	complaints, err := h.Service.ListComplaints(c.Request().Context(), scope, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, complaints)
}

// PostComplaintStart handles POST /complaints/:id/start
func (h *AssetHandler) PostComplaintStart(c echo.Context) error {
	scope, err := h.resolveScope(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	complaint, err := h.Service.StartComplaint(c.Request().Context(), scope, c.Param("id"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, complaint)
}

// PostComplaintResolve handles POST /complaints/:id/resolve
func (h *AssetHandler) PostComplaintResolve(c echo.Context) error {
	return h.closeOutComplaint(c, true)
}

// PostComplaintClose handles POST /complaints/:id/close
func (h *AssetHandler) PostComplaintClose(c echo.Context) error {
	return h.closeOutComplaint(c, false)
}

func (h *AssetHandler) closeOutComplaint(c echo.Context, resolve bool) error {
	scope, err := h.resolveScope(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.ResolveComplaintReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	var complaint interface{}
	if resolve {
		complaint, err = h.Service.ResolveComplaint(c.Request().Context(), scope, c.Param("id"), req)
	} else {
		complaint, err = h.Service.CloseComplaint(c.Request().Context(), scope, c.Param("id"), req)
	}
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, complaint)
}

// PutComplaintPriority handles PUT /complaints/:id/priority
func (h *AssetHandler) PutComplaintPriority(c echo.Context) error {
	scope, err := h.resolveScope(c)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	var req model.UpdateComplaintPriorityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: model.ErrorDetail{Code: "bad_request", Message: "Invalid body"},
		})
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, validationError(err))
	}

	complaint, err := h.Service.UpdateComplaintPriority(c.Request().Context(), scope, c.Param("id"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, complaint)
}
