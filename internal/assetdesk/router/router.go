package router

import (
	"assetdesk/internal/assetdesk/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterRoutes(e *echo.Echo, h *handler.AssetHandler) {
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "x-employee-id"},
	}))

	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1")
	v1.Use(handler.RequestIDMiddleware)

	// Registry
	v1.POST("/assets", h.PostAsset)
	v1.GET("/assets", h.GetAssets)
	v1.GET("/assets/:id", h.GetAsset)
	v1.PUT("/assets/:id", h.PutAsset)
	v1.POST("/assets/:id/archive", h.PostAssetArchive)
	v1.POST("/assets/:id/restore", h.PostAssetRestore)
	v1.POST("/assets/:id/status", h.PostAssetStatus)
	v1.POST("/assets/:id/return", h.PostAssetReturn)
	v1.POST("/categories", h.PostCategory)
	v1.GET("/categories", h.GetCategories)

	// Ledger
	v1.POST("/assignments", h.PostAssignments)
	v1.GET("/assignments", h.GetAssignments)
	v1.GET("/assignments/rollups", h.GetEmployeeRollups)
	v1.PUT("/assignments/:id", h.PutAssignment)
	v1.DELETE("/assignments/:id", h.DeleteAssignment)
	v1.POST("/assignments/:id/return", h.PostAssignmentReturn)

	// Request workflow
	v1.POST("/requests", h.PostRequest)
	v1.GET("/requests", h.GetRequests)
	v1.POST("/requests/:id/approve", h.PostRequestApprove)
	v1.POST("/requests/:id/reject", h.PostRequestReject)
	v1.POST("/requests/:id/fulfill", h.PostRequestFulfill)

	// Complaint workflow
	v1.POST("/complaints", h.PostComplaint)
	v1.GET("/complaints", h.GetComplaints)
	v1.POST("/complaints/:id/start", h.PostComplaintStart)
	v1.POST("/complaints/:id/resolve", h.PostComplaintResolve)
	v1.POST("/complaints/:id/close", h.PostComplaintClose)
	v1.PUT("/complaints/:id/priority", h.PutComplaintPriority)
}
