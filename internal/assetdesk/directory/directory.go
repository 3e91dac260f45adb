// Package directory exposes the external employee directory consumed by
// the asset service. The service only reads from it.
package directory

import (
	"context"
	"errors"

	"assetdesk/internal/assetdesk/model"
)

var ErrEmployeeNotFound = errors.New("employee not found")

type Directory interface {
	Get(ctx context.Context, employeeID string) (*model.EmployeeInfo, error)
	// DirectReports lists the employee ids reporting to managerID.
	DirectReports(ctx context.Context, managerID string) ([]string, error)
	List(ctx context.Context) ([]*model.EmployeeInfo, error)
}
