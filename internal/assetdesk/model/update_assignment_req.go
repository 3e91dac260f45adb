package model

import (
	"strings"
	"time"
)

// UpdateAssignmentReq edits ledger entry metadata only. Return state is
// never touched here; that goes through the unassign paths.
type UpdateAssignmentReq struct {
	AssetID        *string    `json:"asset_id" validate:"omitempty,max=50"`
	EmployeeID     *string    `json:"employee_id" validate:"omitempty,max=50"`
	AssignmentType *string    `json:"assignment_type"`
	ExpiryDate     *time.Time `json:"expiry_date"`
	Notes          *string    `json:"notes" validate:"omitempty,max=2000"`
}

func (r *UpdateAssignmentReq) Validate() error {
	if r.AssetID != nil {
		v := strings.TrimSpace(*r.AssetID)
		r.AssetID = &v
	}
	if r.EmployeeID != nil {
		v := strings.TrimSpace(*r.EmployeeID)
		r.EmployeeID = &v
	}
	if r.AssignmentType != nil {
		v := strings.ToLower(strings.TrimSpace(*r.AssignmentType))
		r.AssignmentType = &v
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	if r.AssignmentType != nil {
		switch *r.AssignmentType {
		case AssignmentPermanent:
			// Switching to permanent drops any expiry; service clears it.
		case AssignmentTemporary:
			if r.ExpiryDate == nil {
				return &ErrorDetail{Code: "bad_request", Message: "expiry_date required when switching to temporary"}
			}
			if !r.ExpiryDate.After(time.Now()) {
				return &ErrorDetail{Code: "bad_request", Message: "expiry_date must be in the future"}
			}
		default:
			return &ErrorDetail{Code: "bad_request", Message: "assignment_type must be permanent or temporary"}
		}
	}
	return nil
}
