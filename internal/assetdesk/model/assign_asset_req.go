package model

import (
	"strings"
	"time"
)

// AssignAssetReq issues one asset to one or more employees. Each employee
// gets an independent ledger entry; creation is all-or-nothing.
type AssignAssetReq struct {
	AssetID             string     `json:"asset_id" validate:"required,max=50"`
	EmployeeIDs         []string   `json:"employee_ids" validate:"required,min=1,max=50,dive,required"`
	AssignmentType      string     `json:"assignment_type" validate:"required"`
	ExpiryDate          *time.Time `json:"expiry_date"`
	ConditionAtIssuance string     `json:"condition_at_issuance" validate:"omitempty"`
	Notes               string     `json:"notes" validate:"omitempty,max=2000"`
}

func (r *AssignAssetReq) Validate() error {
	r.AssetID = strings.TrimSpace(r.AssetID)
	r.AssignmentType = strings.ToLower(strings.TrimSpace(r.AssignmentType))
	r.ConditionAtIssuance = strings.ToLower(strings.TrimSpace(r.ConditionAtIssuance))
	seen := make(map[string]bool, len(r.EmployeeIDs))
	for i, id := range r.EmployeeIDs {
		r.EmployeeIDs[i] = strings.TrimSpace(id)
		if seen[r.EmployeeIDs[i]] {
			return &ErrorDetail{Code: "bad_request", Message: "duplicate employee_id in batch"}
		}
		seen[r.EmployeeIDs[i]] = true
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	if r.AssignmentType != AssignmentPermanent && r.AssignmentType != AssignmentTemporary {
		return &ErrorDetail{Code: "bad_request", Message: "assignment_type must be permanent or temporary"}
	}
	if r.AssignmentType == AssignmentTemporary {
		if r.ExpiryDate == nil {
			return &ErrorDetail{Code: "bad_request", Message: "expiry_date required for temporary assignments"}
		}
		if !r.ExpiryDate.After(time.Now()) {
			return &ErrorDetail{Code: "bad_request", Message: "expiry_date must be in the future"}
		}
	}
	if r.AssignmentType == AssignmentPermanent && r.ExpiryDate != nil {
		return &ErrorDetail{Code: "bad_request", Message: "expiry_date not allowed for permanent assignments"}
	}
	if r.ConditionAtIssuance != "" && !ValidConditions[r.ConditionAtIssuance] {
		return &ErrorDetail{Code: "bad_request", Message: "invalid condition_at_issuance"}
	}
	return nil
}
