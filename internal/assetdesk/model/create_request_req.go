package model

import "strings"

type CreateRequestReq struct {
	CategoryID    string `json:"category_id" validate:"required,max=50"`
	Description   string `json:"description" validate:"required,min=1,max=2000"`
	Justification string `json:"justification" validate:"omitempty,max=2000"`
	Priority      string `json:"priority" validate:"required"`
}

func (r *CreateRequestReq) Validate() error {
	r.CategoryID = strings.TrimSpace(r.CategoryID)
	r.Description = strings.TrimSpace(r.Description)
	r.Justification = strings.TrimSpace(r.Justification)
	r.Priority = strings.ToLower(strings.TrimSpace(r.Priority))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if !ValidPriorities[r.Priority] {
		return &ErrorDetail{Code: "bad_request", Message: "invalid priority"}
	}
	return nil
}

type RejectRequestReq struct {
	Reason string `json:"reason" validate:"omitempty,max=2000"`
}

func (r *RejectRequestReq) Validate() error {
	r.Reason = strings.TrimSpace(r.Reason)
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// FulfillRequestReq links an approved request to a concrete asset. The
// ledger entries are created in the same transaction; EmployeeIDs
// defaults to the requester when empty.
type FulfillRequestReq struct {
	AssetID     string   `json:"asset_id" validate:"required,max=50"`
	EmployeeIDs []string `json:"employee_ids" validate:"omitempty,max=50,dive,required"`
	Notes       string   `json:"notes" validate:"omitempty,max=2000"`
}

func (r *FulfillRequestReq) Validate() error {
	r.AssetID = strings.TrimSpace(r.AssetID)
	for i, id := range r.EmployeeIDs {
		r.EmployeeIDs[i] = strings.TrimSpace(id)
	}
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
