package model

import "strings"

type ListAssetsReq struct {
	Status         string `query:"status" validate:"omitempty,max=50"`
	CategoryID     string `query:"category_id" validate:"omitempty,max=50"`
	Condition      string `query:"condition" validate:"omitempty,max=50"`
	IncludeVirtual bool   `query:"include_virtual"`
	VirtualOnly    bool   `query:"virtual_only"`
}

func (r *ListAssetsReq) Validate() error {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	r.CategoryID = strings.TrimSpace(r.CategoryID)
	r.Condition = strings.ToLower(strings.TrimSpace(r.Condition))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if r.Status != "" && !ValidStatuses[r.Status] {
		return &ErrorDetail{Code: "bad_request", Message: "invalid status"}
	}
	if r.Condition != "" && !ValidConditions[r.Condition] {
		return &ErrorDetail{Code: "bad_request", Message: "invalid condition"}
	}
	return nil
}

type ListAssignmentsReq struct {
	AssetID    string `query:"asset_id" validate:"omitempty,max=50"`
	EmployeeID string `query:"employee_id" validate:"omitempty,max=50"`
	ActiveOnly bool   `query:"active_only"`
}

func (r *ListAssignmentsReq) Validate() error {
	r.AssetID = strings.TrimSpace(r.AssetID)
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type ListRequestsReq struct {
	Status   string `query:"status" validate:"omitempty,max=50"`
	Priority string `query:"priority" validate:"omitempty,max=50"`
}

func (r *ListRequestsReq) Validate() error {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	r.Priority = strings.ToLower(strings.TrimSpace(r.Priority))
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if r.Priority != "" && !ValidPriorities[r.Priority] {
		return &ErrorDetail{Code: "bad_request", Message: "invalid priority"}
	}
	return nil
}

type ListComplaintsReq struct {
	Status   string `query:"status" validate:"omitempty,max=50"`
	Priority string `query:"priority" validate:"omitempty,max=50"`
	AssetID  string `query:"asset_id" validate:"omitempty,max=50"`
}

func (r *ListComplaintsReq) Validate() error {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	r.Priority = strings.ToLower(strings.TrimSpace(r.Priority))
	r.AssetID = strings.TrimSpace(r.AssetID)
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if r.Priority != "" && !ValidPriorities[r.Priority] {
		return &ErrorDetail{Code: "bad_request", Message: "invalid priority"}
	}
	return nil
}
