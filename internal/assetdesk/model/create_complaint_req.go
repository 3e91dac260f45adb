package model

import "strings"

type CreateComplaintReq struct {
	AssetID     string `json:"asset_id" validate:"required,max=50"`
	Description string `json:"description" validate:"required,min=1,max=2000"`
	Priority    string `json:"priority" validate:"required"`
}

func (r *CreateComplaintReq) Validate() error {
	r.AssetID = strings.TrimSpace(r.AssetID)
	r.Description = strings.TrimSpace(r.Description)
	r.Priority = strings.ToLower(strings.TrimSpace(r.Priority))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if !ValidPriorities[r.Priority] {
		return &ErrorDetail{Code: "bad_request", Message: "invalid priority"}
	}
	return nil
}

// ResolveComplaintReq closes out a complaint as resolved or closed.
type ResolveComplaintReq struct {
	ResolutionNotes string `json:"resolution_notes" validate:"omitempty,max=2000"`
}

func (r *ResolveComplaintReq) Validate() error {
	r.ResolutionNotes = strings.TrimSpace(r.ResolutionNotes)
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type UpdateComplaintPriorityReq struct {
	Priority string `json:"priority" validate:"required"`
}

func (r *UpdateComplaintPriorityReq) Validate() error {
	r.Priority = strings.ToLower(strings.TrimSpace(r.Priority))
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if !ValidPriorities[r.Priority] {
		return &ErrorDetail{Code: "bad_request", Message: "invalid priority"}
	}
	return nil
}
