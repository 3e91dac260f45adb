package model

import "strings"

// ReturnReq carries the return capture for unassigning a single entry or
// a whole asset.
type ReturnReq struct {
	ReturnCondition string `json:"return_condition" validate:"omitempty"`
	ReturnNotes     string `json:"return_notes" validate:"omitempty,max=2000"`
}

func (r *ReturnReq) Validate() error {
	r.ReturnCondition = strings.ToLower(strings.TrimSpace(r.ReturnCondition))
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if r.ReturnCondition != "" && !ValidConditions[r.ReturnCondition] {
		return &ErrorDetail{Code: "bad_request", Message: "invalid return_condition"}
	}
	return nil
}
