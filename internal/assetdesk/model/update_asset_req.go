package model

import (
	"strings"
	"time"
)

// UpdateAssetReq is a patch; nil pointers leave the field untouched.
type UpdateAssetReq struct {
	Name         *string    `json:"name" validate:"omitempty,min=1,max=200"`
	CategoryID   *string    `json:"category_id" validate:"omitempty,max=50"`
	Brand        *string    `json:"brand" validate:"omitempty,max=100"`
	Model        *string    `json:"model" validate:"omitempty,max=100"`
	SerialNumber *string    `json:"serial_number" validate:"omitempty,max=100"`
	Condition    *string    `json:"condition"`
	Status       *string    `json:"status"`
	PurchaseDate *time.Time `json:"purchase_date"`
	WarrantyEnd  *time.Time `json:"warranty_end"`
	LastAuditAt  *time.Time `json:"last_audit_at"`
	DocumentURLs []string   `json:"document_urls" validate:"omitempty,max=20,dive,url"`
	Notes        *string    `json:"notes" validate:"omitempty,max=2000"`

	VM *VirtualMachineSpec `json:"vm"`
}

func (r *UpdateAssetReq) Validate() error {
	if r.Condition != nil {
		c := strings.ToLower(strings.TrimSpace(*r.Condition))
		r.Condition = &c
	}
	if r.Status != nil {
		s := strings.ToLower(strings.TrimSpace(*r.Status))
		r.Status = &s
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	if r.Condition != nil && !ValidConditions[*r.Condition] {
		return &ErrorDetail{Code: "bad_request", Message: "invalid condition"}
	}
	if r.Status != nil && !ValidStatuses[*r.Status] {
		return &ErrorDetail{Code: "bad_request", Message: "invalid status"}
	}
	return nil
}
