package model

import (
	"strings"
	"time"
)

// CreateAssetReq covers both regular assets and virtual machines. The
// intent is resolved once here: a present VM block means the virtual
// machine flow, never a string comparison downstream.
type CreateAssetReq struct {
	Tag          string     `json:"tag" validate:"required,min=1,max=100"`
	Name         string     `json:"name" validate:"required,min=1,max=200"`
	CategoryID   string     `json:"category_id" validate:"omitempty,max=50"`
	CategoryName string     `json:"category_name" validate:"omitempty,max=100"`
	Brand        string     `json:"brand" validate:"omitempty,max=100"`
	Model        string     `json:"model" validate:"omitempty,max=100"`
	SerialNumber string     `json:"serial_number" validate:"omitempty,max=100"`
	Condition    string     `json:"condition" validate:"required"`
	Status       string     `json:"status" validate:"omitempty"`
	PurchaseDate *time.Time `json:"purchase_date"`
	WarrantyEnd  *time.Time `json:"warranty_end"`
	DocumentURLs []string   `json:"document_urls" validate:"omitempty,max=20,dive,url"`
	Notes        string     `json:"notes" validate:"omitempty,max=2000"`

	VM *VirtualMachineSpec `json:"vm"`
}

// IsVirtualMachine reports the resolved creation intent.
func (r *CreateAssetReq) IsVirtualMachine() bool {
	return r.VM != nil
}

func (r *CreateAssetReq) Validate() error {
	r.Tag = strings.TrimSpace(r.Tag)
	r.Name = strings.TrimSpace(r.Name)
	r.CategoryID = strings.TrimSpace(r.CategoryID)
	r.CategoryName = strings.TrimSpace(r.CategoryName)
	r.Condition = strings.ToLower(strings.TrimSpace(r.Condition))
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	if !ValidConditions[r.Condition] {
		return &ErrorDetail{Code: "bad_request", Message: "invalid condition"}
	}
	if r.Status != "" && !ValidStatuses[r.Status] {
		return &ErrorDetail{Code: "bad_request", Message: "invalid status"}
	}
	// Category arrives either as an existing id or as an inline name for
	// the create-new-category path; one of the two is required.
	if r.CategoryID == "" && r.CategoryName == "" {
		return &ErrorDetail{Code: "bad_request", Message: "category_id or category_name required"}
	}
	if r.VM != nil && r.VM.ExpiresAt != nil && r.VM.ApprovedAt != nil && r.VM.ExpiresAt.Before(*r.VM.ApprovedAt) {
		return &ErrorDetail{Code: "bad_request", Message: "vm expiry must be after approval"}
	}
	return nil
}
