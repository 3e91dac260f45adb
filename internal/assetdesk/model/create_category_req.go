package model

import "strings"

type CreateCategoryReq struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

func (r *CreateCategoryReq) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// NormalizedName is the case-insensitive uniqueness key.
func (r *CreateCategoryReq) NormalizedName() string {
	return strings.ToLower(r.Name)
}
