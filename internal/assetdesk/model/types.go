package model

import "time"

// Asset is the registry record. Assets are never hard-deleted; retired,
// lost and archived are terminal-but-queryable statuses.
type Asset struct {
	ID           string     `bson:"_id,omitempty" json:"id"`
	Tag          string     `bson:"tag" json:"tag"`
	Name         string     `bson:"name" json:"name"`
	CategoryID   string     `bson:"category_id" json:"category_id"`
	Brand        string     `bson:"brand,omitempty" json:"brand,omitempty"`
	Model        string     `bson:"model,omitempty" json:"model,omitempty"`
	SerialNumber string     `bson:"serial_number,omitempty" json:"serial_number,omitempty"`
	Condition    string     `bson:"condition" json:"condition"`
	Status       string     `bson:"status" json:"status"`
	PurchaseDate *time.Time `bson:"purchase_date,omitempty" json:"purchase_date,omitempty"`
	WarrantyEnd  *time.Time `bson:"warranty_end,omitempty" json:"warranty_end,omitempty"`
	LastAuditAt  *time.Time `bson:"last_audit_at,omitempty" json:"last_audit_at,omitempty"`
	DocumentURLs []string   `bson:"document_urls,omitempty" json:"document_urls,omitempty"`
	Notes        string     `bson:"notes,omitempty" json:"notes,omitempty"`

	// VM is set only for virtual machine assets. VM assets share the
	// status/condition lifecycle but are excluded from regular listings.
	VM *VirtualMachineSpec `bson:"vm,omitempty" json:"vm,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	CreatedBy string    `bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy string    `bson:"updated_by,omitempty" json:"updated_by,omitempty"`

	// Denormalized for read-only collaborators, populated on reads.
	CategoryName string `bson:"-" json:"category_name,omitempty"`
}

// VirtualMachineSpec carries the network/credential/compliance attributes
// of a virtual machine asset.
type VirtualMachineSpec struct {
	IPAddress     string     `bson:"ip_address,omitempty" json:"ip_address,omitempty"`
	VPNRequired   bool       `bson:"vpn_required" json:"vpn_required"`
	MFAEnabled    bool       `bson:"mfa_enabled" json:"mfa_enabled"`
	BackupEnabled bool       `bson:"backup_enabled" json:"backup_enabled"`
	AuditStatus   string     `bson:"audit_status,omitempty" json:"audit_status,omitempty"`
	CloudProvider string     `bson:"cloud_provider,omitempty" json:"cloud_provider,omitempty"`
	TicketID      string     `bson:"ticket_id,omitempty" json:"ticket_id,omitempty"`
	ApprovedAt    *time.Time `bson:"approved_at,omitempty" json:"approved_at,omitempty"`
	ExpiresAt     *time.Time `bson:"expires_at,omitempty" json:"expires_at,omitempty"`
}

type AssetCategory struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	NameLower string    `bson:"name_lower" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	CreatedBy string    `bson:"created_by,omitempty" json:"created_by,omitempty"`
}

// AssetAssignment is one ledger entry: a single asset issued to a single
// employee. One asset may carry several concurrently active entries.
type AssetAssignment struct {
	ID                   string     `bson:"_id,omitempty" json:"id"`
	AssetID              string     `bson:"asset_id" json:"asset_id"`
	EmployeeID           string     `bson:"employee_id" json:"employee_id"`
	AssignedBy           string     `bson:"assigned_by" json:"assigned_by"`
	AssignmentType       string     `bson:"assignment_type" json:"assignment_type"`
	ExpiryDate           *time.Time `bson:"expiry_date,omitempty" json:"expiry_date,omitempty"`
	ConditionAtIssuance  string     `bson:"condition_at_issuance,omitempty" json:"condition_at_issuance,omitempty"`
	Notes                string     `bson:"notes,omitempty" json:"notes,omitempty"`
	IsActive             bool       `bson:"is_active" json:"is_active"`
	ReturnDate           *time.Time `bson:"return_date,omitempty" json:"return_date,omitempty"`
	ReturnCondition      string     `bson:"return_condition,omitempty" json:"return_condition,omitempty"`
	ReturnConditionNotes string     `bson:"return_condition_notes,omitempty" json:"return_condition_notes,omitempty"`
	CreatedAt            time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time  `bson:"updated_at" json:"updated_at"`

	// Expired is derived at read time for temporary entries past their
	// expiry date. It never flips IsActive by itself.
	Expired bool `bson:"-" json:"expired,omitempty"`
}

// AssignmentLog is the append-only record of ledger transitions. The
// snapshot fields are denormalized so history survives renames.
type AssignmentLog struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	AssignmentID string    `bson:"assignment_id" json:"assignment_id"`
	Action       string    `bson:"action" json:"action"`
	ActorID      string    `bson:"actor_id" json:"actor_id"`
	AssetID      string    `bson:"asset_id" json:"asset_id"`
	AssetTag     string    `bson:"asset_tag" json:"asset_tag"`
	AssetName    string    `bson:"asset_name" json:"asset_name"`
	CategoryName string    `bson:"category_name,omitempty" json:"category_name,omitempty"`
	EmployeeID   string    `bson:"employee_id" json:"employee_id"`
	EmployeeName string    `bson:"employee_name,omitempty" json:"employee_name,omitempty"`
	Department   string    `bson:"department,omitempty" json:"department,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

type AssetRequest struct {
	ID               string     `bson:"_id,omitempty" json:"id"`
	RequesterID      string     `bson:"requester_id" json:"requester_id"`
	CategoryID       string     `bson:"category_id" json:"category_id"`
	Description      string     `bson:"description" json:"description"`
	Justification    string     `bson:"justification,omitempty" json:"justification,omitempty"`
	Priority         string     `bson:"priority" json:"priority"`
	Status           string     `bson:"status" json:"status"`
	ApprovedBy       string     `bson:"approved_by,omitempty" json:"approved_by,omitempty"`
	ApprovedAt       *time.Time `bson:"approved_at,omitempty" json:"approved_at,omitempty"`
	RejectedBy       string     `bson:"rejected_by,omitempty" json:"rejected_by,omitempty"`
	RejectedAt       *time.Time `bson:"rejected_at,omitempty" json:"rejected_at,omitempty"`
	RejectionReason  string     `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
	FulfilledBy      string     `bson:"fulfilled_by,omitempty" json:"fulfilled_by,omitempty"`
	FulfilledAt      *time.Time `bson:"fulfilled_at,omitempty" json:"fulfilled_at,omitempty"`
	FulfilledAssetID string     `bson:"fulfilled_asset_id,omitempty" json:"fulfilled_asset_id,omitempty"`
	CreatedAt        time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `bson:"updated_at" json:"updated_at"`
}

type AssetComplaint struct {
	ID              string     `bson:"_id,omitempty" json:"id"`
	AssetID         string     `bson:"asset_id" json:"asset_id"`
	EmployeeID      string     `bson:"employee_id" json:"employee_id"`
	Description     string     `bson:"description" json:"description"`
	Priority        string     `bson:"priority" json:"priority"`
	Status          string     `bson:"status" json:"status"`
	ResolvedBy      string     `bson:"resolved_by,omitempty" json:"resolved_by,omitempty"`
	ResolvedAt      *time.Time `bson:"resolved_at,omitempty" json:"resolved_at,omitempty"`
	ResolutionNotes string     `bson:"resolution_notes,omitempty" json:"resolution_notes,omitempty"`
	CreatedAt       time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `bson:"updated_at" json:"updated_at"`
}

// EmployeeInfo is the external directory record consumed read-only.
type EmployeeInfo struct {
	ID         string `bson:"_id,omitempty" json:"id"`
	Name       string `bson:"name" json:"name"`
	Department string `bson:"department,omitempty" json:"department,omitempty"`
	ManagerID  string `bson:"manager_id,omitempty" json:"manager_id,omitempty"`
	Role       string `bson:"role" json:"role"`
	Active     bool   `bson:"active" json:"active"`
}

// EmployeeRollup is the aggregator's per-employee derived view. It is
// recomputed on every read, never persisted.
type EmployeeRollup struct {
	EmployeeID     string     `json:"employee_id"`
	EmployeeName   string     `json:"employee_name"`
	Department     string     `json:"department,omitempty"`
	Active         bool       `json:"active"`
	TotalCount     int        `json:"total_count"`
	ActiveCount    int        `json:"active_count"`
	LastActionDate *time.Time `json:"last_action_date,omitempty"`
	AtRisk         bool       `json:"at_risk"`
}

// ErrorResponse for consistent error handling
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (e *ErrorDetail) Error() string {
	return e.Message
}
