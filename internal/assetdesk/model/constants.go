package model

// Asset conditions
const (
	ConditionExcellent = "excellent"
	ConditionGood      = "good"
	ConditionFair      = "fair"
	ConditionPoor      = "poor"
	ConditionDamaged   = "damaged"
)

var ValidConditions = map[string]bool{
	ConditionExcellent: true,
	ConditionGood:      true,
	ConditionFair:      true,
	ConditionPoor:      true,
	ConditionDamaged:   true,
}

// Asset statuses
const (
	StatusAvailable   = "available"
	StatusAssigned    = "assigned"
	StatusMaintenance = "maintenance"
	StatusRetired     = "retired"
	StatusLost        = "lost"
	StatusArchived    = "archived"
)

var ValidStatuses = map[string]bool{
	StatusAvailable:   true,
	StatusAssigned:    true,
	StatusMaintenance: true,
	StatusRetired:     true,
	StatusLost:        true,
	StatusArchived:    true,
}

// StickyStatuses persist until an explicit transition; the ledger's
// available/assigned flip never touches them.
var StickyStatuses = map[string]bool{
	StatusMaintenance: true,
	StatusRetired:     true,
	StatusLost:        true,
	StatusArchived:    true,
}

// Statuses that block new assignments entirely.
var UnassignableStatuses = map[string]bool{
	StatusRetired:  true,
	StatusLost:     true,
	StatusArchived: true,
}

// Assignment types
const (
	AssignmentPermanent = "permanent"
	AssignmentTemporary = "temporary"
)

// Assignment log actions
const (
	LogActionAssigned   = "assigned"
	LogActionReturned   = "returned"
	LogActionUnassigned = "unassigned"
)

// Request statuses
const (
	RequestPending   = "pending"
	RequestApproved  = "approved"
	RequestRejected  = "rejected"
	RequestFulfilled = "fulfilled"
)

// Complaint statuses
const (
	ComplaintOpen       = "open"
	ComplaintInProgress = "in_progress"
	ComplaintResolved   = "resolved"
	ComplaintClosed     = "closed"
)

// Priorities shared by requests and complaints
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

var ValidPriorities = map[string]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
	PriorityUrgent: true,
}

// Directory roles
const (
	RoleHRAdmin  = "hr_admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// Capabilities resolved from the directory role
const (
	CapManageAssets      = "assets.manage"
	CapManageCategories  = "categories.manage"
	CapManageAssignments = "assignments.manage"
	CapDeleteAssignments = "assignments.delete"
	CapApproveRequests   = "requests.approve"
	CapResolveComplaints = "complaints.resolve"
	CapViewHistory       = "history.view"
)
