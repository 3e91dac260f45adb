package model

// Repository-level filters. A nil EmployeeIDs slice means no scope
// restriction; an empty one matches nothing.

type AssetFilter struct {
	Status         string
	CategoryID     string
	Condition      string
	IncludeVirtual bool
	VirtualOnly    bool
	// HolderIDs restricts to assets currently held by these employees
	// (team scoping). Nil means unrestricted.
	HolderIDs []string
}

type AssignmentFilter struct {
	AssetID     string
	EmployeeID  string
	EmployeeIDs []string
	ActiveOnly  bool
}

type LogFilter struct {
	AssetID     string
	EmployeeID  string
	EmployeeIDs []string
}

type RequestFilter struct {
	Status       string
	Priority     string
	RequesterIDs []string
}

type ComplaintFilter struct {
	Status      string
	Priority    string
	AssetID     string
	EmployeeIDs []string
}
