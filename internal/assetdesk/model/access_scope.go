package model

// AccessScope is the resolved visibility and capability set of an acting
// principal. It is a plain value passed explicitly into every service
// call; nothing reads permissions from ambient state.
type AccessScope struct {
	ActorID        string
	FullVisibility bool
	// TeamFilter lists the employee ids visible to the actor when
	// FullVisibility is false. It always contains the actor itself.
	TeamFilter   []string
	Capabilities map[string]bool
}

// CanSee reports whether records belonging to employeeID are visible.
func (s AccessScope) CanSee(employeeID string) bool {
	if s.FullVisibility {
		return true
	}
	for _, id := range s.TeamFilter {
		if id == employeeID {
			return true
		}
	}
	return false
}

func (s AccessScope) Allows(capability string) bool {
	return s.Capabilities[capability]
}

// VisibleEmployeeIDs returns nil for full visibility (no filter) or the
// team filter otherwise. Repository list queries treat nil as "all".
func (s AccessScope) VisibleEmployeeIDs() []string {
	if s.FullVisibility {
		return nil
	}
	if len(s.TeamFilter) == 0 {
		// Conservative: an empty team still sees itself.
		return []string{s.ActorID}
	}
	return s.TeamFilter
}
