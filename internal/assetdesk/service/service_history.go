package service

import (
	"context"
	"sort"
	"strings"

	"assetdesk/internal/assetdesk/model"
)

// EmployeeRollups derives the per-employee assignment view from the
// append-only log plus current ledger state. It is recomputed on every
// read; nothing here is persisted, so retroactive ledger edits cannot
// drift.
func (s *Service) EmployeeRollups(ctx context.Context, scope model.AccessScope) ([]*model.EmployeeRollup, error) {
	if err := requireCapability(scope, model.CapViewHistory); err != nil {
		return nil, err
	}

	visible := scope.VisibleEmployeeIDs()

	logs, err := s.LogRepo.FindLogs(ctx, model.LogFilter{EmployeeIDs: visible})
	if err != nil {
		return nil, err
	}
	active, err := s.Repo.FindAssignments(ctx, model.AssignmentFilter{EmployeeIDs: visible, ActiveOnly: true})
	if err != nil {
		return nil, err
	}

	rollups := make(map[string]*model.EmployeeRollup)
	get := func(employeeID string) *model.EmployeeRollup {
		r, ok := rollups[employeeID]
		if !ok {
			r = &model.EmployeeRollup{EmployeeID: employeeID}
			rollups[employeeID] = r
		}
		return r
	}

	for _, l := range logs {
		r := get(l.EmployeeID)
		if l.Action == model.LogActionAssigned {
			r.TotalCount++
		}
		if r.EmployeeName == "" {
			r.EmployeeName = l.EmployeeName
		}
		if r.Department == "" {
			r.Department = l.Department
		}
		if r.LastActionDate == nil || l.CreatedAt.After(*r.LastActionDate) {
			t := l.CreatedAt
			r.LastActionDate = &t
		}
	}
	for _, entry := range active {
		get(entry.EmployeeID).ActiveCount++
	}

	// Directory pass: current names win over log snapshots, and the
	// active flag drives the risk signal. The risk flag carries no
	// mutation authority; it only feeds the notification collaborator.
	for id, r := range rollups {
		emp, err := s.Dir.Get(ctx, id)
		if err != nil || emp == nil {
			continue
		}
		r.EmployeeName = emp.Name
		r.Department = emp.Department
		r.Active = emp.Active
		r.AtRisk = !emp.Active && r.ActiveCount > 0
	}

	out := make([]*model.EmployeeRollup, 0, len(rollups))
	for _, r := range rollups {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		a := strings.ToLower(out[i].EmployeeName)
		b := strings.ToLower(out[j].EmployeeName)
		if a == b {
			return out[i].EmployeeID < out[j].EmployeeID
		}
		return a < b
	})
	return out, nil
}
