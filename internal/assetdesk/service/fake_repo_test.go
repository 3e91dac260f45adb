package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"assetdesk/internal/assetdesk/model"
	"assetdesk/internal/assetdesk/repository"
)

// fakeRepo is an in-memory Repository/LogRepository used by the
// scenario tests. Its batch methods mirror the transactional contract
// of the mongo implementation: they apply fully or not at all.
type fakeRepo struct {
	assets      map[string]*model.Asset
	categories  map[string]*model.AssetCategory
	assignments map[string]*model.AssetAssignment
	logs        []*model.AssignmentLog
	requests    map[string]*model.AssetRequest
	complaints  map[string]*model.AssetComplaint
	nextID      int

	// failCreateAssignments forces the next batch insert to fail,
	// simulating a mid-transaction abort.
	failCreateAssignments bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		assets:      make(map[string]*model.Asset),
		categories:  make(map[string]*model.AssetCategory),
		assignments: make(map[string]*model.AssetAssignment),
		requests:    make(map[string]*model.AssetRequest),
		complaints:  make(map[string]*model.AssetComplaint),
	}
}

func (f *fakeRepo) id() string {
	f.nextID++
	return fmt.Sprintf("id_%d", f.nextID)
}

func copyOf[T any](v *T) *T {
	c := *v
	return &c
}

func (f *fakeRepo) CreateAsset(_ context.Context, asset *model.Asset) error {
	for _, a := range f.assets {
		if a.Tag == asset.Tag {
			return repository.ErrDuplicate
		}
	}
	asset.ID = f.id()
	asset.CreatedAt = time.Now()
	asset.UpdatedAt = asset.CreatedAt
	f.assets[asset.ID] = copyOf(asset)
	return nil
}

func (f *fakeRepo) GetAsset(_ context.Context, id string) (*model.Asset, error) {
	a, ok := f.assets[id]
	if !ok {
		return nil, nil
	}
	return copyOf(a), nil
}

func (f *fakeRepo) UpdateAsset(_ context.Context, asset *model.Asset) error {
	if _, ok := f.assets[asset.ID]; !ok {
		return errors.New("no documents")
	}
	for _, a := range f.assets {
		if a.Tag == asset.Tag && a.ID != asset.ID {
			return repository.ErrDuplicate
		}
	}
	asset.UpdatedAt = time.Now()
	f.assets[asset.ID] = copyOf(asset)
	return nil
}

func (f *fakeRepo) FindAssets(ctx context.Context, filter model.AssetFilter) ([]*model.Asset, error) {
	var held map[string]bool
	if filter.HolderIDs != nil {
		held = make(map[string]bool)
		for _, entry := range f.assignments {
			if !entry.IsActive {
				continue
			}
			for _, id := range filter.HolderIDs {
				if entry.EmployeeID == id {
					held[entry.AssetID] = true
				}
			}
		}
	}

	var out []*model.Asset
	for _, a := range f.assets {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.CategoryID != "" && a.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Condition != "" && a.Condition != filter.Condition {
			continue
		}
		if filter.VirtualOnly && a.VM == nil {
			continue
		}
		if !filter.VirtualOnly && !filter.IncludeVirtual && a.VM != nil {
			continue
		}
		if held != nil && !held[a.ID] {
			continue
		}
		out = append(out, copyOf(a))
	}
	return out, nil
}

func (f *fakeRepo) SetAssetStatus(_ context.Context, id, status, updatedBy string) error {
	a, ok := f.assets[id]
	if !ok {
		return errors.New("no documents")
	}
	a.Status = status
	if updatedBy != "" {
		a.UpdatedBy = updatedBy
	}
	a.UpdatedAt = time.Now()
	return nil
}

func (f *fakeRepo) CreateCategory(_ context.Context, category *model.AssetCategory) error {
	for _, c := range f.categories {
		if c.NameLower == category.NameLower {
			return repository.ErrDuplicate
		}
	}
	category.ID = f.id()
	category.CreatedAt = time.Now()
	f.categories[category.ID] = copyOf(category)
	return nil
}

func (f *fakeRepo) GetCategory(_ context.Context, id string) (*model.AssetCategory, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	return copyOf(c), nil
}

func (f *fakeRepo) GetCategoryByName(_ context.Context, nameLower string) (*model.AssetCategory, error) {
	for _, c := range f.categories {
		if c.NameLower == nameLower {
			return copyOf(c), nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) FindCategories(_ context.Context) ([]*model.AssetCategory, error) {
	var out []*model.AssetCategory
	for _, c := range f.categories {
		out = append(out, copyOf(c))
	}
	return out, nil
}

func (f *fakeRepo) CreateAssignments(_ context.Context, entries []*model.AssetAssignment, logs []*model.AssignmentLog, assetID, assetStatus string) error {
	if f.failCreateAssignments {
		f.failCreateAssignments = false
		return errors.New("transaction aborted")
	}
	now := time.Now()
	for i, entry := range entries {
		entry.ID = f.id()
		entry.CreatedAt = now
		entry.UpdatedAt = now
		logs[i].AssignmentID = entry.ID
		f.assignments[entry.ID] = copyOf(entry)
	}
	f.appendLogs(logs)
	return f.SetAssetStatus(nil, assetID, assetStatus, "")
}

func (f *fakeRepo) appendLogs(logs []*model.AssignmentLog) {
	now := time.Now()
	for _, l := range logs {
		l.ID = f.id()
		if l.CreatedAt.IsZero() {
			l.CreatedAt = now
		}
		f.logs = append(f.logs, copyOf(l))
	}
}

func (f *fakeRepo) GetAssignment(_ context.Context, id string) (*model.AssetAssignment, error) {
	a, ok := f.assignments[id]
	if !ok {
		return nil, nil
	}
	return copyOf(a), nil
}

func (f *fakeRepo) FindAssignments(_ context.Context, filter model.AssignmentFilter) ([]*model.AssetAssignment, error) {
	var out []*model.AssetAssignment
	for _, a := range f.assignments {
		if filter.AssetID != "" && a.AssetID != filter.AssetID {
			continue
		}
		if filter.EmployeeID != "" && a.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.EmployeeIDs != nil {
			match := false
			for _, id := range filter.EmployeeIDs {
				if a.EmployeeID == id {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		if filter.ActiveOnly && !a.IsActive {
			continue
		}
		out = append(out, copyOf(a))
	}
	return out, nil
}

func (f *fakeRepo) CountActiveAssignments(_ context.Context, assetID string) (int64, error) {
	var n int64
	for _, a := range f.assignments {
		if a.AssetID == assetID && a.IsActive {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) UpdateAssignment(_ context.Context, entry *model.AssetAssignment) error {
	if _, ok := f.assignments[entry.ID]; !ok {
		return errors.New("no documents")
	}
	entry.UpdatedAt = time.Now()
	f.assignments[entry.ID] = copyOf(entry)
	return nil
}

func (f *fakeRepo) DeactivateAssignments(_ context.Context, ids []string, stamp repository.ReturnStamp, logs []*model.AssignmentLog, assetID, assetStatus string) error {
	for _, id := range ids {
		if _, ok := f.assignments[id]; !ok {
			return errors.New("no documents")
		}
	}
	for _, id := range ids {
		a := f.assignments[id]
		a.IsActive = false
		d := stamp.Date
		a.ReturnDate = &d
		a.ReturnCondition = stamp.Condition
		a.ReturnConditionNotes = stamp.Notes
		a.UpdatedAt = time.Now()
	}
	f.appendLogs(logs)
	return f.SetAssetStatus(nil, assetID, assetStatus, "")
}

func (f *fakeRepo) DeleteAssignment(_ context.Context, id string, log *model.AssignmentLog, assetID, assetStatus string) error {
	if _, ok := f.assignments[id]; !ok {
		return errors.New("no documents")
	}
	delete(f.assignments, id)
	f.appendLogs([]*model.AssignmentLog{log})
	return f.SetAssetStatus(nil, assetID, assetStatus, "")
}

func (f *fakeRepo) CreateRequest(_ context.Context, req *model.AssetRequest) error {
	req.ID = f.id()
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	f.requests[req.ID] = copyOf(req)
	return nil
}

func (f *fakeRepo) GetRequest(_ context.Context, id string) (*model.AssetRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, nil
	}
	return copyOf(r), nil
}

func (f *fakeRepo) UpdateRequest(_ context.Context, req *model.AssetRequest) error {
	if _, ok := f.requests[req.ID]; !ok {
		return errors.New("no documents")
	}
	req.UpdatedAt = time.Now()
	f.requests[req.ID] = copyOf(req)
	return nil
}

func (f *fakeRepo) FindRequests(_ context.Context, filter model.RequestFilter) ([]*model.AssetRequest, error) {
	var out []*model.AssetRequest
	for _, r := range f.requests {
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && r.Priority != filter.Priority {
			continue
		}
		if filter.RequesterIDs != nil {
			match := false
			for _, id := range filter.RequesterIDs {
				if r.RequesterID == id {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, copyOf(r))
	}
	return out, nil
}

func (f *fakeRepo) FulfillRequest(ctx context.Context, req *model.AssetRequest, entries []*model.AssetAssignment, logs []*model.AssignmentLog, assetID, assetStatus string) error {
	if _, ok := f.requests[req.ID]; !ok {
		return errors.New("no documents")
	}
	if err := f.CreateAssignments(ctx, entries, logs, assetID, assetStatus); err != nil {
		return err
	}
	req.UpdatedAt = time.Now()
	f.requests[req.ID] = copyOf(req)
	return nil
}

func (f *fakeRepo) CreateComplaint(_ context.Context, complaint *model.AssetComplaint) error {
	complaint.ID = f.id()
	complaint.CreatedAt = time.Now()
	complaint.UpdatedAt = complaint.CreatedAt
	f.complaints[complaint.ID] = copyOf(complaint)
	return nil
}

func (f *fakeRepo) GetComplaint(_ context.Context, id string) (*model.AssetComplaint, error) {
	c, ok := f.complaints[id]
	if !ok {
		return nil, nil
	}
	return copyOf(c), nil
}

func (f *fakeRepo) UpdateComplaint(_ context.Context, complaint *model.AssetComplaint) error {
	if _, ok := f.complaints[complaint.ID]; !ok {
		return errors.New("no documents")
	}
	complaint.UpdatedAt = time.Now()
	f.complaints[complaint.ID] = copyOf(complaint)
	return nil
}

func (f *fakeRepo) FindComplaints(_ context.Context, filter model.ComplaintFilter) ([]*model.AssetComplaint, error) {
	var out []*model.AssetComplaint
	for _, c := range f.complaints {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && c.Priority != filter.Priority {
			continue
		}
		if filter.AssetID != "" && c.AssetID != filter.AssetID {
			continue
		}
		if filter.EmployeeIDs != nil {
			match := false
			for _, id := range filter.EmployeeIDs {
				if c.EmployeeID == id {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, copyOf(c))
	}
	return out, nil
}

func (f *fakeRepo) EnsureIndexes(_ context.Context) error { return nil }

func (f *fakeRepo) FindLogs(_ context.Context, filter model.LogFilter) ([]*model.AssignmentLog, error) {
	var out []*model.AssignmentLog
	for _, l := range f.logs {
		if filter.AssetID != "" && l.AssetID != filter.AssetID {
			continue
		}
		if filter.EmployeeID != "" && l.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.EmployeeIDs != nil {
			match := false
			for _, id := range filter.EmployeeIDs {
				if l.EmployeeID == id {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, copyOf(l))
	}
	return out, nil
}

// fakeDirectory is a static employee directory.
type fakeDirectory struct {
	employees map[string]*model.EmployeeInfo
}

func newFakeDirectory(employees ...*model.EmployeeInfo) *fakeDirectory {
	d := &fakeDirectory{employees: make(map[string]*model.EmployeeInfo)}
	for _, e := range employees {
		d.employees[e.ID] = e
	}
	return d
}

func (d *fakeDirectory) Get(_ context.Context, employeeID string) (*model.EmployeeInfo, error) {
	e, ok := d.employees[employeeID]
	if !ok {
		return nil, errors.New("employee not found")
	}
	return copyOf(e), nil
}

func (d *fakeDirectory) DirectReports(_ context.Context, managerID string) ([]string, error) {
	var reports []string
	for _, e := range d.employees {
		if e.ManagerID == managerID {
			reports = append(reports, e.ID)
		}
	}
	return reports, nil
}

func (d *fakeDirectory) List(_ context.Context) ([]*model.EmployeeInfo, error) {
	var out []*model.EmployeeInfo
	for _, e := range d.employees {
		out = append(out, copyOf(e))
	}
	return out, nil
}
