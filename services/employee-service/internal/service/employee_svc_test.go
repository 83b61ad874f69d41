package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/employee-service/internal/domain"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/employee-service/internal/events"
)

type fakeEmployeeStore struct {
	nextID    uint
	employees map[uint]*domain.Employee
}

func newFakeEmployeeStore() *fakeEmployeeStore {
	return &fakeEmployeeStore{nextID: 1, employees: map[uint]*domain.Employee{}}
}

func (s *fakeEmployeeStore) Create(_ context.Context, e *domain.Employee) error {
	for _, x := range s.employees {
		if x.EmployeeID == e.EmployeeID || x.Email == e.Email {
			return ErrConflict
		}
	}
	e.ID = s.nextID
	s.nextID++
	cp := *e
	s.employees[e.ID] = &cp
	return nil
}

func (s *fakeEmployeeStore) Update(_ context.Context, e *domain.Employee) error {
	cp := *e
	s.employees[e.ID] = &cp
	return nil
}

func (s *fakeEmployeeStore) Delete(_ context.Context, e *domain.Employee) error {
	delete(s.employees, e.ID)
	return nil
}

func (s *fakeEmployeeStore) ByID(_ context.Context, id uint) (*domain.Employee, error) {
	e, ok := s.employees[id]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	cp := *e
	return &cp, nil
}

func (s *fakeEmployeeStore) ByEmployeeID(_ context.Context, code string) (*domain.Employee, error) {
	for _, e := range s.employees {
		if e.EmployeeID == code {
			cp := *e
			return &cp, nil
		}
	}
	return nil, ErrEmployeeNotFound
}

func (s *fakeEmployeeStore) All(_ context.Context) ([]domain.Employee, error) {
	var out []domain.Employee
	for _, e := range s.employees {
		out = append(out, *e)
	}
	return out, nil
}

func (s *fakeEmployeeStore) ByDepartment(_ context.Context, departmentID uint) ([]domain.Employee, error) {
	var out []domain.Employee
	for _, e := range s.employees {
		if e.DepartmentID != nil && *e.DepartmentID == departmentID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (s *fakeEmployeeStore) ByStatus(_ context.Context, status domain.EmployeeStatus) ([]domain.Employee, error) {
	var out []domain.Employee
	for _, e := range s.employees {
		if e.Status == status {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (s *fakeEmployeeStore) SearchByName(_ context.Context, _ string) ([]domain.Employee, error) {
	return nil, nil
}

func (s *fakeEmployeeStore) ExistsByEmployeeID(_ context.Context, code string) (bool, error) {
	for _, e := range s.employees {
		if e.EmployeeID == code {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeEmployeeStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, e := range s.employees {
		if e.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeDepartmentStore struct {
	nextID      uint
	departments map[uint]*domain.Department
	employees   *fakeEmployeeStore
}

func newFakeDepartmentStore(emp *fakeEmployeeStore) *fakeDepartmentStore {
	return &fakeDepartmentStore{nextID: 1, departments: map[uint]*domain.Department{}, employees: emp}
}

func (s *fakeDepartmentStore) Create(_ context.Context, d *domain.Department) error {
	for _, x := range s.departments {
		if x.Name == d.Name {
			return ErrDuplicateDepartment
		}
	}
	d.ID = s.nextID
	s.nextID++
	cp := *d
	s.departments[d.ID] = &cp
	return nil
}

func (s *fakeDepartmentStore) Update(_ context.Context, d *domain.Department) error {
	cp := *d
	s.departments[d.ID] = &cp
	return nil
}

func (s *fakeDepartmentStore) Delete(_ context.Context, d *domain.Department) error {
	delete(s.departments, d.ID)
	return nil
}

func (s *fakeDepartmentStore) ByID(_ context.Context, id uint) (*domain.Department, error) {
	d, ok := s.departments[id]
	if !ok {
		return nil, ErrDepartmentNotFound
	}
	cp := *d
	return &cp, nil
}

func (s *fakeDepartmentStore) All(_ context.Context) ([]domain.Department, error) {
	var out []domain.Department
	for _, d := range s.departments {
		out = append(out, *d)
	}
	return out, nil
}

func (s *fakeDepartmentStore) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, d := range s.departments {
		if d.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeDepartmentStore) CountEmployees(ctx context.Context, departmentID uint) (int64, error) {
	es, _ := s.employees.ByDepartment(ctx, departmentID)
	return int64(len(es)), nil
}

type fakeSink struct {
	employeeEvents   []events.EmployeeEvent
	departmentEvents []events.DepartmentEvent
}

func (s *fakeSink) EmitEmployee(ev events.EmployeeEvent)     { s.employeeEvents = append(s.employeeEvents, ev) }
func (s *fakeSink) EmitDepartment(ev events.DepartmentEvent) { s.departmentEvents = append(s.departmentEvents, ev) }

func fixture() (*EmployeeSvc, *DepartmentSvc, *fakeEmployeeStore, *fakeDepartmentStore, *fakeSink) {
	emp := newFakeEmployeeStore()
	dept := newFakeDepartmentStore(emp)
	sink := &fakeSink{}
	return NewEmployeeSvc(emp, dept, sink), NewDepartmentSvc(dept, sink), emp, dept, sink
}

func input(code, email string) EmployeeInput {
	return EmployeeInput{
		EmployeeID: code,
		FirstName:  "Grace",
		LastName:   "Hopper",
		Email:      email,
		Position:   "Engineer",
		Salary:     120000,
		Status:     domain.StatusActive,
	}
}

func TestCreateEmitsSingleCreatedEvent(t *testing.T) {
	svc, _, _, _, sink := fixture()

	e, err := svc.Create(context.Background(), input("EMP001", "grace@example.com"), "admin")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(sink.employeeEvents) != 1 {
		t.Fatalf("got %d events, want 1", len(sink.employeeEvents))
	}
	ev := sink.employeeEvents[0]
	if ev.EventType != events.EmployeeCreated {
		t.Errorf("event type = %s", ev.EventType)
	}
	if ev.EmployeeCode != "EMP001" || ev.EmployeeID != e.ID {
		t.Errorf("event identifiers = (%s, %d)", ev.EmployeeCode, ev.EmployeeID)
	}
	if ev.PerformedBy != "admin" {
		t.Errorf("performed_by = %s", ev.PerformedBy)
	}
}

func TestCreateDuplicateIsIdempotentFailure(t *testing.T) {
	svc, _, store, _, sink := fixture()

	if _, err := svc.Create(context.Background(), input("EMP001", "grace@example.com"), "admin"); err != nil {
		t.Fatal(err)
	}

	// Every retry fails the same way and never touches stored state.
	for i := 0; i < 3; i++ {
		_, err := svc.Create(context.Background(), input("EMP001", "other@example.com"), "admin")
		if !errors.Is(err, ErrDuplicateEmployeeID) {
			t.Fatalf("attempt %d: got %v, want ErrDuplicateEmployeeID", i, err)
		}
	}
	if len(store.employees) != 1 {
		t.Errorf("store mutated by failed creates: %d employees", len(store.employees))
	}
	if len(sink.employeeEvents) != 1 {
		t.Errorf("failed creates emitted events: %d total", len(sink.employeeEvents))
	}
}

// stalePrecheckStore defers to the wrapped store but reports the email as
// free until the first create attempt, the view a writer has when a
// concurrent registration commits between its pre-check and its insert.
type stalePrecheckStore struct {
	*fakeEmployeeStore
	raced bool
}

func (s *stalePrecheckStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if !s.raced {
		return false, nil
	}
	return s.fakeEmployeeStore.ExistsByEmail(ctx, email)
}

func (s *stalePrecheckStore) Create(ctx context.Context, e *domain.Employee) error {
	s.raced = true
	return ErrConflict
}

func TestCreateLostRaceNamesConflictingField(t *testing.T) {
	emp := newFakeEmployeeStore()
	emp.employees[1] = &domain.Employee{ID: 1, EmployeeID: "EMP002", Email: "grace@example.com"}
	store := &stalePrecheckStore{fakeEmployeeStore: emp}
	svc := NewEmployeeSvc(store, newFakeDepartmentStore(emp), &fakeSink{})

	// Different employee code, same email as the concurrent writer's row.
	_, err := svc.Create(context.Background(), input("EMP001", "grace@example.com"), "admin")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("got %v, want ErrDuplicateEmail", err)
	}
}

func TestCreateWithMissingDepartment(t *testing.T) {
	svc, _, _, _, _ := fixture()

	in := input("EMP001", "grace@example.com")
	deptID := uint(42)
	in.DepartmentID = &deptID

	if _, err := svc.Create(context.Background(), in, "admin"); !errors.Is(err, ErrDepartmentNotFound) {
		t.Errorf("got %v, want ErrDepartmentNotFound", err)
	}
}

func TestUpdateEmitsUpdatedEvent(t *testing.T) {
	svc, _, _, _, sink := fixture()

	e, err := svc.Create(context.Background(), input("EMP001", "grace@example.com"), "admin")
	if err != nil {
		t.Fatal(err)
	}

	in := input("EMP001", "grace.hopper@example.com")
	in.Position = "Rear Admiral"
	if _, err := svc.Update(context.Background(), e.ID, in, "admin"); err != nil {
		t.Fatalf("update: %v", err)
	}

	last := sink.employeeEvents[len(sink.employeeEvents)-1]
	if last.EventType != events.EmployeeUpdated {
		t.Errorf("event type = %s", last.EventType)
	}
	if last.Position != "Rear Admiral" || last.Email != "grace.hopper@example.com" {
		t.Errorf("snapshot not updated: %+v", last)
	}
}

func TestDeleteEventSnapshotsPreRemovalState(t *testing.T) {
	svc, _, store, _, sink := fixture()

	e, err := svc.Create(context.Background(), input("EMP001", "grace@example.com"), "admin")
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(context.Background(), e.ID, "admin"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, ok := store.employees[e.ID]; ok {
		t.Error("employee still stored after delete")
	}
	last := sink.employeeEvents[len(sink.employeeEvents)-1]
	if last.EventType != events.EmployeeDeleted {
		t.Errorf("event type = %s", last.EventType)
	}
	if last.EmployeeCode != "EMP001" || last.Email != "grace@example.com" {
		t.Errorf("delete event lost the pre-removal snapshot: %+v", last)
	}
}

func TestDeleteDepartmentWithEmployees(t *testing.T) {
	empSvc, deptSvc, empStore, deptStore, _ := fixture()

	d, err := deptSvc.Create(context.Background(), DepartmentInput{Name: "Engineering"}, "admin")
	if err != nil {
		t.Fatal(err)
	}
	in := input("EMP001", "grace@example.com")
	in.DepartmentID = &d.ID
	if _, err := empSvc.Create(context.Background(), in, "admin"); err != nil {
		t.Fatal(err)
	}

	if err := deptSvc.Delete(context.Background(), d.ID, "admin"); !errors.Is(err, ErrDepartmentNotEmpty) {
		t.Fatalf("got %v, want ErrDepartmentNotEmpty", err)
	}

	// Both the department and its employees are unchanged.
	if _, ok := deptStore.departments[d.ID]; !ok {
		t.Error("department removed despite failing delete")
	}
	if len(empStore.employees) != 1 {
		t.Error("employees changed by failed department delete")
	}

	// Emptying the department makes the delete legal.
	es, _ := empStore.ByDepartment(context.Background(), d.ID)
	if err := empSvc.Delete(context.Background(), es[0].ID, "admin"); err != nil {
		t.Fatal(err)
	}
	if err := deptSvc.Delete(context.Background(), d.ID, "admin"); err != nil {
		t.Errorf("delete of empty department failed: %v", err)
	}
}

func TestDepartmentDuplicateName(t *testing.T) {
	_, deptSvc, _, _, _ := fixture()

	if _, err := deptSvc.Create(context.Background(), DepartmentInput{Name: "Engineering"}, "admin"); err != nil {
		t.Fatal(err)
	}
	if _, err := deptSvc.Create(context.Background(), DepartmentInput{Name: "Engineering"}, "admin"); !errors.Is(err, ErrDuplicateDepartment) {
		t.Errorf("got %v, want ErrDuplicateDepartment", err)
	}
}
