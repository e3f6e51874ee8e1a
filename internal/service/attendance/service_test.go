package attendance

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tals012/agriculture-hrms-sub002/internal/domain/attendance"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/group"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/pricing"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/schedule"
)

const testOrgID = "org-1"

func authedContext(t *testing.T) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"organization_id": testOrgID,
		"user_id":         "user-1",
		"type":            "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

// fakeAttendanceRepo stores records in memory. Submissions run concurrently
// so access is guarded.
type fakeAttendanceRepo struct {
	mu      sync.Mutex
	records map[string]attendance.WorkerAttendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.WorkerAttendance)}
}

func recordKey(workerID string, date time.Time, groupID string) string {
	return workerID + "/" + date.Format("2006-01-02") + "/" + groupID
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a attendance.WorkerAttendance) (attendance.WorkerAttendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a.ID = "att-" + a.WorkerID
	f.records[recordKey(a.WorkerID, a.AttendanceDate, a.GroupID)] = a
	return a, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string, organizationID string) (attendance.WorkerAttendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.records {
		if a.ID == id {
			return a, nil
		}
	}
	return attendance.WorkerAttendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByWorkerDateGroup(ctx context.Context, workerID string, date time.Time, groupID string, organizationID string) (*attendance.WorkerAttendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.records[recordKey(workerID, date, groupID)]; ok {
		return &a, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, a attendance.WorkerAttendance) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[recordKey(a.WorkerID, a.AttendanceDate, a.GroupID)] = a
	return nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter, organizationID string) ([]attendance.WorkerAttendance, int64, error) {
	return nil, 0, nil
}

func (f *fakeAttendanceRepo) ListApprovedInRange(ctx context.Context, workerIDs []string, from, to time.Time, organizationID string) ([]attendance.WorkerAttendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string, organizationID string) error {
	return nil
}

func (f *fakeAttendanceRepo) get(workerID string, date time.Time, groupID string) (attendance.WorkerAttendance, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.records[recordKey(workerID, date, groupID)]
	return a, ok
}

// fakeGroupRepo serves one canned group with a fixed member list.
type fakeGroupRepo struct {
	group   group.Group
	members []string
}

func (f *fakeGroupRepo) Create(ctx context.Context, g group.Group) (group.Group, error) {
	return g, nil
}

func (f *fakeGroupRepo) GetByID(ctx context.Context, id string, organizationID string) (group.Group, error) {
	if id != f.group.ID {
		return group.Group{}, group.ErrGroupNotFound
	}
	return f.group, nil
}

func (f *fakeGroupRepo) List(ctx context.Context, filter group.GroupFilter, organizationID string) ([]group.Group, int64, error) {
	return nil, 0, nil
}

func (f *fakeGroupRepo) Update(ctx context.Context, g group.Group) error {
	return nil
}

func (f *fakeGroupRepo) Delete(ctx context.Context, id string, organizationID string) error {
	return nil
}

func (f *fakeGroupRepo) AddMembers(ctx context.Context, groupID string, workerIDs []string) error {
	return nil
}

func (f *fakeGroupRepo) RemoveMember(ctx context.Context, groupID string, workerID string) error {
	return nil
}

func (f *fakeGroupRepo) GetMembers(ctx context.Context, groupID string) ([]group.GroupMember, error) {
	return nil, nil
}

func (f *fakeGroupRepo) GetActiveMemberWorkerIDs(ctx context.Context, groupID string) ([]string, error) {
	return f.members, nil
}

// fakeCombinationRepo serves a single pricing combination, or not-found.
type fakeCombinationRepo struct {
	combo    pricing.Combination
	hasCombo bool
}

func (f *fakeCombinationRepo) Create(ctx context.Context, c pricing.Combination) (pricing.Combination, error) {
	return c, nil
}

func (f *fakeCombinationRepo) GetByID(ctx context.Context, id string, organizationID string) (pricing.Combination, error) {
	if !f.hasCombo {
		return pricing.Combination{}, pricing.ErrCombinationNotFound
	}
	return f.combo, nil
}

func (f *fakeCombinationRepo) GetByKey(ctx context.Context, clientID, speciesID, harvestTypeID string, organizationID string) (pricing.Combination, error) {
	if !f.hasCombo {
		return pricing.Combination{}, pricing.ErrCombinationNotFound
	}
	return f.combo, nil
}

func (f *fakeCombinationRepo) GetByClientID(ctx context.Context, clientID string, organizationID string) ([]pricing.Combination, error) {
	return nil, nil
}

func (f *fakeCombinationRepo) Update(ctx context.Context, req pricing.UpdateCombinationRequest, organizationID string) error {
	return nil
}

func (f *fakeCombinationRepo) Delete(ctx context.Context, id string, organizationID string) error {
	return nil
}

// stubScheduleService always resolves to the same schedule.
type stubScheduleService struct {
	resolved schedule.ResolvedSchedule
}

func (s *stubScheduleService) Generate(ctx context.Context, req schedule.GenerateScheduleRequest) (schedule.ScheduleResponse, error) {
	return schedule.ScheduleResponse{}, nil
}

func (s *stubScheduleService) Resolve(ctx context.Context, ref schedule.ScopeRef) (schedule.ResolvedSchedule, error) {
	return s.resolved, nil
}

func floatPtr(v float64) *float64 { return &v }

func testGroup() group.Group {
	return group.Group{
		ID:             "group-1",
		OrganizationID: testOrgID,
		ClientID:       "client-1",
		Name:           "Crew A",
		IsActive:       true,
	}
}

func testCombination() pricing.Combination {
	return pricing.Combination{
		ID:             "combo-1",
		OrganizationID: testOrgID,
		ClientID:       "client-1",
		SpeciesID:      "species-1",
		HarvestTypeID:  "harvest-1",
		Price:          decimal.NewFromInt(240),
		ContainerNorm:  10,
	}
}

func newSubmissionService(attRepo *fakeAttendanceRepo, members []string, hasCombo bool) attendance.AttendanceService {
	groupRepo := &fakeGroupRepo{group: testGroup(), members: members}
	comboRepo := &fakeCombinationRepo{combo: testCombination(), hasCombo: hasCombo}
	schedSvc := &stubScheduleService{resolved: schedule.ResolvedSchedule{
		Schedule: schedule.FallbackSchedule(testOrgID),
	}}
	return NewAttendanceService(attRepo, groupRepo, comboRepo, schedSvc)
}

func submissionRequest(entries ...attendance.WorkerEntry) attendance.GroupSubmissionRequest {
	return attendance.GroupSubmissionRequest{
		GroupID:       "group-1",
		Date:          "2026-03-15",
		SpeciesID:     "species-1",
		HarvestTypeID: "harvest-1",
		Entries:       entries,
	}
}

func TestAttendanceService_SubmitGroupAttendance_ComputesWage(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newSubmissionService(attRepo, []string{"w1"}, true)

	resp, err := svc.SubmitGroupAttendance(authedContext(t), submissionRequest(
		attendance.WorkerEntry{WorkerID: "w1", Status: "WORKING", ContainersFilled: floatPtr(15)},
	))

	require.NoError(t, err)
	assert.True(t, resp.OK)
	require.Len(t, resp.Results, 1)
	assert.True(t, resp.Results[0].Success)

	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	record, ok := attRepo.get("w1", date, "group-1")
	require.True(t, ok)

	// 15 containers / norm 10 = 12 hours: 8 at 100%, 2 at 125%, 2 at 150%.
	// Rate is 240/8 = 30/h, so the day pays 240 + 75 + 90 = 405, of which
	// only the 240 base component feeds the monthly base salary.
	assert.Equal(t, 12.0, *record.TotalHoursWorked)
	assert.Equal(t, 8.0, *record.HoursWindow100)
	assert.Equal(t, 2.0, *record.HoursWindow125)
	assert.Equal(t, 2.0, *record.HoursWindow150)
	assert.Equal(t, "240.00", record.BaseWage.StringFixed(2))
	assert.Equal(t, "405.00", record.DailyWage.StringFixed(2))

	assert.Equal(t, schedule.DefaultStartTimeInMinutes, *record.StartTimeInMinutes)
	// End time tracks hours worked: 08:00 start plus 12 hours.
	assert.Equal(t, schedule.DefaultStartTimeInMinutes+12*60, *record.EndTimeInMinutes)
	assert.Equal(t, schedule.DefaultBreakTimeInMinutes, *record.BreakTimeInMinutes)
	assert.Equal(t, attendance.ApprovalPending, record.ApprovalStatus)
}

// One bad entry never rejects the rest of the crew.
func TestAttendanceService_SubmitGroupAttendance_PartialFailure(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newSubmissionService(attRepo, []string{"w1", "w2", "w3"}, true)

	resp, err := svc.SubmitGroupAttendance(authedContext(t), submissionRequest(
		attendance.WorkerEntry{WorkerID: "w1", Status: "WORKING", ContainersFilled: floatPtr(10)},
		attendance.WorkerEntry{WorkerID: "outsider", Status: "WORKING", ContainersFilled: floatPtr(10)},
		attendance.WorkerEntry{WorkerID: "w3", Status: "SICK_LEAVE"},
	))

	require.NoError(t, err)
	assert.True(t, resp.OK)
	require.Len(t, resp.Results, 3)

	assert.True(t, resp.Results[0].Success)
	assert.NotNil(t, resp.Results[0].AttendanceID)

	assert.False(t, resp.Results[1].Success)
	require.NotNil(t, resp.Results[1].Error)
	assert.Contains(t, *resp.Results[1].Error, "not an active member")

	assert.True(t, resp.Results[2].Success)
}

func TestAttendanceService_SubmitGroupAttendance_Duplicate(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newSubmissionService(attRepo, []string{"w1"}, true)
	ctx := authedContext(t)
	req := submissionRequest(
		attendance.WorkerEntry{WorkerID: "w1", Status: "WORKING", ContainersFilled: floatPtr(10)},
	)

	first, err := svc.SubmitGroupAttendance(ctx, req)
	require.NoError(t, err)
	assert.True(t, first.Results[0].Success)

	second, err := svc.SubmitGroupAttendance(ctx, req)
	require.NoError(t, err)
	assert.True(t, second.OK)
	assert.False(t, second.Results[0].Success)
	assert.Contains(t, *second.Results[0].Error, "already submitted")
}

// Missing pricing only blocks WORKING entries; non-working statuses have no
// wage to compute.
func TestAttendanceService_SubmitGroupAttendance_MissingPricing(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newSubmissionService(attRepo, []string{"w1", "w2"}, false)

	resp, err := svc.SubmitGroupAttendance(authedContext(t), submissionRequest(
		attendance.WorkerEntry{WorkerID: "w1", Status: "WORKING", ContainersFilled: floatPtr(10)},
		attendance.WorkerEntry{WorkerID: "w2", Status: "DAY_OFF"},
	))

	require.NoError(t, err)
	assert.True(t, resp.OK)

	assert.False(t, resp.Results[0].Success)
	require.NotNil(t, resp.Results[0].Error)
	assert.Contains(t, *resp.Results[0].Error, "pricing combination")

	assert.True(t, resp.Results[1].Success)
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	record, ok := attRepo.get("w2", date, "group-1")
	require.True(t, ok)
	assert.Nil(t, record.DailyWage)
	assert.Nil(t, record.TotalHoursWorked)
}

// Containers reported against a non-working status are discarded: the stored
// row keeps every container and hour field null.
func TestAttendanceService_SubmitGroupAttendance_AbsentIgnoresContainers(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newSubmissionService(attRepo, []string{"w1"}, true)

	resp, err := svc.SubmitGroupAttendance(authedContext(t), submissionRequest(
		attendance.WorkerEntry{WorkerID: "w1", Status: "ABSENT", ContainersFilled: floatPtr(9)},
	))

	require.NoError(t, err)
	assert.True(t, resp.OK)
	require.Len(t, resp.Results, 1)
	assert.True(t, resp.Results[0].Success)

	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	record, ok := attRepo.get("w1", date, "group-1")
	require.True(t, ok)
	assert.Equal(t, attendance.StatusAbsent, record.Status)
	assert.Nil(t, record.TotalContainersFilled)
	assert.Nil(t, record.TotalHoursWorked)
	assert.Nil(t, record.HoursWindow100)
	assert.Nil(t, record.HoursWindow125)
	assert.Nil(t, record.HoursWindow150)
	assert.Nil(t, record.BaseWage)
	assert.Nil(t, record.DailyWage)
	assert.Nil(t, record.StartTimeInMinutes)
	assert.Nil(t, record.EndTimeInMinutes)
}

func TestAttendanceService_SubmitGroupAttendance_UnknownGroup(t *testing.T) {
	svc := newSubmissionService(newFakeAttendanceRepo(), []string{"w1"}, true)

	req := submissionRequest(
		attendance.WorkerEntry{WorkerID: "w1", Status: "WORKING", ContainersFilled: floatPtr(10)},
	)
	req.GroupID = "missing-group"

	_, err := svc.SubmitGroupAttendance(authedContext(t), req)
	assert.ErrorIs(t, err, group.ErrGroupNotFound)
}

func TestAttendanceService_ApproveAttendance(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newSubmissionService(attRepo, []string{"w1"}, true)
	ctx := authedContext(t)

	resp, err := svc.SubmitGroupAttendance(ctx, submissionRequest(
		attendance.WorkerEntry{WorkerID: "w1", Status: "WORKING", ContainersFilled: floatPtr(10)},
	))
	require.NoError(t, err)
	id := *resp.Results[0].AttendanceID

	approved, err := svc.ApproveAttendance(ctx, attendance.ApproveAttendanceRequest{ID: id})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.ApprovalApproved), approved.ApprovalStatus)

	_, err = svc.ApproveAttendance(ctx, attendance.ApproveAttendanceRequest{ID: id})
	assert.ErrorIs(t, err, attendance.ErrAlreadyProcessed)
}

func TestAttendanceService_CorrectAttendance_RecomputesEndTime(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newSubmissionService(attRepo, []string{"w1"}, true)
	ctx := authedContext(t)

	resp, err := svc.SubmitGroupAttendance(ctx, submissionRequest(
		attendance.WorkerEntry{WorkerID: "w1", Status: "WORKING", ContainersFilled: floatPtr(15)},
	))
	require.NoError(t, err)
	id := *resp.Results[0].AttendanceID

	corrected, err := svc.CorrectAttendance(ctx, attendance.CorrectAttendanceRequest{
		ID:               id,
		ContainersFilled: floatPtr(5),
	})
	require.NoError(t, err)

	// 5 containers / norm 10 = 4 hours; the end time follows the corrected
	// hours down from the original 12-hour day.
	assert.Equal(t, 4.0, *corrected.TotalHoursWorked)
	assert.Equal(t, schedule.DefaultStartTimeInMinutes+4*60, *corrected.EndTimeInMinutes)
	assert.Equal(t, "120.00", *corrected.DailyWage)

	// An explicit end time wins over the derived one.
	override := 700
	corrected, err = svc.CorrectAttendance(ctx, attendance.CorrectAttendanceRequest{
		ID:               id,
		ContainersFilled: floatPtr(5),
		EndTimeInMinutes: &override,
	})
	require.NoError(t, err)
	assert.Equal(t, override, *corrected.EndTimeInMinutes)
}

func TestAttendanceService_RejectAttendance(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newSubmissionService(attRepo, []string{"w1"}, true)
	ctx := authedContext(t)

	resp, err := svc.SubmitGroupAttendance(ctx, submissionRequest(
		attendance.WorkerEntry{WorkerID: "w1", Status: "WORKING", ContainersFilled: floatPtr(10)},
	))
	require.NoError(t, err)
	id := *resp.Results[0].AttendanceID

	rejected, err := svc.RejectAttendance(ctx, attendance.RejectAttendanceRequest{
		ID:              id,
		RejectionReason: "container count disputed",
	})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.ApprovalRejected), rejected.ApprovalStatus)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "container count disputed", *rejected.RejectionReason)
}
