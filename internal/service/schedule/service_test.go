package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tals012/agriculture-hrms-sub002/internal/domain/schedule"
)

const testOrgID = "org-1"

// fakeScheduleRepo serves schedule rows keyed by source and scope id.
type fakeScheduleRepo struct {
	rows map[string]*schedule.WorkingSchedule
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{rows: make(map[string]*schedule.WorkingSchedule)}
}

func scopeKey(source schedule.Source, scopeID *string) string {
	if scopeID == nil {
		return string(source)
	}
	return string(source) + ":" + *scopeID
}

func (f *fakeScheduleRepo) put(source schedule.Source, scopeID *string, row schedule.WorkingSchedule) {
	row.Source = source
	f.rows[scopeKey(source, scopeID)] = &row
}

func (f *fakeScheduleRepo) Create(ctx context.Context, s schedule.WorkingSchedule) (schedule.WorkingSchedule, error) {
	s.ID = "generated"
	return s, nil
}

func (f *fakeScheduleRepo) GetLatestByScope(ctx context.Context, source schedule.Source, scopeID *string, organizationID string) (*schedule.WorkingSchedule, error) {
	return f.rows[scopeKey(source, scopeID)], nil
}

func (f *fakeScheduleRepo) ListByScope(ctx context.Context, source schedule.Source, scopeID *string, organizationID string) ([]schedule.WorkingSchedule, error) {
	row := f.rows[scopeKey(source, scopeID)]
	if row == nil {
		return nil, nil
	}
	return []schedule.WorkingSchedule{*row}, nil
}

func strPtr(s string) *string { return &s }

func fullScopeRef() schedule.ScopeRef {
	return schedule.ScopeRef{
		OrganizationID: testOrgID,
		WorkerID:       strPtr("worker-1"),
		GroupID:        strPtr("group-1"),
		FieldID:        strPtr("field-1"),
		ClientID:       strPtr("client-1"),
	}
}

func TestScheduleService_Resolve_WorkerWins(t *testing.T) {
	repo := newFakeScheduleRepo()
	repo.put(schedule.SourceClient, strPtr("client-1"), schedule.WorkingSchedule{StartTimeInMinutes: 300})
	repo.put(schedule.SourceGroup, strPtr("group-1"), schedule.WorkingSchedule{StartTimeInMinutes: 400})
	repo.put(schedule.SourceWorker, strPtr("worker-1"), schedule.WorkingSchedule{StartTimeInMinutes: 500})

	svc := NewScheduleService(repo)
	resolved, err := svc.Resolve(context.Background(), fullScopeRef())

	require.NoError(t, err)
	assert.False(t, resolved.IsFallback)
	assert.Equal(t, schedule.SourceWorker, resolved.Schedule.Source)
	assert.Equal(t, 500, resolved.Schedule.StartTimeInMinutes)
}

func TestScheduleService_Resolve_FallsThroughToGroup(t *testing.T) {
	repo := newFakeScheduleRepo()
	repo.put(schedule.SourceClient, strPtr("client-1"), schedule.WorkingSchedule{StartTimeInMinutes: 300})
	repo.put(schedule.SourceGroup, strPtr("group-1"), schedule.WorkingSchedule{StartTimeInMinutes: 400})

	svc := NewScheduleService(repo)
	resolved, err := svc.Resolve(context.Background(), fullScopeRef())

	require.NoError(t, err)
	assert.Equal(t, schedule.SourceGroup, resolved.Schedule.Source)
	assert.Equal(t, 400, resolved.Schedule.StartTimeInMinutes)
}

func TestScheduleService_Resolve_FieldBeforeClient(t *testing.T) {
	repo := newFakeScheduleRepo()
	repo.put(schedule.SourceClient, strPtr("client-1"), schedule.WorkingSchedule{StartTimeInMinutes: 300})
	repo.put(schedule.SourceField, strPtr("field-1"), schedule.WorkingSchedule{StartTimeInMinutes: 350})

	svc := NewScheduleService(repo)
	resolved, err := svc.Resolve(context.Background(), fullScopeRef())

	require.NoError(t, err)
	assert.Equal(t, schedule.SourceField, resolved.Schedule.Source)
}

func TestScheduleService_Resolve_OrganizationRow(t *testing.T) {
	repo := newFakeScheduleRepo()
	repo.put(schedule.SourceOrganization, nil, schedule.WorkingSchedule{StartTimeInMinutes: 420})

	svc := NewScheduleService(repo)
	resolved, err := svc.Resolve(context.Background(), fullScopeRef())

	require.NoError(t, err)
	assert.False(t, resolved.IsFallback)
	assert.Equal(t, schedule.SourceOrganization, resolved.Schedule.Source)
	assert.Equal(t, 420, resolved.Schedule.StartTimeInMinutes)
}

func TestScheduleService_Resolve_HardcodedFallback(t *testing.T) {
	svc := NewScheduleService(newFakeScheduleRepo())
	resolved, err := svc.Resolve(context.Background(), fullScopeRef())

	require.NoError(t, err)
	assert.True(t, resolved.IsFallback)
	assert.Equal(t, schedule.DefaultStartTimeInMinutes, resolved.Schedule.StartTimeInMinutes)
	assert.Equal(t, schedule.DefaultEndTimeInMinutes, resolved.Schedule.EndTimeInMinutes)
	assert.Equal(t, schedule.DefaultBreakTimeInMinutes, resolved.Schedule.BreakTimeInMinutes)
	assert.False(t, resolved.Schedule.IsBreakTimePaid)
}

// A scope id that is present in the request but has no schedule row must not
// stop resolution from checking the broader scopes.
func TestScheduleService_Resolve_SkipsEmptyScopes(t *testing.T) {
	repo := newFakeScheduleRepo()
	repo.put(schedule.SourceClient, strPtr("client-1"), schedule.WorkingSchedule{StartTimeInMinutes: 300})

	svc := NewScheduleService(repo)
	ref := schedule.ScopeRef{
		OrganizationID: testOrgID,
		WorkerID:       strPtr("worker-without-schedule"),
		ClientID:       strPtr("client-1"),
	}

	resolved, err := svc.Resolve(context.Background(), ref)

	require.NoError(t, err)
	assert.Equal(t, schedule.SourceClient, resolved.Schedule.Source)
}
