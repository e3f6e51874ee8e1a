package payroll

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tals012/agriculture-hrms-sub002/internal/config"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/attendance"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/payroll"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/worker"
	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/salary"
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

// fakeSubmissionRepo keeps submissions in memory keyed by (worker, month).
type fakeSubmissionRepo struct {
	submissions map[string]payroll.MonthlySubmission
	upserts     int
	pending     []payroll.MonthlySubmission
	sent        []string
	failed      map[string]string
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{
		submissions: make(map[string]payroll.MonthlySubmission),
		failed:      make(map[string]string),
	}
}

func submissionKey(workerID, monthYear string) string {
	return workerID + "/" + monthYear
}

func (f *fakeSubmissionRepo) Upsert(ctx context.Context, s payroll.MonthlySubmission) (payroll.MonthlySubmission, error) {
	f.upserts++
	if existing, ok := f.submissions[submissionKey(s.WorkerID, s.MonthYear)]; ok {
		s.ID = existing.ID
	} else {
		s.ID = "sub-" + s.WorkerID
	}
	f.submissions[submissionKey(s.WorkerID, s.MonthYear)] = s
	return s, nil
}

func (f *fakeSubmissionRepo) GetByWorkerAndMonth(ctx context.Context, workerID, monthYear string, organizationID string) (payroll.MonthlySubmission, error) {
	s, ok := f.submissions[submissionKey(workerID, monthYear)]
	if !ok {
		return payroll.MonthlySubmission{}, payroll.ErrSubmissionNotFound
	}
	return s, nil
}

func (f *fakeSubmissionRepo) ListByMonth(ctx context.Context, monthYear string, organizationID string) ([]payroll.MonthlySubmission, error) {
	return nil, nil
}

func (f *fakeSubmissionRepo) MarkPendingSend(ctx context.Context, workerIDs []string, monthYear string, organizationID string) (int64, error) {
	return int64(len(workerIDs)), nil
}

func (f *fakeSubmissionRepo) ListPendingSend(ctx context.Context, limit int) ([]payroll.MonthlySubmission, error) {
	if len(f.pending) == 0 {
		return nil, nil
	}
	n := limit
	if n > len(f.pending) {
		n = len(f.pending)
	}
	batch := f.pending[:n]
	f.pending = f.pending[n:]
	return batch, nil
}

func (f *fakeSubmissionRepo) MarkSent(ctx context.Context, id string) error {
	f.sent = append(f.sent, id)
	return nil
}

func (f *fakeSubmissionRepo) MarkFailed(ctx context.Context, id string, sendError string) error {
	f.failed[id] = sendError
	return nil
}

// fakeAttendanceRepo serves a canned approved-attendance result.
type fakeAttendanceRepo struct {
	approved []attendance.WorkerAttendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a attendance.WorkerAttendance) (attendance.WorkerAttendance, error) {
	return a, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string, organizationID string) (attendance.WorkerAttendance, error) {
	return attendance.WorkerAttendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByWorkerDateGroup(ctx context.Context, workerID string, date time.Time, groupID string, organizationID string) (*attendance.WorkerAttendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, a attendance.WorkerAttendance) error {
	return nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter, organizationID string) ([]attendance.WorkerAttendance, int64, error) {
	return nil, 0, nil
}

func (f *fakeAttendanceRepo) ListApprovedInRange(ctx context.Context, workerIDs []string, from, to time.Time, organizationID string) ([]attendance.WorkerAttendance, error) {
	return f.approved, nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string, organizationID string) error {
	return nil
}

// fakeWorkerRepo serves canned workers by id.
type fakeWorkerRepo struct {
	workers   map[string]worker.Worker
	salaryIDs map[string]string
}

func newFakeWorkerRepo(workers ...worker.Worker) *fakeWorkerRepo {
	m := make(map[string]worker.Worker, len(workers))
	for _, w := range workers {
		m[w.ID] = w
	}
	return &fakeWorkerRepo{workers: m, salaryIDs: make(map[string]string)}
}

func (f *fakeWorkerRepo) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	return w, nil
}

func (f *fakeWorkerRepo) GetByID(ctx context.Context, id string, organizationID string) (worker.Worker, error) {
	w, ok := f.workers[id]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

func (f *fakeWorkerRepo) GetByIDs(ctx context.Context, ids []string, organizationID string) ([]worker.Worker, error) {
	return nil, nil
}

func (f *fakeWorkerRepo) List(ctx context.Context, filter worker.WorkerFilter, organizationID string) ([]worker.Worker, int64, error) {
	return nil, 0, nil
}

func (f *fakeWorkerRepo) Update(ctx context.Context, w worker.Worker) error {
	return nil
}

func (f *fakeWorkerRepo) SetSalarySystemID(ctx context.Context, id string, salarySystemID string) error {
	f.salaryIDs[id] = salarySystemID
	return nil
}

func (f *fakeWorkerRepo) Delete(ctx context.Context, id string, organizationID string) error {
	return nil
}

func floatPtr(v float64) *float64 { return &v }

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func workingDay(workerID string, day int, containers float64, baseWage string) attendance.WorkerAttendance {
	// The full daily wage carries an overtime premium on top of the base
	// component; only the base may reach the monthly totals.
	full := decimal.RequireFromString(baseWage).Add(decimal.RequireFromString("43.75"))
	return attendance.WorkerAttendance{
		WorkerID:              workerID,
		AttendanceDate:        time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC),
		Status:                attendance.StatusWorking,
		TotalContainersFilled: floatPtr(containers),
		HoursWindow100:        floatPtr(8),
		HoursWindow125:        floatPtr(1),
		HoursWindow150:        floatPtr(0),
		BaseWage:              decimalPtr(baseWage),
		DailyWage:             &full,
		ApprovalStatus:        attendance.ApprovalApproved,
	}
}

func sickDay(workerID string, day int) attendance.WorkerAttendance {
	return attendance.WorkerAttendance{
		WorkerID:       workerID,
		AttendanceDate: time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC),
		Status:         attendance.StatusSickLeave,
		ApprovalStatus: attendance.ApprovalApproved,
	}
}

func newTestService(subRepo *fakeSubmissionRepo, attRepo *fakeAttendanceRepo, workerRepo *fakeWorkerRepo, client *salary.Client, batchSize int) payroll.PayrollService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewPayrollService(subRepo, attRepo, workerRepo, client, batchSize, logger)
}

func enabledSalaryClient(baseURL string) *salary.Client {
	return salary.NewClient(config.SalaryConfig{BaseURL: baseURL, User: "u", Password: "p"})
}

func TestPayrollService_AggregateMonth_SumsPerWorker(t *testing.T) {
	subRepo := newFakeSubmissionRepo()
	attRepo := &fakeAttendanceRepo{approved: []attendance.WorkerAttendance{
		workingDay("w1", 1, 10, "300.00"),
		workingDay("w1", 2, 12, "350.50"),
		sickDay("w1", 3),
		workingDay("w2", 1, 8, "280.00"),
	}}

	svc := newTestService(subRepo, attRepo, newFakeWorkerRepo(), salary.NewClient(config.SalaryConfig{}), 20)

	results, err := svc.AggregateMonth(authedContext(t), payroll.AggregateMonthRequest{
		Month:     3,
		Year:      2026,
		WorkerIDs: []string{"w1", "w2"},
	})

	require.NoError(t, err)
	require.Len(t, results, 2)

	first := results[0]
	assert.Equal(t, "w1", first.WorkerID)
	assert.Equal(t, "03-2026", first.MonthYear)
	assert.Equal(t, 2, first.WorkedDays)
	assert.Equal(t, 1, first.SickDays)
	assert.Equal(t, 22.0, first.TotalContainers)
	assert.Equal(t, 16.0, first.HoursWindow100)
	assert.Equal(t, 2.0, first.HoursWindow125)
	assert.Equal(t, "650.50", first.TotalBaseSalary)
	assert.Equal(t, string(payroll.ApprovalPending), first.ApprovalStatus)
	assert.Equal(t, string(payroll.SendStatusNotSent), first.SendStatus)

	second := results[1]
	assert.Equal(t, "w2", second.WorkerID)
	assert.Equal(t, 1, second.WorkedDays)
	assert.Equal(t, "280.00", second.TotalBaseSalary)
}

// An 11-hour day at 30/h pays 360 in total, but only the 8 regular hours
// (240) may feed the base salary; the 125%/150% hours go out as hour totals
// for the salary system to price.
func TestPayrollService_AggregateMonth_BaseSalaryExcludesOvertimePremium(t *testing.T) {
	subRepo := newFakeSubmissionRepo()
	attRepo := &fakeAttendanceRepo{approved: []attendance.WorkerAttendance{{
		WorkerID:              "w1",
		AttendanceDate:        time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:                attendance.StatusWorking,
		TotalContainersFilled: floatPtr(13.75),
		HoursWindow100:        floatPtr(8),
		HoursWindow125:        floatPtr(2),
		HoursWindow150:        floatPtr(1),
		BaseWage:              decimalPtr("240.00"),
		DailyWage:             decimalPtr("360.00"),
		ApprovalStatus:        attendance.ApprovalApproved,
	}}}

	svc := newTestService(subRepo, attRepo, newFakeWorkerRepo(), salary.NewClient(config.SalaryConfig{}), 20)

	results, err := svc.AggregateMonth(authedContext(t), payroll.AggregateMonthRequest{
		Month:     3,
		Year:      2026,
		WorkerIDs: []string{"w1"},
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "240.00", results[0].TotalBaseSalary)
	assert.Equal(t, 2.0, results[0].HoursWindow125)
	assert.Equal(t, 1.0, results[0].HoursWindow150)
}

// Re-running the aggregation overwrites the same submission row rather than
// creating a second one.
func TestPayrollService_AggregateMonth_Idempotent(t *testing.T) {
	subRepo := newFakeSubmissionRepo()
	attRepo := &fakeAttendanceRepo{approved: []attendance.WorkerAttendance{
		workingDay("w1", 1, 10, "300.00"),
	}}

	svc := newTestService(subRepo, attRepo, newFakeWorkerRepo(), salary.NewClient(config.SalaryConfig{}), 20)
	ctx := authedContext(t)
	req := payroll.AggregateMonthRequest{Month: 3, Year: 2026, WorkerIDs: []string{"w1"}}

	first, err := svc.AggregateMonth(ctx, req)
	require.NoError(t, err)

	attRepo.approved = append(attRepo.approved, workingDay("w1", 2, 5, "150.00"))
	second, err := svc.AggregateMonth(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Len(t, subRepo.submissions, 1)
	assert.Equal(t, "450.00", second[0].TotalBaseSalary)
}

func TestPayrollService_AggregateMonth_NothingToAggregate(t *testing.T) {
	svc := newTestService(newFakeSubmissionRepo(), &fakeAttendanceRepo{}, newFakeWorkerRepo(), salary.NewClient(config.SalaryConfig{}), 20)

	_, err := svc.AggregateMonth(authedContext(t), payroll.AggregateMonthRequest{
		Month:     3,
		Year:      2026,
		WorkerIDs: []string{"w1"},
	})

	assert.ErrorIs(t, err, payroll.ErrNothingToAggregate)
}

func TestPayrollService_QueueSend_DisabledIntegration(t *testing.T) {
	svc := newTestService(newFakeSubmissionRepo(), &fakeAttendanceRepo{}, newFakeWorkerRepo(), salary.NewClient(config.SalaryConfig{}), 20)

	_, err := svc.QueueSend(authedContext(t), payroll.SendToSalaryRequest{
		Month:             3,
		Year:              2026,
		SelectedWorkerIDs: []string{"w1"},
	})

	assert.ErrorIs(t, err, payroll.ErrSalarySystemDisabled)
}

func pendingSubmission(id, workerID string) payroll.MonthlySubmission {
	return payroll.MonthlySubmission{
		ID:              id,
		OrganizationID:  testOrgID,
		WorkerID:        workerID,
		MonthYear:       "03-2026",
		TotalBaseSalary: decimal.RequireFromString("300.00"),
		Bonus:           decimal.Zero,
		HoursWindow100:  160,
		WorkedDays:      20,
		SendStatus:      payroll.SendStatusPendingSend,
	}
}

func TestPayrollService_DispatchPending_DrainsInBatches(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"data": {"ok": true}, "status": "success"}`))
	}))
	defer server.Close()

	subRepo := newFakeSubmissionRepo()
	workers := make([]worker.Worker, 0, 47)
	for i := 0; i < 47; i++ {
		id := "w" + string(rune('A'+i/26)) + string(rune('a'+i%26))
		workers = append(workers, worker.Worker{ID: id, PassportNumber: "P" + id, FirstName: "First", LastName: "Last"})
		subRepo.pending = append(subRepo.pending, pendingSubmission("sub-"+id, id))
	}

	svc := newTestService(subRepo, &fakeAttendanceRepo{}, newFakeWorkerRepo(workers...), enabledSalaryClient(server.URL), 20)

	err := svc.DispatchPending(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 47, requests)
	assert.Len(t, subRepo.sent, 47)
	assert.Empty(t, subRepo.pending)
}

// One rejected submission is marked FAILED while the rest of the batch still
// goes out.
func TestPayrollService_DispatchPending_MarksFailuresIndividually(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p salary.MonthlyPayload
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &p)
		if p.MisparTZ == "Pbad" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("invalid worker"))
			return
		}
		w.Write([]byte(`{"data": {"ok": true}, "status": "success"}`))
	}))
	defer server.Close()

	subRepo := newFakeSubmissionRepo()
	subRepo.pending = []payroll.MonthlySubmission{
		pendingSubmission("sub-good", "good"),
		pendingSubmission("sub-bad", "bad"),
		pendingSubmission("sub-other", "other"),
	}
	workerRepo := newFakeWorkerRepo(
		worker.Worker{ID: "good", PassportNumber: "Pgood", FirstName: "A", LastName: "B"},
		worker.Worker{ID: "bad", PassportNumber: "Pbad", FirstName: "C", LastName: "D"},
		worker.Worker{ID: "other", PassportNumber: "Pother", FirstName: "E", LastName: "F"},
	)

	svc := newTestService(subRepo, &fakeAttendanceRepo{}, workerRepo, enabledSalaryClient(server.URL), 20)

	err := svc.DispatchPending(context.Background())

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"sub-good", "sub-other"}, subRepo.sent)
	assert.Contains(t, subRepo.failed, "sub-bad")
	assert.Contains(t, subRepo.failed["sub-bad"], "invalid worker")
}

func TestPayrollService_DispatchPending_PrefersHebrewNames(t *testing.T) {
	var got salary.MonthlyPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.Write([]byte(`{"data": {"ok": true}, "status": "success"}`))
	}))
	defer server.Close()

	heFirst := "משה"
	heLast := "כהן"
	subRepo := newFakeSubmissionRepo()
	subRepo.pending = []payroll.MonthlySubmission{pendingSubmission("sub-w1", "w1")}
	workerRepo := newFakeWorkerRepo(worker.Worker{
		ID:             "w1",
		PassportNumber: "AB123456",
		FirstName:      "Moshe",
		LastName:       "Cohen",
		FirstNameHe:    &heFirst,
		LastNameHe:     &heLast,
	})

	svc := newTestService(subRepo, &fakeAttendanceRepo{}, workerRepo, enabledSalaryClient(server.URL), 20)

	require.NoError(t, svc.DispatchPending(context.Background()))
	assert.Equal(t, heFirst, got.ShemPrati)
	assert.Equal(t, heLast, got.ShemMishpacha)
	assert.Equal(t, "AB123456", got.MisparTZ)
	assert.Equal(t, "03-2026", got.Chodesh)
	assert.Equal(t, "300.00", got.SchumBasis)
}

func TestPayrollService_RegisterWorker(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"id": "sys-42"}, "status": "success"}`))
	}))
	defer server.Close()

	heFirst := "משה"
	heLast := "כהן"
	workerRepo := newFakeWorkerRepo(worker.Worker{
		ID:             "w1",
		PassportNumber: "AB123456",
		FirstNameHe:    &heFirst,
		LastNameHe:     &heLast,
	})

	svc := newTestService(newFakeSubmissionRepo(), &fakeAttendanceRepo{}, workerRepo, enabledSalaryClient(server.URL), 20)

	err := svc.RegisterWorker(authedContext(t), payroll.RegisterWorkerRequest{WorkerID: "w1"})

	require.NoError(t, err)
	assert.Equal(t, "sys-42", workerRepo.salaryIDs["w1"])
}

func TestPayrollService_RegisterWorker_AlreadyRegistered(t *testing.T) {
	sysID := "sys-1"
	heFirst := "משה"
	heLast := "כהן"
	workerRepo := newFakeWorkerRepo(worker.Worker{
		ID:             "w1",
		PassportNumber: "AB123456",
		FirstNameHe:    &heFirst,
		LastNameHe:     &heLast,
		SalarySystemID: &sysID,
	})

	svc := newTestService(newFakeSubmissionRepo(), &fakeAttendanceRepo{}, workerRepo, enabledSalaryClient("http://localhost:1"), 20)

	err := svc.RegisterWorker(authedContext(t), payroll.RegisterWorkerRequest{WorkerID: "w1"})

	assert.ErrorIs(t, err, worker.ErrAlreadyRegistered)
}

func TestPayrollService_RegisterWorker_MissingHebrewNames(t *testing.T) {
	workerRepo := newFakeWorkerRepo(worker.Worker{ID: "w1", PassportNumber: "AB123456"})

	svc := newTestService(newFakeSubmissionRepo(), &fakeAttendanceRepo{}, workerRepo, enabledSalaryClient("http://localhost:1"), 20)

	err := svc.RegisterWorker(authedContext(t), payroll.RegisterWorkerRequest{WorkerID: "w1"})

	assert.ErrorIs(t, err, worker.ErrMissingSalaryDetails)
}
