package document

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/document"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/worker"
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

// fakeDocumentRepo keeps documents in memory keyed by id and signing token.
type fakeDocumentRepo struct {
	byID    map[string]document.SignedDocument
	byToken map[string]document.SignedDocument
	seq     int
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{
		byID:    make(map[string]document.SignedDocument),
		byToken: make(map[string]document.SignedDocument),
	}
}

func (f *fakeDocumentRepo) Create(ctx context.Context, d document.SignedDocument) (document.SignedDocument, error) {
	f.seq++
	d.ID = "doc-" + string(rune('0'+f.seq))
	f.byID[d.ID] = d
	f.byToken[d.SigningToken] = d
	return d, nil
}

func (f *fakeDocumentRepo) GetByID(ctx context.Context, id string, organizationID string) (document.SignedDocument, error) {
	d, ok := f.byID[id]
	if !ok || d.OrganizationID != organizationID {
		return document.SignedDocument{}, document.ErrDocumentNotFound
	}
	return d, nil
}

func (f *fakeDocumentRepo) GetBySigningToken(ctx context.Context, token string) (document.SignedDocument, error) {
	d, ok := f.byToken[token]
	if !ok {
		return document.SignedDocument{}, document.ErrDocumentNotFound
	}
	return d, nil
}

func (f *fakeDocumentRepo) Update(ctx context.Context, d document.SignedDocument) error {
	f.byID[d.ID] = d
	f.byToken[d.SigningToken] = d
	return nil
}

func (f *fakeDocumentRepo) ListByWorker(ctx context.Context, workerID string, organizationID string) ([]document.SignedDocument, error) {
	return nil, nil
}

func (f *fakeDocumentRepo) ListSignedByIDs(ctx context.Context, ids []string, organizationID string) ([]document.SignedDocument, error) {
	var out []document.SignedDocument
	for _, id := range ids {
		d, ok := f.byID[id]
		if ok && d.Status == document.SigningStatusSigned && d.OrganizationID == organizationID {
			out = append(out, d)
		}
	}
	return out, nil
}

// fakeWorkerRepo serves canned workers; only GetByID matters here.
type fakeWorkerRepo struct {
	workers map[string]worker.Worker
}

func newFakeWorkerRepo(workers ...worker.Worker) *fakeWorkerRepo {
	m := make(map[string]worker.Worker, len(workers))
	for _, w := range workers {
		m[w.ID] = w
	}
	return &fakeWorkerRepo{workers: m}
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
	return nil
}

func (f *fakeWorkerRepo) Delete(ctx context.Context, id string, organizationID string) error {
	return nil
}

// fakeSMSSender records outbound messages.
type fakeSMSSender struct {
	messages []string
	phones   []string
}

func (f *fakeSMSSender) Send(ctx context.Context, phone string, message string) error {
	f.phones = append(f.phones, phone)
	f.messages = append(f.messages, message)
	return nil
}

func strPtr(s string) *string { return &s }

func workerWithPhone(id, phone string) worker.Worker {
	return worker.Worker{
		ID:             id,
		OrganizationID: testOrgID,
		PassportNumber: "P-" + id,
		FirstName:      "Test",
		LastName:       "Worker",
		Phone:          strPtr(phone),
	}
}

func TestDocumentService_CreateSigningRequest_SendsCode(t *testing.T) {
	repo := newFakeDocumentRepo()
	sender := &fakeSMSSender{}
	svc := NewDocumentService(repo, newFakeWorkerRepo(workerWithPhone("w1", "0501234567")), sender)

	resp, err := svc.CreateSigningRequest(authedContext(t), document.CreateSigningRequest{
		WorkerID: "w1",
		Name:     "Employment Contract",
		Body:     "Terms and conditions.",
	})

	require.NoError(t, err)
	assert.Equal(t, string(document.SigningStatusPending), resp.Status)

	require.Len(t, sender.messages, 1)
	assert.Equal(t, "0501234567", sender.phones[0])
	assert.Contains(t, sender.messages[0], "Employment Contract")
	assert.Regexp(t, `signing code is \d{6}\.`, sender.messages[0])

	stored := repo.byID[resp.ID]
	assert.Len(t, stored.SigningCode, 6)
	assert.NotEmpty(t, stored.SigningToken)
	assert.WithinDuration(t, time.Now().UTC().Add(72*time.Hour), stored.ExpiresAt, time.Minute)
}

func TestDocumentService_CreateSigningRequest_NoPhone(t *testing.T) {
	svc := NewDocumentService(newFakeDocumentRepo(), newFakeWorkerRepo(worker.Worker{ID: "w1"}), &fakeSMSSender{})

	_, err := svc.CreateSigningRequest(authedContext(t), document.CreateSigningRequest{
		WorkerID: "w1",
		Name:     "Contract",
		Body:     "Body",
	})

	assert.ErrorIs(t, err, document.ErrWorkerHasNoPhone)
}

// One worker without a phone must not stop the rest of the bulk send.
func TestDocumentService_BulkSend_PartialFailure(t *testing.T) {
	repo := newFakeDocumentRepo()
	sender := &fakeSMSSender{}
	svc := NewDocumentService(repo, newFakeWorkerRepo(
		workerWithPhone("w1", "0501111111"),
		worker.Worker{ID: "w2"},
		workerWithPhone("w3", "0503333333"),
	), sender)

	resp, err := svc.BulkSend(authedContext(t), document.BulkSigningRequest{
		WorkerIDs: []string{"w1", "w2", "w3"},
		Name:      "Safety Notice",
		Body:      "Read carefully.",
	})

	require.NoError(t, err)
	assert.True(t, resp.OK)
	require.Len(t, resp.Results, 3)

	assert.True(t, resp.Results[0].Success)
	assert.NotNil(t, resp.Results[0].DocumentID)

	assert.False(t, resp.Results[1].Success)
	require.NotNil(t, resp.Results[1].Error)
	assert.Contains(t, *resp.Results[1].Error, "phone")

	assert.True(t, resp.Results[2].Success)
	assert.Len(t, sender.messages, 2)
}

func signFlowFixture(t *testing.T) (*fakeDocumentRepo, document.DocumentResponse, document.SignedDocument, document.DocumentService) {
	t.Helper()
	repo := newFakeDocumentRepo()
	svc := NewDocumentService(repo, newFakeWorkerRepo(workerWithPhone("w1", "0501234567")), &fakeSMSSender{})

	resp, err := svc.CreateSigningRequest(authedContext(t), document.CreateSigningRequest{
		WorkerID: "w1",
		Name:     "Contract",
		Body:     "Body text",
	})
	require.NoError(t, err)

	return repo, resp, repo.byID[resp.ID], svc
}

func TestDocumentService_Sign(t *testing.T) {
	repo, resp, stored, svc := signFlowFixture(t)

	signed, err := svc.Sign(context.Background(), document.SignDocumentRequest{
		SigningToken: stored.SigningToken,
		SigningCode:  stored.SigningCode,
	})

	require.NoError(t, err)
	assert.Equal(t, string(document.SigningStatusSigned), signed.Status)
	assert.NotNil(t, signed.SignedAt)
	assert.Equal(t, document.SigningStatusSigned, repo.byID[resp.ID].Status)
}

func TestDocumentService_Sign_WrongCode(t *testing.T) {
	_, _, stored, svc := signFlowFixture(t)

	wrongCode := "000000"
	if stored.SigningCode == wrongCode {
		wrongCode = "000001"
	}

	_, err := svc.Sign(context.Background(), document.SignDocumentRequest{
		SigningToken: stored.SigningToken,
		SigningCode:  wrongCode,
	})

	assert.ErrorIs(t, err, document.ErrInvalidSigningCode)
}

func TestDocumentService_Sign_Twice(t *testing.T) {
	_, _, stored, svc := signFlowFixture(t)

	req := document.SignDocumentRequest{
		SigningToken: stored.SigningToken,
		SigningCode:  stored.SigningCode,
	}

	_, err := svc.Sign(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Sign(context.Background(), req)
	assert.ErrorIs(t, err, document.ErrAlreadySigned)
}

func TestDocumentService_Sign_Expired(t *testing.T) {
	repo, resp, stored, svc := signFlowFixture(t)

	expired := repo.byID[resp.ID]
	expired.ExpiresAt = time.Now().UTC().Add(-time.Hour)
	require.NoError(t, repo.Update(context.Background(), expired))

	_, err := svc.Sign(context.Background(), document.SignDocumentRequest{
		SigningToken: stored.SigningToken,
		SigningCode:  stored.SigningCode,
	})

	assert.ErrorIs(t, err, document.ErrSigningExpired)
}

func TestDocumentService_Sign_UnknownToken(t *testing.T) {
	_, _, stored, svc := signFlowFixture(t)

	_, err := svc.Sign(context.Background(), document.SignDocumentRequest{
		SigningToken: "not-a-real-token",
		SigningCode:  stored.SigningCode,
	})

	assert.ErrorIs(t, err, document.ErrDocumentNotFound)
}

func TestDocumentService_RenderSignedPDF(t *testing.T) {
	_, resp, stored, svc := signFlowFixture(t)

	_, err := svc.RenderSignedPDF(authedContext(t), resp.ID)
	assert.ErrorIs(t, err, document.ErrDocumentNotFound, "unsigned document must not render")

	_, err = svc.Sign(context.Background(), document.SignDocumentRequest{
		SigningToken: stored.SigningToken,
		SigningCode:  stored.SigningCode,
	})
	require.NoError(t, err)

	pdf, err := svc.RenderSignedPDF(authedContext(t), resp.ID)
	require.NoError(t, err)
	assert.True(t, len(pdf) > 0)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestDocumentService_BulkArchive(t *testing.T) {
	_, resp, stored, svc := signFlowFixture(t)

	_, err := svc.Sign(context.Background(), document.SignDocumentRequest{
		SigningToken: stored.SigningToken,
		SigningCode:  stored.SigningCode,
	})
	require.NoError(t, err)

	archive, err := svc.BulkArchive(authedContext(t), []string{resp.ID})
	require.NoError(t, err)
	assert.Equal(t, "PK", string(archive[:2]))

	_, err = svc.BulkArchive(authedContext(t), []string{"missing"})
	assert.ErrorIs(t, err, document.ErrDocumentNotFound)
}
