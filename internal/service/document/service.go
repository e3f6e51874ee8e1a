package document

import (
	"archive/zip"
	"bytes"
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/auth"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/document"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/worker"
	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/sms"
)

// signingValidity is how long a worker has to sign after the SMS goes out.
const signingValidity = 72 * time.Hour

type DocumentServiceImpl struct {
	document.DocumentRepository
	worker.WorkerRepository
	smsSender sms.Sender
}

func NewDocumentService(documentRepo document.DocumentRepository, workerRepo worker.WorkerRepository, smsSender sms.Sender) document.DocumentService {
	return &DocumentServiceImpl{
		DocumentRepository: documentRepo,
		WorkerRepository:   workerRepo,
		smsSender:          smsSender,
	}
}

func organizationIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	organizationID, ok := claims["organization_id"].(string)
	if !ok || organizationID == "" {
		return "", auth.ErrOrganizationMissing
	}
	return organizationID, nil
}

func generateSigningCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate signing code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// CreateSigningRequest implements document.DocumentService.
func (s *DocumentServiceImpl) CreateSigningRequest(ctx context.Context, req document.CreateSigningRequest) (document.DocumentResponse, error) {
	if err := req.Validate(); err != nil {
		return document.DocumentResponse{}, err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return document.DocumentResponse{}, err
	}

	created, err := s.createForWorker(ctx, req.WorkerID, req.Name, req.Body, organizationID)
	if err != nil {
		return document.DocumentResponse{}, err
	}

	return toDocumentResponse(created), nil
}

// BulkSend implements document.DocumentService. Per-worker failures are
// collected in the results; the batch itself always succeeds.
func (s *DocumentServiceImpl) BulkSend(ctx context.Context, req document.BulkSigningRequest) (document.BulkSigningResponse, error) {
	if err := req.Validate(); err != nil {
		return document.BulkSigningResponse{}, err
	}

	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return document.BulkSigningResponse{}, err
	}

	results := make([]document.SigningResult, 0, len(req.WorkerIDs))
	for _, workerID := range req.WorkerIDs {
		created, err := s.createForWorker(ctx, workerID, req.Name, req.Body, organizationID)
		if err != nil {
			msg := err.Error()
			results = append(results, document.SigningResult{WorkerID: workerID, Error: &msg})
			continue
		}
		results = append(results, document.SigningResult{
			WorkerID:   workerID,
			Success:    true,
			DocumentID: &created.ID,
		})
	}

	return document.BulkSigningResponse{OK: true, Results: results}, nil
}

func (s *DocumentServiceImpl) createForWorker(ctx context.Context, workerID, name, body, organizationID string) (document.SignedDocument, error) {
	w, err := s.WorkerRepository.GetByID(ctx, workerID, organizationID)
	if err != nil {
		return document.SignedDocument{}, err
	}
	if w.Phone == nil || *w.Phone == "" {
		return document.SignedDocument{}, document.ErrWorkerHasNoPhone
	}

	code, err := generateSigningCode()
	if err != nil {
		return document.SignedDocument{}, err
	}

	d := document.SignedDocument{
		OrganizationID: organizationID,
		WorkerID:       workerID,
		Name:           name,
		Body:           body,
		Status:         document.SigningStatusPending,
		SigningToken:   uuid.NewString(),
		SigningCode:    code,
		ExpiresAt:      time.Now().UTC().Add(signingValidity),
	}

	created, err := s.DocumentRepository.Create(ctx, d)
	if err != nil {
		return document.SignedDocument{}, fmt.Errorf("failed to create signed document: %w", err)
	}

	message := fmt.Sprintf("Document %q is waiting for your signature. Your signing code is %s.", name, code)
	if err := s.smsSender.Send(ctx, *w.Phone, message); err != nil {
		return document.SignedDocument{}, fmt.Errorf("failed to send signing code: %w", err)
	}

	return created, nil
}

// Sign implements document.DocumentService.
func (s *DocumentServiceImpl) Sign(ctx context.Context, req document.SignDocumentRequest) (document.DocumentResponse, error) {
	if err := req.Validate(); err != nil {
		return document.DocumentResponse{}, err
	}

	d, err := s.DocumentRepository.GetBySigningToken(ctx, req.SigningToken)
	if err != nil {
		return document.DocumentResponse{}, err
	}

	if d.Status == document.SigningStatusSigned {
		return document.DocumentResponse{}, document.ErrAlreadySigned
	}
	if time.Now().UTC().After(d.ExpiresAt) {
		return document.DocumentResponse{}, document.ErrSigningExpired
	}
	if d.SigningCode != req.SigningCode {
		return document.DocumentResponse{}, document.ErrInvalidSigningCode
	}

	now := time.Now().UTC()
	d.Status = document.SigningStatusSigned
	d.SignedAt = &now

	if err := s.DocumentRepository.Update(ctx, d); err != nil {
		return document.DocumentResponse{}, err
	}

	return toDocumentResponse(d), nil
}

// RenderSignedPDF implements document.DocumentService.
func (s *DocumentServiceImpl) RenderSignedPDF(ctx context.Context, id string) ([]byte, error) {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	d, err := s.DocumentRepository.GetByID(ctx, id, organizationID)
	if err != nil {
		return nil, err
	}
	if d.Status != document.SigningStatusSigned {
		return nil, document.ErrDocumentNotFound
	}

	return renderPDF(d)
}

// BulkArchive implements document.DocumentService.
func (s *DocumentServiceImpl) BulkArchive(ctx context.Context, ids []string) ([]byte, error) {
	organizationID, err := organizationIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	docs, err := s.DocumentRepository.ListSignedByIDs(ctx, ids, organizationID)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, document.ErrDocumentNotFound
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, d := range docs {
		pdf, err := renderPDF(d)
		if err != nil {
			return nil, err
		}
		f, err := zw.Create(fmt.Sprintf("%s-%s.pdf", d.Name, d.ID))
		if err != nil {
			return nil, fmt.Errorf("failed to create archive entry: %w", err)
		}
		if _, err := f.Write(pdf); err != nil {
			return nil, fmt.Errorf("failed to write archive entry: %w", err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	return buf.Bytes(), nil
}

func renderPDF(d document.SignedDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, d.Name, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, d.Body, "", "L", false)
	pdf.Ln(10)

	pdf.SetFont("Arial", "I", 10)
	if d.WorkerName != nil {
		pdf.CellFormat(0, 6, fmt.Sprintf("Signed by: %s", *d.WorkerName), "", 1, "L", false, 0, "")
	}
	if d.WorkerPassport != nil {
		pdf.CellFormat(0, 6, fmt.Sprintf("Passport: %s", *d.WorkerPassport), "", 1, "L", false, 0, "")
	}
	if d.SignedAt != nil {
		pdf.CellFormat(0, 6, fmt.Sprintf("Signed at: %s", d.SignedAt.Format("2006-01-02 15:04 MST")), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func toDocumentResponse(d document.SignedDocument) document.DocumentResponse {
	resp := document.DocumentResponse{
		ID:         d.ID,
		WorkerID:   d.WorkerID,
		WorkerName: d.WorkerName,
		Name:       d.Name,
		Status:     string(d.Status),
		ExpiresAt:  d.ExpiresAt.Format(time.RFC3339),
	}
	if d.SignedAt != nil {
		signedAt := d.SignedAt.Format(time.RFC3339)
		resp.SignedAt = &signedAt
	}
	return resp
}
