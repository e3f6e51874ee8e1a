package document

import "context"

// DocumentService defines the remote signing flow.
type DocumentService interface {
	// CreateSigningRequest persists the document and sends the signing
	// code to the worker by SMS.
	CreateSigningRequest(ctx context.Context, req CreateSigningRequest) (DocumentResponse, error)

	// BulkSend creates signing requests for many workers; per-worker
	// failures are reported in the results.
	BulkSend(ctx context.Context, req BulkSigningRequest) (BulkSigningResponse, error)

	// Sign verifies token and code and marks the document SIGNED.
	Sign(ctx context.Context, req SignDocumentRequest) (DocumentResponse, error)

	// RenderSignedPDF renders the signed document as a PDF.
	RenderSignedPDF(ctx context.Context, id string) ([]byte, error)

	// BulkArchive zips the signed PDFs for the given document ids.
	BulkArchive(ctx context.Context, ids []string) ([]byte, error)
}
