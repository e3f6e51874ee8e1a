package document

import "context"

type DocumentRepository interface {
	Create(ctx context.Context, d SignedDocument) (SignedDocument, error)
	GetByID(ctx context.Context, id string, organizationID string) (SignedDocument, error)
	GetBySigningToken(ctx context.Context, token string) (SignedDocument, error)
	Update(ctx context.Context, d SignedDocument) error
	ListByWorker(ctx context.Context, workerID string, organizationID string) ([]SignedDocument, error)
	ListSignedByIDs(ctx context.Context, ids []string, organizationID string) ([]SignedDocument, error)
}
