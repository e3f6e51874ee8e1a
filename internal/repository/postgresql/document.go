package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tals012/agriculture-hrms-sub002/internal/domain/document"
	"github.com/tals012/agriculture-hrms-sub002/internal/pkg/database"
)

type documentRepositoryImpl struct {
	db *database.DB
}

func NewDocumentRepository(db *database.DB) document.DocumentRepository {
	return &documentRepositoryImpl{db: db}
}

const documentColumns = `
	sd.id, sd.organization_id, sd.worker_id, sd.name, sd.body, sd.status,
	sd.signing_token, sd.signing_code, sd.expires_at, sd.signed_at,
	sd.created_at, sd.updated_at,
	w.first_name || ' ' || w.last_name AS worker_name,
	w.passport_number
`

func scanDocument(row pgx.Row) (document.SignedDocument, error) {
	var d document.SignedDocument
	err := row.Scan(
		&d.ID, &d.OrganizationID, &d.WorkerID, &d.Name, &d.Body, &d.Status,
		&d.SigningToken, &d.SigningCode, &d.ExpiresAt, &d.SignedAt,
		&d.CreatedAt, &d.UpdatedAt,
		&d.WorkerName, &d.WorkerPassport,
	)
	return d, err
}

// Create implements document.DocumentRepository.
func (r *documentRepositoryImpl) Create(ctx context.Context, d document.SignedDocument) (document.SignedDocument, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO signed_documents (
			id, organization_id, worker_id, name, body, status,
			signing_token, signing_code, expires_at, created_at, updated_at
		)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		d.OrganizationID, d.WorkerID, d.Name, d.Body, d.Status,
		d.SigningToken, d.SigningCode, d.ExpiresAt,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)

	if err != nil {
		return document.SignedDocument{}, fmt.Errorf("failed to create signed document: %w", err)
	}

	return d, nil
}

// GetByID implements document.DocumentRepository.
func (r *documentRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (document.SignedDocument, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM signed_documents sd
		LEFT JOIN workers w ON w.id = sd.worker_id
		WHERE sd.id = $1 AND sd.organization_id = $2
	`, documentColumns)

	d, err := scanDocument(q.QueryRow(ctx, query, id, organizationID))
	if errors.Is(err, pgx.ErrNoRows) {
		return document.SignedDocument{}, document.ErrDocumentNotFound
	}
	if err != nil {
		return document.SignedDocument{}, fmt.Errorf("failed to get signed document: %w", err)
	}

	return d, nil
}

// GetBySigningToken implements document.DocumentRepository.
//
// Token lookup is tenant-less: the worker follows an SMS link and carries no
// session, the token itself is the credential.
func (r *documentRepositoryImpl) GetBySigningToken(ctx context.Context, token string) (document.SignedDocument, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM signed_documents sd
		LEFT JOIN workers w ON w.id = sd.worker_id
		WHERE sd.signing_token = $1
	`, documentColumns)

	d, err := scanDocument(q.QueryRow(ctx, query, token))
	if errors.Is(err, pgx.ErrNoRows) {
		return document.SignedDocument{}, document.ErrDocumentNotFound
	}
	if err != nil {
		return document.SignedDocument{}, fmt.Errorf("failed to get signed document by token: %w", err)
	}

	return d, nil
}

// Update implements document.DocumentRepository.
func (r *documentRepositoryImpl) Update(ctx context.Context, d document.SignedDocument) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE signed_documents
		SET status = $1, signed_at = $2, updated_at = NOW()
		WHERE id = $3 AND organization_id = $4
	`

	commandTag, err := q.Exec(ctx, query, d.Status, d.SignedAt, d.ID, d.OrganizationID)
	if err != nil {
		return fmt.Errorf("failed to update signed document: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return document.ErrDocumentNotFound
	}

	return nil
}

// ListByWorker implements document.DocumentRepository.
func (r *documentRepositoryImpl) ListByWorker(ctx context.Context, workerID string, organizationID string) ([]document.SignedDocument, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM signed_documents sd
		LEFT JOIN workers w ON w.id = sd.worker_id
		WHERE sd.worker_id = $1 AND sd.organization_id = $2
		ORDER BY sd.created_at DESC
	`, documentColumns)

	rows, err := q.Query(ctx, query, workerID, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list signed documents: %w", err)
	}
	defer rows.Close()

	var list []document.SignedDocument
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan signed document: %w", err)
		}
		list = append(list, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return list, nil
}

// ListSignedByIDs implements document.DocumentRepository.
func (r *documentRepositoryImpl) ListSignedByIDs(ctx context.Context, ids []string, organizationID string) ([]document.SignedDocument, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM signed_documents sd
		LEFT JOIN workers w ON w.id = sd.worker_id
		WHERE sd.id = ANY($1) AND sd.organization_id = $2 AND sd.status = $3
		ORDER BY sd.created_at ASC
	`, documentColumns)

	rows, err := q.Query(ctx, query, ids, organizationID, document.SigningStatusSigned)
	if err != nil {
		return nil, fmt.Errorf("failed to list signed documents: %w", err)
	}
	defer rows.Close()

	var list []document.SignedDocument
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan signed document: %w", err)
		}
		list = append(list, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return list, nil
}
