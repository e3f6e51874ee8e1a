package document

import "time"

type SigningStatus string

const (
	SigningStatusPending SigningStatus = "PENDING_SIGNATURE"
	SigningStatusSigned  SigningStatus = "SIGNED"
	SigningStatusExpired SigningStatus = "EXPIRED"
)

// SignedDocument is a document sent to a worker for remote signature. The
// worker receives a 6-digit code by SMS and confirms it against the signing
// token to sign.
type SignedDocument struct {
	ID             string
	OrganizationID string
	WorkerID       string
	Name           string
	Body           string
	Status         SigningStatus
	SigningToken   string
	SigningCode    string
	ExpiresAt      time.Time
	SignedAt       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	WorkerName     *string
	WorkerPassport *string
}
