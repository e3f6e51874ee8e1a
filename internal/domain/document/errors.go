package document

import "errors"

var (
	ErrDocumentNotFound   = errors.New("document not found")
	ErrInvalidSigningCode = errors.New("signing code does not match")
	ErrSigningExpired     = errors.New("signing request has expired")
	ErrAlreadySigned      = errors.New("document has already been signed")
	ErrWorkerHasNoPhone   = errors.New("worker has no phone number for SMS delivery")
)
