package group

import "errors"

var (
	ErrGroupNotFound       = errors.New("group not found")
	ErrWorkerAlreadyMember = errors.New("worker is already a member of this group")
	ErrMemberNotFound      = errors.New("group member not found")
)
