package commands

import (
	"gear-rental/internal/infra"
	"gear-rental/internal/pkg/errs"
)

var (
	ErrDomainValidation     = errs.New("domain validation error")
	ErrRentalNotFound       = errs.New("rental not found")
	ErrEquipmentNotFound    = errs.New("equipment not found")
	ErrEquipmentNotBookable = errs.New("equipment is inactive or under a manual status")
	ErrNoEquipment          = errs.New("at least one equipment item is required")
	ErrAlreadyAttached      = errs.New("equipment is already attached to this rental")
	ErrRentalNotOpen        = errs.New("rental is no longer open")
	ErrRentalChanged        = errs.New("rental was changed by another request")
	ErrVerificationExists   = errs.New("verification already captured for this rental")
	ErrInvalidSignature     = errs.New("invalid signature image")
	ErrDuplicateUser        = errs.New("user already exists")
)

// translateRepoErr maps repository kinds onto the usecase taxonomy.
func translateRepoErr(err error, op string, notFound error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case infra.IsKind(err, infra.KindConcurrentUpdate):
		return errs.Mark(err, ErrRentalChanged)
	case infra.IsKind(err, infra.KindDBFailure):
		return errs.NewStoreUnavailableError(op, err)
	default:
		return err
	}
}
