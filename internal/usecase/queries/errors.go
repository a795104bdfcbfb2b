package queries

import (
	"gear-rental/internal/infra"
	"gear-rental/internal/pkg/errs"
)

var (
	ErrEquipmentNotFound    = errs.New("equipment not found")
	ErrRentalNotFound       = errs.New("rental not found")
	ErrCustomerNotFound     = errs.New("customer not found")
	ErrVerificationNotFound = errs.New("verification not found")
)

func translateReadErr(err error, op string, notFound error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case infra.IsKind(err, infra.KindDBFailure):
		return errs.NewStoreUnavailableError(op, err)
	default:
		return err
	}
}
