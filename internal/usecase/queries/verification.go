package queries

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=verification.go -destination=../../../tests/mock/queries/verification_mock.go -package=queriesmock

type VerificationQueries interface {
	GetByRentalID(ctx context.Context, rentalID uuid.UUID) (*VerificationView, error)
	GetSignature(ctx context.Context, rentalID uuid.UUID) (*SignatureView, error)
}

type VerificationReadStore interface {
	FindByRentalID(ctx context.Context, rentalID uuid.UUID) (*VerificationView, error)
	FindSignatureByRentalID(ctx context.Context, rentalID uuid.UUID) (*SignatureView, error)
}

type verificationQueriesImpl struct {
	readStore VerificationReadStore
}

func NewVerificationQueries(readStore VerificationReadStore) VerificationQueries {
	return &verificationQueriesImpl{readStore: readStore}
}

func (q *verificationQueriesImpl) GetByRentalID(ctx context.Context, rentalID uuid.UUID) (*VerificationView, error) {
	view, err := q.readStore.FindByRentalID(ctx, rentalID)
	if err != nil {
		return nil, translateReadErr(err, "find verification", ErrVerificationNotFound)
	}
	return view, nil
}

func (q *verificationQueriesImpl) GetSignature(ctx context.Context, rentalID uuid.UUID) (*SignatureView, error) {
	view, err := q.readStore.FindSignatureByRentalID(ctx, rentalID)
	if err != nil {
		return nil, translateReadErr(err, "find signature", ErrVerificationNotFound)
	}
	return view, nil
}
