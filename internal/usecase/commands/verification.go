package commands

import (
	"context"
	"io"
	"log/slog"

	"gear-rental/internal/domain/verification"
	"gear-rental/internal/infra"
	"gear-rental/internal/pkg/clock"
	"gear-rental/internal/pkg/errs"
	"gear-rental/internal/pkg/imaging"
	"gear-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=verification.go -destination=../../../tests/mock/commands/verification_mock.go -package=commandsmock

type CaptureVerificationInput struct {
	RentalID  uuid.UUID
	IDType    string
	IDNumber  string
	Signature io.Reader
}

type VerificationCommands interface {
	Capture(ctx context.Context, input CaptureVerificationInput) (*verification.Verification, error)
}

type verificationCommandsImpl struct {
	uow               shared.UnitOfWork
	clock             clock.Clock
	maxSignatureBytes int64
}

func NewVerificationCommands(uow shared.UnitOfWork, clock clock.Clock, maxSignatureBytes int64) VerificationCommands {
	return &verificationCommandsImpl{
		uow:               uow,
		clock:             clock,
		maxSignatureBytes: maxSignatureBytes,
	}
}

func (v *verificationCommandsImpl) Capture(ctx context.Context, input CaptureVerificationInput) (*verification.Verification, error) {
	idType, err := verification.NewIDType(input.IDType)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if input.Signature == nil {
		return nil, errs.Mark(verification.ErrSignatureRequired, ErrDomainValidation)
	}

	reads := v.uow.CommandReads()
	if _, err := reads.RentalByID(ctx, input.RentalID); err != nil {
		return nil, translateRepoErr(err, "load rental", ErrRentalNotFound)
	}
	exists, err := reads.VerificationExists(ctx, input.RentalID)
	if err != nil {
		return nil, translateRepoErr(err, "check verification", nil)
	}
	if exists {
		return nil, ErrVerificationExists
	}

	img, err := imaging.Process(input.Signature, v.maxSignatureBytes)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSignature)
	}

	now := v.clock.Now()
	signature, err := verification.NewSignatureImage(img.MIME, img.Data, img.Width, img.Height, now)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSignature)
	}
	captured, err := verification.NewVerification(input.RentalID, idType, input.IDNumber, signature.ID, now)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Verifications().CreateSignature(ctx, tx.DB(), signature); err != nil {
			return err
		}
		return tx.Verifications().Create(ctx, tx.DB(), captured)
	})
	if err != nil {
		// a concurrent capture won the unique rental_id constraint
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrVerificationExists)
		}
		return nil, translateRepoErr(err, "capture verification", nil)
	}

	slog.Info("verification captured",
		"rental_id", input.RentalID.String(),
		"verification_id", captured.ID().String(),
		"id_type", string(idType),
		"signature_bytes", len(signature.Data))
	return captured, nil
}
