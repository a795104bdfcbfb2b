package shared

import (
	"context"
	"time"

	"gear-rental/internal/domain/customer"
	"gear-rental/internal/domain/equipment"
	"gear-rental/internal/domain/rental"
	"gear-rental/internal/domain/user"
	"gear-rental/internal/domain/verification"
	"gear-rental/internal/infra/dbq"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db dbq.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db dbq.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Rentals() RentalRepository
	Equipment() EquipmentRepository
	Customers() CustomerRepository
	Cancellations() CancellationRepository
	Verifications() VerificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() dbq.DBTX
}

// CommandReads returns write-side domain objects. Inside a transaction they
// see the transaction's own writes.
type CommandReads interface {
	RentalByID(ctx context.Context, id uuid.UUID) (*rental.Rental, error)
	EquipmentByID(ctx context.Context, id uuid.UUID) (*equipment.Equipment, error)
	// LockEquipment blocks concurrent attaches to the same item until the
	// transaction ends. Outside a transaction the lock is released at once.
	LockEquipment(ctx context.Context, id uuid.UUID) (*equipment.Equipment, error)
	// BookingsForEquipment returns bookings whose stored status is neither
	// Cancelled nor Completed.
	BookingsForEquipment(ctx context.Context, equipmentID uuid.UUID) ([]equipment.Booking, error)
	CountEquipmentRentals(ctx context.Context, equipmentID uuid.UUID) (int64, error)
	// OpenRentals returns every rental whose stored status is neither Cancelled
	// nor Completed, unknown statuses included.
	OpenRentals(ctx context.Context) ([]rental.Record, error)
	VerificationExists(ctx context.Context, rentalID uuid.UUID) (bool, error)
}

type RentalRepository interface {
	Create(ctx context.Context, tx dbq.DBTX, r *rental.Rental) error
	AttachEquipment(ctx context.Context, tx dbq.DBTX, rentalID, equipmentID uuid.UUID, at time.Time) error
	// TransitionStatus writes to only when the stored status is still from.
	TransitionStatus(ctx context.Context, tx dbq.DBTX, id uuid.UUID, from, to rental.Status, at time.Time) (bool, error)
	// SaveState writes status and void amount when the stored status is still from.
	// It fails with KindConcurrentUpdate otherwise.
	SaveState(ctx context.Context, tx dbq.DBTX, r *rental.Rental, from rental.Status) error
}

type EquipmentRepository interface {
	Create(ctx context.Context, tx dbq.DBTX, e *equipment.Equipment) error
	Update(ctx context.Context, tx dbq.DBTX, e *equipment.Equipment) error
	Deactivate(ctx context.Context, tx dbq.DBTX, id uuid.UUID, at time.Time) error
	Delete(ctx context.Context, tx dbq.DBTX, id uuid.UUID) error
}

type CustomerRepository interface {
	// Upsert inserts c or updates the stored customer with the same email.
	// It returns the stored customer and whether it was newly created.
	Upsert(ctx context.Context, tx dbq.DBTX, c *customer.Customer) (*customer.Customer, bool, error)
}

type CancellationRepository interface {
	Create(ctx context.Context, tx dbq.DBTX, c *rental.Cancellation) error
}

type VerificationRepository interface {
	CreateSignature(ctx context.Context, tx dbq.DBTX, img *verification.SignatureImage) error
	Create(ctx context.Context, tx dbq.DBTX, v *verification.Verification) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx dbq.DBTX, userID uuid.UUID) error
	Create(ctx context.Context, tx dbq.DBTX, u *user.User) (uuid.UUID, error)
}
