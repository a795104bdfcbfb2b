package equipment

import (
	"errors"
	"strings"
	"time"

	"gear-rental/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus   = errors.New("invalid equipment status")
	ErrNameRequired    = errors.New("equipment name is required")
	ErrNameTooLong     = errors.New("equipment name must be at most 200 characters")
	ErrTypeRequired    = errors.New("equipment type is required")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInUse           = errors.New("equipment is referenced by an active or reserved rental")
)

const maxNameLength = 200

type Equipment struct {
	id        uuid.UUID
	name      string
	kind      string
	quantity  int
	status    Status
	active    bool
	rates     RateCard
	createdAt time.Time
	updatedAt time.Time
}

func NewEquipment(name, kind string, quantity int, rates RateCard, now time.Time) (*Equipment, error) {
	e := &Equipment{
		id:        uuid.New(),
		status:    StatusAvailable,
		active:    true,
		rates:     rates,
		createdAt: now,
		updatedAt: now,
	}
	if err := e.setDetails(name, kind, quantity); err != nil {
		return nil, err
	}
	return e, nil
}

func ReconstructEquipment(
	id uuid.UUID,
	name, kind string,
	quantity int,
	status Status,
	active bool,
	rates RateCard,
	createdAt, updatedAt time.Time,
) *Equipment {
	return &Equipment{
		id:        id,
		name:      name,
		kind:      kind,
		quantity:  quantity,
		status:    status,
		active:    active,
		rates:     rates,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Changes is a partial staff edit. Nil fields are left as they are.
type Changes struct {
	Name     *string
	Type     *string
	Quantity *int
	Status   *Status
	Active   *bool
	Rates    *RateCard
}

func (e *Equipment) Apply(c Changes, now time.Time) error {
	name := patch.Coalesce(c.Name, e.name)
	kind := patch.Coalesce(c.Type, e.kind)
	quantity := patch.Coalesce(c.Quantity, e.quantity)
	if err := e.setDetails(name, kind, quantity); err != nil {
		return err
	}
	status := patch.Coalesce(c.Status, e.status)
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	e.status = status
	e.active = patch.Coalesce(c.Active, e.active)
	e.rates = patch.Coalesce(c.Rates, e.rates)
	e.updatedAt = now
	return nil
}

func (e *Equipment) setDetails(name, kind string, quantity int) error {
	name = strings.TrimSpace(name)
	kind = strings.TrimSpace(kind)
	switch {
	case name == "":
		return ErrNameRequired
	case len(name) > maxNameLength:
		return ErrNameTooLong
	case kind == "":
		return ErrTypeRequired
	case quantity < 1:
		return ErrInvalidQuantity
	}
	e.name = name
	e.kind = kind
	e.quantity = quantity
	return nil
}

func (e *Equipment) ID() uuid.UUID        { return e.id }
func (e *Equipment) Name() string         { return e.name }
func (e *Equipment) Type() string         { return e.kind }
func (e *Equipment) Quantity() int        { return e.quantity }
func (e *Equipment) Status() Status       { return e.status }
func (e *Equipment) IsActive() bool       { return e.active }
func (e *Equipment) Rates() RateCard      { return e.rates }
func (e *Equipment) CreatedAt() time.Time { return e.createdAt }
func (e *Equipment) UpdatedAt() time.Time { return e.updatedAt }
