package equipment

type Status string

const (
	StatusAvailable Status = "Available"
	StatusReserved  Status = "Reserved"
	StatusInRepair  Status = "In Repair"
	StatusRetired   Status = "Retired"
	StatusRented    Status = "Rented"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusInRepair, StatusRetired, StatusRented:
		return true
	default:
		return false
	}
}

// IsManualOverride reports whether derived availability must leave the status alone.
func (s Status) IsManualOverride() bool {
	return s == StatusInRepair || s == StatusRetired
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
