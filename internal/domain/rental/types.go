package rental

type Status string

const (
	StatusReserved  Status = "Reserved"
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReserved, StatusActive, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Blocking statuses are the ones that hold equipment.
func (s Status) IsBlocking() bool {
	return s == StatusReserved || s == StatusActive
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// BlockingStatuses lists, in a stable order, the statuses that hold equipment.
func BlockingStatuses() []Status {
	return []Status{StatusReserved, StatusActive}
}

// TerminalStatuses lists the statuses excluded from conflict checks.
func TerminalStatuses() []Status {
	return []Status{StatusCancelled, StatusCompleted}
}
