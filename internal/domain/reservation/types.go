package reservation

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusCancelled:
		return true
	default:
		return false
	}
}

// Billable reservations are everything that has not been cancelled;
// pending reservations count toward commission like confirmed ones.
func (s Status) IsBillable() bool {
	return s == StatusConfirmed || s == StatusPending
}
