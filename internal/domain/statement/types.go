package statement

type Status string

const (
	// StatusPending: created, unpaid. The only state that can become overdue.
	StatusPending Status = "pending"
	// StatusProcessing: a payment attempt holds the statement; acts as a lock.
	StatusProcessing Status = "processing"
	// StatusPaid is terminal.
	StatusPaid Status = "paid"
	// StatusFailed is terminal for the attempt; the statement itself stays
	// payable and is treated like pending for the next explicit attempt.
	StatusFailed Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusPaid, StatusFailed:
		return true
	default:
		return false
	}
}

// Payable reports whether a new payment attempt may begin.
func (s Status) Payable() bool {
	return s == StatusPending || s == StatusFailed
}

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailed  Outcome = "failed"
)

func (o Outcome) String() string { return string(o) }

func (o Outcome) IsValid() bool {
	return o == OutcomeSuccess || o == OutcomeFailed
}
