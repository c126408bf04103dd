package checkout

// Status tracks a single checkout invocation; it is never persisted.
type Status string

const (
	StatusStarted     Status = "STARTED"
	StatusValidated   Status = "VALIDATED"
	StatusReserved    Status = "RESERVED"
	StatusPersisted   Status = "PERSISTED"
	StatusCartCleared Status = "CART_CLEARED"
	StatusCompleted   Status = "COMPLETED"
	StatusAborted     Status = "ABORTED"
)

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusAborted
}

// String representation (for logging)
func (s Status) String() string {
	return string(s)
}

var transitions = map[Status][]Status{
	StatusStarted:   {StatusValidated, StatusAborted},
	StatusValidated: {StatusReserved, StatusAborted},
	// Aborting after reservation means the rollback path ran first
	StatusReserved:    {StatusPersisted, StatusAborted},
	StatusPersisted:   {StatusCartCleared},
	StatusCartCleared: {StatusCompleted},
}

func CanTransitionTo(from, to Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
