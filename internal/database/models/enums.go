package models

// TimeOffType classifies a time-off entry.
type TimeOffType string

const (
	// TimeOffPTO is paid time off.
	TimeOffPTO TimeOffType = "pto"
	// TimeOffVacation is a vacation day, usually part of a multi-day group.
	TimeOffVacation TimeOffType = "vacation"
	// TimeOffRequested is a requested day (or partial day) off. When the
	// entry is not all-day, its time range states when the employee IS
	// available, not when they are off.
	TimeOffRequested TimeOffType = "requested"
)

// Normalize maps legacy alias spellings onto the canonical type. Unknown
// values pass through unchanged for IsValid to reject.
func (t TimeOffType) Normalize() TimeOffType {
	switch t {
	case "vac":
		return TimeOffVacation
	case "sick":
		return TimeOffRequested
	}
	return t
}

// IsValid checks if the time-off type is valid
func (t TimeOffType) IsValid() bool {
	switch t {
	case TimeOffPTO, TimeOffVacation, TimeOffRequested:
		return true
	}
	return false
}

// PlaceholderLabel returns the system label used when the entry is
// projected into a read-only calendar placeholder.
func (t TimeOffType) PlaceholderLabel() string {
	switch t {
	case TimeOffPTO:
		return "PTO"
	case TimeOffVacation:
		return "VAC"
	case TimeOffRequested:
		return "REQ OFF"
	}
	return ""
}

// InvertsToAvailability reports whether a partial-day entry of this type
// uses availability-window semantics (the range is when the employee is
// available) instead of off-window semantics.
func (t TimeOffType) InvertsToAvailability() bool {
	return t == TimeOffRequested
}
