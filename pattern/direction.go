package pattern

// Direction is the order in which a line is read while looking for a digit.
type Direction int

const (
	// Forward reads a line left to right and finds its first digit.
	Forward Direction = iota
	// Backward reads a line right to left and finds its last digit.
	Backward
)

// String returns "Forward", "Backward" or "Unknown".
func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	default:
		return "Unknown"
	}
}
