package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexShotType implements flexible JSON unmarshaling for the shot type field.
// NBA shot chart exports serialize it inconsistently: as a bare number (2, 3),
// a quoted number ("2", "3"), or the full label ("2PT Field Goal",
// "3PT Field Goal"). All forms coerce to 2 or 3 transparently.
type FlexShotType int

// Accepted string labels for shot types.
const (
	ShotTypeLabel2PT = "2PT Field Goal"
	ShotTypeLabel3PT = "3PT Field Goal"
)

func (t *FlexShotType) UnmarshalJSON(data []byte) error {
	// Fast path: native number
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if n != 2 && n != 3 {
			return fmt.Errorf("shot_type must be 2 or 3, got %d", n)
		}
		*t = FlexShotType(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("shot_type: %w", err)
	}

	switch strings.TrimSpace(s) {
	case "2", ShotTypeLabel2PT:
		*t = 2
	case "3", ShotTypeLabel3PT:
		*t = 3
	default:
		return fmt.Errorf("shot_type must be %q or %q, got %q", ShotTypeLabel2PT, ShotTypeLabel3PT, s)
	}
	return nil
}

func (t FlexShotType) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(t))), nil
}

// IsThree reports whether the shot is worth three points.
func (t FlexShotType) IsThree() bool {
	return t == 3
}

// String returns the numeric form used for fingerprinting and display.
func (t FlexShotType) String() string {
	return strconv.Itoa(int(t))
}

// Valid reports whether the value is one of the two legal shot types.
func (t FlexShotType) Valid() bool {
	return t == 2 || t == 3
}
