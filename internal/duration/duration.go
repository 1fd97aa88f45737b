// Package duration parses the human-friendly loan duration strings accepted on
// borrow ("14", "3d", "36h", "2w") into a whole number of days.
package duration

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/dkruglov/lending-service/internal/errs"
)

var durationRe = regexp.MustCompile(`^(\d+)\s*(d|day|days|h|hr|hrs|hour|hours|w|week|weeks)?$`)

// Parse converts text into a day count. The unit defaults to days; hours round
// up to the next whole day; weeks multiply by 7. Every branch floors the result
// at one day, so "0", "0h" and "0w" all parse to 1.
func Parse(text string) (int, error) {
	m := durationRe.FindStringSubmatch(strings.ToLower(strings.TrimSpace(text)))
	if m == nil {
		return 0, errors.Wrapf(errs.ErrInvalidDuration, "%q", text)
	}

	value, err := strconv.Atoi(m[1])
	if err != nil {
		// Digits-only by the regexp; Atoi fails only on overflow.
		return 0, errors.Wrapf(errs.ErrInvalidDuration, "%q", text)
	}
	unit := m[2]

	switch {
	case unit == "" || strings.HasPrefix(unit, "d"):
		return max1(value), nil
	case strings.HasPrefix(unit, "h"):
		return max1((value + 23) / 24), nil
	default: // week
		return max1(value * 7), nil
	}
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
