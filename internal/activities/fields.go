package activities

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fittracker/internal/clock"
	"github.com/2beens/fittracker/pkg"
)

var ErrInvalidFields = errors.New("invalid activity fields")

// ValidationError describes the first field of an activity input that could not be used.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s [%s]: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidFields
}

// Input is raw numeric form input, see pkg.Input.
type Input = pkg.Input

// Fields is the activity form: everything but the id, numbers still unparsed.
type Fields struct {
	Activity string `json:"activity"`
	Duration Input  `json:"duration"`
	Distance Input  `json:"distance"`
	Calories Input  `json:"calories"`
	Date     string `json:"date"`
	Notes    string `json:"notes"`
}

// FieldsFrom turns an existing activity back into form fields (the edit flow).
func FieldsFrom(a Activity) Fields {
	return Fields{
		Activity: a.Activity,
		Duration: Input(strconv.Itoa(a.Duration)),
		Distance: Input(strconv.FormatFloat(a.Distance, 'f', -1, 64)),
		Calories: Input(strconv.Itoa(a.Calories)),
		Date:     a.Date,
		Notes:    a.Notes,
	}
}

// ParseFields validates the form and builds an activity without an id.
// An empty date means today.
func ParseFields(f Fields, today string) (Activity, error) {
	label := strings.TrimSpace(f.Activity)
	if label == "" {
		return Activity{}, &ValidationError{Field: "activity", Value: f.Activity, Reason: "empty"}
	}

	duration, err := parseCount("duration", f.Duration)
	if err != nil {
		return Activity{}, err
	}

	distance, err := parseAmount("distance", f.Distance)
	if err != nil {
		return Activity{}, err
	}

	calories, err := parseCount("calories", f.Calories)
	if err != nil {
		return Activity{}, err
	}

	date := strings.TrimSpace(f.Date)
	if date == "" {
		date = today
	} else if _, err := time.Parse(clock.DateLayout, date); err != nil {
		return Activity{}, &ValidationError{Field: "date", Value: f.Date, Reason: "expected YYYY-MM-DD"}
	}

	return Activity{
		Activity: label,
		Duration: duration,
		Distance: distance,
		Calories: calories,
		Date:     date,
		Notes:    f.Notes,
	}, nil
}

// parseCount parses a non-negative integer; decimal text is truncated toward zero.
func parseCount(field string, in Input) (int, error) {
	raw := strings.TrimSpace(string(in))
	if raw == "" {
		return 0, &ValidationError{Field: field, Value: raw, Reason: "empty"}
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
			return 0, &ValidationError{Field: field, Value: raw, Reason: "not a number"}
		}
		n = int(f)
	}

	if n < 0 {
		return 0, &ValidationError{Field: field, Value: raw, Reason: "negative"}
	}
	return n, nil
}

func parseAmount(field string, in Input) (float64, error) {
	raw := strings.TrimSpace(string(in))
	if raw == "" {
		return 0, &ValidationError{Field: field, Value: raw, Reason: "empty"}
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &ValidationError{Field: field, Value: raw, Reason: "not a number"}
	}
	if f < 0 {
		return 0, &ValidationError{Field: field, Value: raw, Reason: "negative"}
	}
	return f, nil
}
