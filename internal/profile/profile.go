package profile

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/2beens/fittracker/pkg"
)

var ErrInvalidProfile = errors.New("invalid profile")

type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s [%s]: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidProfile
}

// Profile is the single user profile. Zero weight or height means unset.
type Profile struct {
	Name   string  `json:"name,omitempty"`
	Weight float64 `json:"weight,omitempty"`
	Height float64 `json:"height,omitempty"`
}

func (p Profile) Validate() error {
	if err := checkMeasure("weight", p.Weight); err != nil {
		return err
	}
	return checkMeasure("height", p.Height)
}

// Fields is the profile form. Empty weight or height leaves it unset.
type Fields struct {
	Name   string    `json:"name"`
	Weight pkg.Input `json:"weight"`
	Height pkg.Input `json:"height"`
}

func FieldsFrom(p Profile) Fields {
	f := Fields{Name: p.Name}
	if p.Weight > 0 {
		f.Weight = pkg.Input(strconv.FormatFloat(p.Weight, 'f', -1, 64))
	}
	if p.Height > 0 {
		f.Height = pkg.Input(strconv.FormatFloat(p.Height, 'f', -1, 64))
	}
	return f
}

func ParseFields(f Fields) (Profile, error) {
	weight, err := parseMeasure("weight", f.Weight)
	if err != nil {
		return Profile{}, err
	}
	height, err := parseMeasure("height", f.Height)
	if err != nil {
		return Profile{}, err
	}
	return Profile{
		Name:   strings.TrimSpace(f.Name),
		Weight: weight,
		Height: height,
	}, nil
}

func parseMeasure(field string, in pkg.Input) (float64, error) {
	raw := in.Trimmed()
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ValidationError{Field: field, Value: raw, Reason: "not a number"}
	}
	if err := checkMeasure(field, v); err != nil {
		return 0, err
	}
	return v, nil
}

func checkMeasure(field string, v float64) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return &ValidationError{Field: field, Value: fmt.Sprint(v), Reason: "not a finite number"}
	case v < 0:
		return &ValidationError{Field: field, Value: fmt.Sprint(v), Reason: "negative"}
	}
	return nil
}
