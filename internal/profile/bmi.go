package profile

import (
	"errors"
	"fmt"
	"math"
)

var ErrBMIUnavailable = errors.New("bmi unavailable, weight or height not set")

const (
	UnavailableLabel   = "N/A"
	UnavailableMessage = "Please set your weight and height in the profile."
)

type Category string

const (
	CategoryUnderweight Category = "Underweight"
	CategoryNormal      Category = "Normal weight"
	CategoryOverweight  Category = "Overweight"
	CategoryObesity     Category = "Obesity"
)

func CategoryOf(bmi float64) Category {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryNormal
	case bmi < 30:
		return CategoryOverweight
	default:
		return CategoryObesity
	}
}

type BMI struct {
	Value    float64
	Category Category
}

// ComputeBMI divides weight in kg by the square of height in meters.
func ComputeBMI(p Profile) (BMI, error) {
	if !isSet(p.Weight) || !isSet(p.Height) {
		return BMI{}, ErrBMIUnavailable
	}
	meters := p.Height / 100
	value := p.Weight / (meters * meters)
	return BMI{
		Value:    value,
		Category: CategoryOf(value),
	}, nil
}

func isSet(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func (b BMI) Label() string {
	return fmt.Sprintf("%.2f", b.Value)
}

func (b BMI) Rounded() float64 {
	return math.Round(b.Value*100) / 100
}

// View is the BMI as shown to the user: the value and its band, or the unavailable hint.
type View struct {
	Available  bool    `json:"available"`
	Value      float64 `json:"value,omitempty"`
	ValueLabel string  `json:"valueLabel"`
	Category   string  `json:"category"`
}

func ViewOf(p Profile) View {
	bmi, err := ComputeBMI(p)
	if err != nil {
		return View{
			ValueLabel: UnavailableLabel,
			Category:   UnavailableMessage,
		}
	}
	return View{
		Available:  true,
		Value:      bmi.Rounded(),
		ValueLabel: bmi.Label(),
		Category:   string(bmi.Category),
	}
}
