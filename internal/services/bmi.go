package services

import "errors"

var ErrBMIMeasurementInvalid = errors.New("height and weight out of plausible range")

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm float64, weightKg float64) (float64, error) {
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, ErrBMIMeasurementInvalid
	}
	meters := heightCm / 100
	return roundTo(weightKg/(meters*meters), 1), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "underweight"
	case bmi < 25:
		return "normal"
	case bmi < 30:
		return "overweight"
	case bmi < 35:
		return "obesity_1"
	case bmi < 40:
		return "obesity_2"
	default:
		return "obesity_3"
	}
}
