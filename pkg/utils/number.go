package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return math.Round(f*100) / 100
}

// IntOrZero devolve o valor apontado ou zero quando ausente
func IntOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
