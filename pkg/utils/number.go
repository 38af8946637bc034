package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundToWholeNumber arredonda para o inteiro mais próximo. Os valores
// monetários do relatório de performance são exibidos em unidades inteiras,
// então cada conversão de moeda arredonda com esta função.
func RoundToWholeNumber(f float64) float64 {
	return math.Round(f)
}
