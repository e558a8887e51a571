package utils

import "strconv"

// DigitoVerificador computes the verifier digit of a Chilean RUT using the
// modulo-11 algorithm. The input is the numeric body of the RUT (the part
// before the dash); the result is a single character "0".."9" or "K".
// An input of 0 yields "0".
func DigitoVerificador(run int) string {
	suma := 0
	multiplicador := 2

	for run > 0 {
		suma += (run % 10) * multiplicador
		run /= 10
		if multiplicador == 7 {
			multiplicador = 2
		} else {
			multiplicador++
		}
	}

	dv := 11 - (suma % 11)
	switch dv {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return strconv.Itoa(dv)
	}
}
