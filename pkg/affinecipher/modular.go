package affinecipher

import "fmt"

// Mod returns x mod m in [0, m) for m > 0, regardless of the sign of x.
func Mod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

// GCD returns the greatest common divisor of |a| and |b|.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// MultiplicativeInverse returns the first i in [1, modulus) with (value*i) mod modulus == 1.
//
// Moduli here are alphabet sizes, so an exhaustive scan is used rather than extended
// Euclid; it is the same search shape as key recovery. Returns ErrNoInverseExists when
// value and modulus are not coprime or when modulus <= 1.
func MultiplicativeInverse(value, modulus int) (int, error) {
	if modulus <= 1 {
		return 0, fmt.Errorf("%w: %d modulo %d", ErrNoInverseExists, value, modulus)
	}

	v := Mod(value, modulus)
	for i := 1; i < modulus; i++ {
		if (v*i)%modulus == 1 {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %d modulo %d (gcd %d)", ErrNoInverseExists, value, modulus, GCD(value, modulus))
}
