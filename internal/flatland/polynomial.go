package flatland

// Polynomial is an immutable, leading-first polynomial: coefficient [0] is
// the highest-degree term, coefficient [len-1] is the constant term.
// Evaluating at t yields c[0]*t^(n-1) + c[1]*t^(n-2) + ... + c[n-1].
//
// A Polynomial supports at least 1,025 coefficients; there is no upper
// bound enforced here, only the lower bound on construction (at least one
// coefficient).
type Polynomial struct {
	coeffs []float64
}

// NewPolynomial copies coeffs (leading-first) into a new Polynomial. It
// returns ErrMalformedPolynomial if coeffs is empty.
func NewPolynomial(coeffs []float64) (Polynomial, error) {
	if len(coeffs) == 0 {
		return Polynomial{}, ErrMalformedPolynomial
	}
	owned := make([]float64, len(coeffs))
	copy(owned, coeffs)
	return Polynomial{coeffs: owned}, nil
}

// Evaluate computes the polynomial's value at the non-negative integer t
// using Horner's method, for both precision and performance at the
// 1,025-coefficient bound.
func (p Polynomial) Evaluate(t int64) float64 {
	ft := float64(t)
	result := p.coeffs[0]
	for _, c := range p.coeffs[1:] {
		result = result*ft + c
	}
	return result
}

// Degree returns the number of coefficients the polynomial carries.
func (p Polynomial) Degree() int {
	return len(p.coeffs)
}
