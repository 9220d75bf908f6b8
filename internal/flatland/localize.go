package flatland

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// localize estimates a single asteroid's (x, y) from three scanner
// positions and their distance readings to that asteroid via
// trilateration: subtracting pairs of circle equations centred on scanner
// a against b, and a against c, cancels the shared quadratic term and
// leaves two linear equations in the single unknown x. Rather than divide
// by hand, both equations are stacked into an over-determined system and
// solved with gonum/mat's least-squares Solve - the same idiom this
// codebase's numeric packages use for any of their linear algebra.
//
// y is then recovered from the positive root implied by scanner a's
// circle equation (asteroids live above y = 0), and the triple is
// accepted only if the resulting (x, y) is also consistent with
// scanner c's own distance reading within tolerance.
func localize(positions, distances []float64, a, b, c int, tolerance float64) (x, y float64, ok bool) {
	sa, sb, sc := positions[a], positions[b], positions[c]
	da, db, dc := distances[a], distances[b], distances[c]

	if sa == sb || sa == sc || sb == sc {
		return 0, 0, false
	}

	coeffA := mat.NewDense(2, 1, []float64{
		2 * (sb - sa),
		2 * (sc - sa),
	})
	rhs := mat.NewDense(2, 1, []float64{
		(da*da - db*db) + (sb*sb - sa*sa),
		(da*da - dc*dc) + (sc*sc - sa*sa),
	})

	var solved mat.Dense
	if err := solved.Solve(coeffA, rhs); err != nil {
		return 0, 0, false
	}
	x = solved.At(0, 0)

	underSqrt := da*da - (x-sa)*(x-sa)
	if underSqrt < 0 {
		return 0, 0, false
	}
	y = math.Sqrt(underSqrt)
	if y <= 0 {
		return 0, 0, false
	}

	checkDist := math.Sqrt((x-sc)*(x-sc) + y*y)
	if math.Abs(checkDist-dc) > tolerance {
		return 0, 0, false
	}
	return x, y, true
}
