// Copyright (C) 2018. See AUTHORS.

package pcgrandom

import (
	"math"

	"github.com/pkg/errors"
)

// Distribution helpers layered on a UniformSource. The algorithms and
// constants follow CPython's random module, so the draw sequences stay
// reproducible given a reproducible source.

var (
	nvMagic = 4 * math.Exp(-0.5) / math.Sqrt2
	sgMagic = 1.0 + math.Log(4.5)
	log4    = math.Log(4.0)
)

// Uniform returns a float in [a, b) (or [a, b], depending on rounding).
func Uniform(src UniformSource, a, b float64) float64 {
	return a + (b-a)*src.Float64()
}

// Triangular returns a draw from the symmetric triangular distribution
// on [low, high].
func Triangular(src UniformSource, low, high float64) float64 {
	return triangular(src, low, high, 0.5)
}

// TriangularMode returns a draw from the triangular distribution on
// [low, high] with the given mode.
func TriangularMode(src UniformSource, low, high, mode float64) float64 {
	if high == low {
		// degenerate interval; the mode fraction is 0/0
		src.Float64()
		return low
	}
	return triangular(src, low, high, (mode-low)/(high-low))
}

func triangular(src UniformSource, low, high, c float64) float64 {
	u := src.Float64()
	if u > c {
		u = 1.0 - u
		c = 1.0 - c
		low, high = high, low
	}
	return low + (high-low)*math.Sqrt(u*c)
}

// NormalVariate returns a normal draw with mean mu and standard
// deviation sigma, by the Kinderman-Monahan ratio-of-uniforms method.
func NormalVariate(src UniformSource, mu, sigma float64) float64 {
	var z float64
	for {
		u1 := src.Float64()
		u2 := 1.0 - src.Float64()
		z = nvMagic * (u1 - 0.5) / u2
		if z*z/4.0 <= -math.Log(u2) {
			break
		}
	}
	return mu + z*sigma
}

// LogNormVariate returns a draw whose natural logarithm is normal with
// mean mu and standard deviation sigma.
func LogNormVariate(src UniformSource, mu, sigma float64) float64 {
	return math.Exp(NormalVariate(src, mu, sigma))
}

// ExpoVariate returns an exponential draw with rate lambd (mean
// 1/lambd). lambd must be nonzero.
func ExpoVariate(src UniformSource, lambd float64) float64 {
	// 1-Float64() precludes taking the log of zero.
	return -math.Log(1.0-src.Float64()) / lambd
}

// VonMisesVariate returns an angle in [0, 2*pi) from the von Mises
// distribution with mean angle mu and concentration kappa, reducing to
// a uniform angle as kappa approaches zero. Based on Fisher,
// "Statistical Analysis of Circular Data".
func VonMisesVariate(src UniformSource, mu, kappa float64) float64 {
	if kappa <= 1e-6 {
		return 2 * math.Pi * src.Float64()
	}

	s := 0.5 / kappa
	r := s + math.Sqrt(1.0+s*s)

	var z float64
	for {
		u1 := src.Float64()
		z = math.Cos(math.Pi * u1)
		d := z / (r + z)
		u2 := src.Float64()
		if u2 < 1.0-d*d || u2 <= (1.0-d)*math.Exp(d) {
			break
		}
	}

	q := 1.0 / r
	f := (q + z) / (1.0 + q*z)
	u3 := src.Float64()
	var theta float64
	if u3 > 0.5 {
		theta = math.Mod(mu+math.Acos(f), 2*math.Pi)
	} else {
		theta = math.Mod(mu-math.Acos(f), 2*math.Pi)
	}
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta
}

// GammaVariate returns a gamma draw with shape alpha and scale beta,
// both strictly positive. The mean is alpha*beta.
func GammaVariate(src UniformSource, alpha, beta float64) (float64, error) {
	if alpha <= 0.0 || beta <= 0.0 {
		return 0, errors.Wrapf(ErrRange,
			"GammaVariate requires alpha > 0 and beta > 0, got %v, %v",
			alpha, beta)
	}

	switch {
	case alpha > 1.0:
		// Cheng, "The generation of Gamma variables with non-integral
		// shape parameters", Applied Statistics 26 (1977).
		ainv := math.Sqrt(2.0*alpha - 1.0)
		bbb := alpha - log4
		ccc := alpha + ainv

		for {
			u1 := src.Float64()
			if !(1e-7 < u1 && u1 < 0.9999999) {
				continue
			}
			u2 := 1.0 - src.Float64()
			v := math.Log(u1/(1.0-u1)) / ainv
			x := alpha * math.Exp(v)
			z := u1 * u1 * u2
			r := bbb + ccc*v - x
			if r+sgMagic-4.5*z >= 0.0 || r >= math.Log(z) {
				return x * beta, nil
			}
		}

	case alpha == 1.0:
		return -math.Log(1.0-src.Float64()) * beta, nil

	default:
		// 0 < alpha < 1: ALGORITHM GS, Kennedy & Gentle.
		var x float64
		for {
			u := src.Float64()
			b := (math.E + alpha) / math.E
			p := b * u
			if p <= 1.0 {
				x = math.Pow(p, 1.0/alpha)
			} else {
				x = -math.Log((b - p) / alpha)
			}
			u1 := src.Float64()
			if p > 1.0 {
				if u1 <= math.Pow(x, alpha-1.0) {
					break
				}
			} else if u1 <= math.Exp(-x) {
				break
			}
		}
		return x * beta, nil
	}
}

// BetaVariate returns a beta draw on [0, 1] with parameters alpha and
// beta, both strictly positive.
func BetaVariate(src UniformSource, alpha, beta float64) (float64, error) {
	y, err := GammaVariate(src, alpha, 1.0)
	if err != nil {
		return 0, err
	}
	if y == 0 {
		return 0, nil
	}
	z, err := GammaVariate(src, beta, 1.0)
	if err != nil {
		return 0, err
	}
	return y / (y + z), nil
}

// ParetoVariate returns a Pareto draw with shape alpha.
func ParetoVariate(src UniformSource, alpha float64) float64 {
	u := 1.0 - src.Float64()
	return 1.0 / math.Pow(u, 1.0/alpha)
}

// WeibullVariate returns a Weibull draw with scale alpha and shape
// beta.
func WeibullVariate(src UniformSource, alpha, beta float64) float64 {
	u := 1.0 - src.Float64()
	return alpha * math.Pow(-math.Log(u), 1.0/beta)
}

// Gaussian generates normal draws by the polar method, two at a time,
// caching the second. The cache lives here rather than in the
// generator, so generator state stays exactly (multiplier, increment,
// state).
type Gaussian struct {
	src  UniformSource
	next float64
	has  bool
}

// NewGaussian returns a Gaussian drawing uniforms from src.
func NewGaussian(src UniformSource) *Gaussian {
	return &Gaussian{src: src}
}

// Next returns a normal draw with mean mu and standard deviation sigma.
// Every other call consumes no uniforms.
func (g *Gaussian) Next(mu, sigma float64) float64 {
	if g.has {
		g.has = false
		return mu + g.next*sigma
	}

	// cos(2*pi*x)*sqrt(-2*log(1-y)) and sin(2*pi*x)*sqrt(-2*log(1-y))
	// are independent standard normal variables (Lambert Meertens).
	x2pi := g.src.Float64() * 2 * math.Pi
	g2rad := math.Sqrt(-2.0 * math.Log(1.0-g.src.Float64()))
	z := math.Cos(x2pi) * g2rad
	g.next = math.Sin(x2pi) * g2rad
	g.has = true
	return mu + z*sigma
}
