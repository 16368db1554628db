// Copyright (C) 2018. See AUTHORS.

package pcgrandom

import (
	"math"
	"testing"
)

func distGen(t *testing.T) *Generator {
	t.Helper()
	return newTestGen(t, VersionXSLRR128, WithSeed(IntSeed(2018)))
}

func meanAndVariance(samples []float64) (mean, variance float64) {
	for _, v := range samples {
		mean += v
	}
	mean /= float64(len(samples))
	for _, v := range samples {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(samples))
	return mean, variance
}

func TestUniform(t *testing.T) {
	g := distGen(t)
	samples := make([]float64, 20000)
	for i := range samples {
		v := Uniform(g, -2, 3)
		if v < -2 || v >= 3 {
			t.Fatalf("Uniform(-2, 3) = %v", v)
		}
		samples[i] = v
	}
	mean, variance := meanAndVariance(samples)
	t.Logf("mean:%v var:%v", mean, variance)
	// expected mean 0.5, variance 25/12
	if math.Abs(mean-0.5) > 0.05 {
		t.Fatalf("mean %v", mean)
	}
	if math.Abs(variance-25.0/12) > 0.1 {
		t.Fatalf("variance %v", variance)
	}
}

func TestNormalVariate(t *testing.T) {
	g := distGen(t)
	samples := make([]float64, 20000)
	for i := range samples {
		samples[i] = NormalVariate(g, 10, 2)
	}
	mean, variance := meanAndVariance(samples)
	t.Logf("mean:%v var:%v", mean, variance)
	if math.Abs(mean-10) > 0.1 {
		t.Fatalf("mean %v", mean)
	}
	if math.Abs(variance-4) > 0.3 {
		t.Fatalf("variance %v", variance)
	}
}

func TestGauss(t *testing.T) {
	g := distGen(t)
	gauss := NewGaussian(g)
	samples := make([]float64, 20000)
	for i := range samples {
		samples[i] = gauss.Next(0, 1)
	}
	mean, variance := meanAndVariance(samples)
	t.Logf("mean:%v var:%v", mean, variance)
	if math.Abs(mean) > 0.05 {
		t.Fatalf("mean %v", mean)
	}
	if math.Abs(variance-1) > 0.1 {
		t.Fatalf("variance %v", variance)
	}

	// the cached second draw consumes no uniforms
	before := g.GetState()
	gaussTwo := NewGaussian(g)
	gaussTwo.Next(0, 1)
	mid := g.GetState()
	gaussTwo.Next(0, 1)
	if got := g.GetState(); got != mid {
		t.Fatal("second draw consumed uniforms")
	}
	if mid == before {
		t.Fatal("first draw consumed nothing")
	}
}

func TestExpoVariate(t *testing.T) {
	g := distGen(t)
	samples := make([]float64, 20000)
	for i := range samples {
		v := ExpoVariate(g, 2.5)
		if v < 0 {
			t.Fatalf("ExpoVariate = %v", v)
		}
		samples[i] = v
	}
	mean, _ := meanAndVariance(samples)
	t.Logf("mean:%v", mean)
	if math.Abs(mean-0.4) > 0.02 {
		t.Fatalf("mean %v", mean)
	}
}

func TestTriangular(t *testing.T) {
	g := distGen(t)
	for i := 0; i < 5000; i++ {
		v := Triangular(g, 1, 5)
		if v < 1 || v > 5 {
			t.Fatalf("Triangular(1, 5) = %v", v)
		}
	}
	for i := 0; i < 5000; i++ {
		v := TriangularMode(g, 1, 5, 4.5)
		if v < 1 || v > 5 {
			t.Fatalf("TriangularMode(1, 5, 4.5) = %v", v)
		}
	}
	if v := TriangularMode(g, 3, 3, 3); v != 3 {
		t.Fatalf("degenerate triangular = %v", v)
	}
}

func TestVonMisesVariate(t *testing.T) {
	g := distGen(t)
	for _, kappa := range []float64{0, 0.5, 4} {
		for i := 0; i < 2000; i++ {
			v := VonMisesVariate(g, 1, kappa)
			if v < 0 || v >= 2*math.Pi {
				t.Fatalf("kappa %v: angle %v", kappa, v)
			}
		}
	}
}

func TestGammaVariate(t *testing.T) {
	g := distGen(t)
	// exercise all three algorithm branches
	for _, tc := range []struct{ alpha, beta float64 }{
		{0.5, 2.0},
		{1.0, 3.0},
		{4.0, 0.5},
	} {
		samples := make([]float64, 20000)
		for i := range samples {
			v, err := GammaVariate(g, tc.alpha, tc.beta)
			if err != nil {
				t.Fatal(err)
			}
			if v < 0 {
				t.Fatalf("gamma draw %v", v)
			}
			samples[i] = v
		}
		mean, _ := meanAndVariance(samples)
		want := tc.alpha * tc.beta
		t.Logf("alpha:%v beta:%v mean:%v want:%v", tc.alpha, tc.beta, mean, want)
		if math.Abs(mean-want) > 0.15*want {
			t.Fatalf("mean %v, want about %v", mean, want)
		}
	}

	if _, err := GammaVariate(g, 0, 1); err == nil {
		t.Fatal("alpha 0 accepted")
	}
	if _, err := GammaVariate(g, 1, -1); err == nil {
		t.Fatal("negative beta accepted")
	}
}

func TestBetaVariate(t *testing.T) {
	g := distGen(t)
	samples := make([]float64, 20000)
	for i := range samples {
		v, err := BetaVariate(g, 2, 5)
		if err != nil {
			t.Fatal(err)
		}
		if v < 0 || v > 1 {
			t.Fatalf("beta draw %v", v)
		}
		samples[i] = v
	}
	mean, _ := meanAndVariance(samples)
	t.Logf("mean:%v", mean)
	// expected mean 2/7
	if math.Abs(mean-2.0/7) > 0.02 {
		t.Fatalf("mean %v", mean)
	}
}

func TestParetoVariate(t *testing.T) {
	g := distGen(t)
	samples := make([]float64, 20000)
	for i := range samples {
		v := ParetoVariate(g, 3)
		if v < 1 {
			t.Fatalf("pareto draw %v", v)
		}
		samples[i] = v
	}
	mean, _ := meanAndVariance(samples)
	t.Logf("mean:%v", mean)
	// expected mean alpha/(alpha-1) = 1.5
	if math.Abs(mean-1.5) > 0.1 {
		t.Fatalf("mean %v", mean)
	}
}

func TestWeibullVariate(t *testing.T) {
	g := distGen(t)
	samples := make([]float64, 20000)
	for i := range samples {
		v := WeibullVariate(g, 1, 1.5)
		if v < 0 {
			t.Fatalf("weibull draw %v", v)
		}
		samples[i] = v
	}
	mean, _ := meanAndVariance(samples)
	// expected mean gamma(1 + 1/1.5) ~ 0.9027
	t.Logf("mean:%v", mean)
	if math.Abs(mean-0.9027) > 0.05 {
		t.Fatalf("mean %v", mean)
	}
}

func TestDistributions_Reproducible(t *testing.T) {
	a := distGen(t)
	b := distGen(t)
	for i := 0; i < 100; i++ {
		if x, y := NormalVariate(a, 0, 1), NormalVariate(b, 0, 1); x != y {
			t.Fatalf("normal draws diverged at %d", i)
		}
	}
	for i := 0; i < 100; i++ {
		x, err := GammaVariate(a, 2, 1)
		if err != nil {
			t.Fatal(err)
		}
		y, err := GammaVariate(b, 2, 1)
		if err != nil {
			t.Fatal(err)
		}
		if x != y {
			t.Fatalf("gamma draws diverged at %d", i)
		}
	}
}
