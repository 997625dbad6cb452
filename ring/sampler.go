package ring

import (
	"encoding/binary"
	"math"

	"github.com/tuneinsight/tfhe-core/utils/sampling"
)

// UniformSampler draws uniform torus Elements and Polynomials from a PRNG,
// the mask-and-secret-key-bit randomness stream required by spec §5.
type UniformSampler struct {
	prng sampling.PRNG
}

// NewUniformSampler wraps prng in a UniformSampler.
func NewUniformSampler(prng sampling.PRNG) *UniformSampler {
	return &UniformSampler{prng: prng}
}

// Read draws a single uniform torus Element: a uniform 64-bit unsigned
// integer interpreted as q-scaled data (spec §4.C step 1, §4.D step 1).
func (s *UniformSampler) Read() Element {
	var buf [8]byte
	if _, err := s.prng.Read(buf[:]); err != nil {
		// Sanity check: the PRNG abstraction's Read is not expected to fail.
		panic(err)
	}
	return Element{data: binary.LittleEndian.Uint64(buf[:])}
}

// ReadBit draws a single uniform bit, used for LWE/RLWE secret-key
// generation (spec §3: LWESecretKey/RLWESecretKey are sequences of
// uniformly random bits).
func (s *UniformSampler) ReadBit() uint64 {
	return s.Read().data & 1
}

// ReadN draws n independent uniform torus Elements.
func (s *UniformSampler) ReadN(n int) []Element {
	out := make([]Element, n)
	for i := range out {
		out[i] = s.Read()
	}
	return out
}

// ReadPolynomial draws a uniform torus Polynomial of degree n.
func (s *UniformSampler) ReadPolynomial(n int) Polynomial {
	return Polynomial{coeffs: s.ReadN(n)}
}

// ReadBits draws n independent uniform bits, used for secret-key
// generation.
func (s *UniformSampler) ReadBits(n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = s.ReadBit()
	}
	return out
}

// GaussianSampler draws discrete-Gaussian torus noise with standard
// deviation Sigma (a real in (0,1) of torus units, per spec §3). The
// algorithm samples a real x ~ N(0,Sigma^2) with the Ziggurat method and
// encodes it via FromReal(x mod 1), exactly the construction spec §4.C step
// 2 / §9 "Noise generation" describes. The Ziggurat tables (kn, wn, fn) and
// the rejection-sampling loop in normFloat64 are ported from the teacher's
// ring.GaussianSampler / ring.CRPGenerator (itself adapted from Go's
// math/rand normal.go, using a secure PRNG in place of math/rand as the
// teacher's comment there documents), rewired here to emit a torus Element
// rather than an RNS polynomial coefficient.
type GaussianSampler struct {
	prng  sampling.PRNG
	sigma float64
	buf   [8]byte
}

// NewGaussianSampler wraps prng in a GaussianSampler with standard
// deviation sigma.
func NewGaussianSampler(prng sampling.PRNG, sigma float64) *GaussianSampler {
	return &GaussianSampler{prng: prng, sigma: sigma}
}

// Read draws a single discrete-Gaussian torus Element.
func (g *GaussianSampler) Read() Element {
	x := g.normFloat64() * g.sigma
	e, _ := FromReal(math.Mod(x, 1))
	return e
}

// ReadPolynomial draws a Polynomial of degree n whose coefficients are
// independent discrete-Gaussian torus Elements (spec §4.D step 2: "each
// coefficient is an independent discrete Gaussian on T with parameter
// sigma").
func (g *GaussianSampler) ReadPolynomial(n int) Polynomial {
	coeffs := make([]Element, n)
	for i := range coeffs {
		coeffs[i] = g.Read()
	}
	return Polynomial{coeffs: coeffs}
}

const zigguratR = 3.442619855899

// normFloat64 returns a standard-normal (mean 0, stddev 1) float64, using
// the Ziggurat algorithm with a cryptographically secure byte stream in
// place of a fast non-cryptographic PRNG.
func (g *GaussianSampler) normFloat64() float64 {
	for {
		ju := g.randUint32()
		j := int32(ju & 0x7fffffff)
		sign := int32(ju >> 31)
		i := j & 0x7f

		x := float64(j) * float64(zigguratWn[i])
		if sign == 1 {
			x = -x
		}

		if uint32(j) < zigguratKn[i] {
			return x
		}

		if i == 0 {
			// Base strip: sample from the tail using the exponential
			// rejection method.
			var xx, yy float64
			for {
				xx = -math.Log(g.randFloat64()) * (1.0 / zigguratR)
				yy = -math.Log(g.randFloat64())
				if yy+yy >= xx*xx {
					break
				}
			}
			if sign == 1 {
				return -(zigguratR + xx)
			}
			return zigguratR + xx
		}

		if zigguratFn[i]+float32(g.randFloat64())*(zigguratFn[i-1]-zigguratFn[i]) < float32(math.Exp(-0.5*x*x)) {
			return x
		}
	}
}

func (g *GaussianSampler) randUint32() uint32 {
	if _, err := g.prng.Read(g.buf[:4]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint32(g.buf[:4])
}

func (g *GaussianSampler) randFloat64() float64 {
	if _, err := g.prng.Read(g.buf[:]); err != nil {
		panic(err)
	}
	return float64(binary.LittleEndian.Uint64(g.buf[:])&0x1fffffffffffff) / float64(0x1fffffffffffff)
}
