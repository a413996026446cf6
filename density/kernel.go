package density

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

type Kernel interface {
	Shape(x float64) float64
	NormalReferenceConstant() float64
}

type GaussianKernel struct {
	l2Norm                  float64
	kernelVar               float64
	order                   int
	normalReferenceConstant float64
}

func NewGaussianKernel() *GaussianKernel {
	return &GaussianKernel{
		l2Norm:    1.0 / (2.0 * math.Sqrt(math.Pi)),
		kernelVar: 1.0,
		order:     2,
	}
}

func (k *GaussianKernel) Shape(x float64) float64 {
	return distuv.UnitNormal.Prob(x)
}

// NormalReferenceConstant is C in h = C * sigma * n^(-1/5); about 1.059 for
// the Gaussian kernel.
func (k *GaussianKernel) NormalReferenceConstant() float64 {
	if k.normalReferenceConstant == 0 {
		nu := k.order
		numerator := math.Sqrt(math.Pi) * math.Pow(factorial(nu), 3) * k.l2Norm
		denom := 2.0 * float64(nu) * factorial(2*nu) * k.kernelVar * k.kernelVar
		k.normalReferenceConstant = 2 * math.Pow(numerator/denom, 1.0/float64(2*nu+1))
	}
	return k.normalReferenceConstant
}

func factorial(n int) float64 {
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result
}
