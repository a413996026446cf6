package roc

import (
	"fmt"
	"sort"

	"github.com/uyouii/viterbi-plots/common"
	"github.com/uyouii/viterbi-plots/model"
	"gonum.org/v1/gonum/integrate"
)

// AUC integrates tpr over fpr with the trapezoidal rule, in the order
// given. Input is expected sorted by ascending fpr; unsorted input yields
// the signed area of the polyline. Fewer than two points give 0.
func AUC(fpr, tpr []float64) (float64, error) {
	if len(fpr) != len(tpr) {
		return 0, fmt.Errorf("%w: %d false positive rates but %d true positive rates",
			common.ErrorFormat, len(fpr), len(tpr))
	}
	if len(fpr) < 2 {
		return 0, nil
	}
	if sort.Float64sAreSorted(fpr) {
		return integrate.Trapezoidal(fpr, tpr), nil
	}
	return signedTrapezoidal(fpr, tpr), nil
}

// signedTrapezoidal is integrate.Trapezoidal without its sortedness check.
func signedTrapezoidal(x, f []float64) float64 {
	var integral float64
	for i := 1; i < len(x); i++ {
		integral += (x[i] - x[i-1]) * (f[i] + f[i-1])
	}
	return integral / 2
}

func NewRocCurve(fpr, tpr []float64) (*model.RocCurve, error) {
	auc, err := AUC(fpr, tpr)
	if err != nil {
		return nil, err
	}
	return &model.RocCurve{
		FPR:    fpr,
		TPR:    tpr,
		AUC:    auc,
		Sorted: sort.Float64sAreSorted(fpr),
	}, nil
}
