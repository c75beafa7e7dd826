package models

import (
	"math"
	"sort"
)

// stump is a depth-one regression tree fitted to the logistic residuals.
type stump struct {
	Feature   int
	Threshold float64
	LeftVal   float64
	RightVal  float64
}

// GradientBoosting is a boosted ensemble of stumps under logistic loss. It
// fills the XGBoost slot of the dashboard's demo artifacts.
type GradientBoosting struct {
	NEstimators        int
	LearningRate       float64
	MinSamples         int
	MaxThresholdsPerFe int
	Init               float64
	Trees              []stump
	Gains              []float64
}

func NewGradientBoosting() *GradientBoosting {
	return &GradientBoosting{NEstimators: 80, LearningRate: 0.1, MinSamples: 10, MaxThresholdsPerFe: 32}
}

func (gb *GradientBoosting) Name() string { return "Gradient Boosting" }

func sigmoid(z float64) float64 { return 1.0 / (1.0 + math.Exp(-z)) }

func (gb *GradientBoosting) Fit(X [][]float64, y []int) error {
	n := len(X)
	if n == 0 {
		return ErrEmptyTrainingSet
	}
	nFeats := len(X[0])
	gb.Trees = gb.Trees[:0]
	gb.Gains = make([]float64, nFeats)

	pos := 0
	for i := 0; i < n; i++ {
		pos += y[i]
	}
	base := math.Min(math.Max(float64(pos)/float64(n), 1e-3), 1-1e-3)
	gb.Init = math.Log(base / (1.0 - base))
	F := make([]float64, n)
	for i := range F {
		F[i] = gb.Init
	}

	cands := make([][]float64, nFeats)
	for j := range cands {
		cands[j] = quantileThresholds(X, j, gb.MaxThresholdsPerFe)
	}

	r := make([]float64, n)
	for m := 0; m < gb.NEstimators; m++ {
		total := 0.0
		for i := 0; i < n; i++ {
			r[i] = float64(y[i]) - sigmoid(F[i])
			total += r[i]
		}
		// SSE of the residuals around their mean, before this stump
		mean := total / float64(n)
		baseSSE := 0.0
		for i := 0; i < n; i++ {
			d := r[i] - mean
			baseSSE += d * d
		}

		best := stump{Feature: -1}
		bestSSE := math.MaxFloat64
		for j := 0; j < nFeats; j++ {
			for _, thr := range cands[j] {
				var ls, lc, rs, rc float64
				for i := 0; i < n; i++ {
					if X[i][j] <= thr {
						ls += r[i]
						lc++
					} else {
						rs += r[i]
						rc++
					}
				}
				if int(lc) < gb.MinSamples || int(rc) < gb.MinSamples || lc == 0 || rc == 0 {
					continue
				}
				la, ra := ls/lc, rs/rc
				sse := 0.0
				for i := 0; i < n; i++ {
					d := r[i] - ra
					if X[i][j] <= thr {
						d = r[i] - la
					}
					sse += d * d
				}
				if sse < bestSSE {
					bestSSE = sse
					best = stump{Feature: j, Threshold: thr, LeftVal: la, RightVal: ra}
				}
			}
		}
		if best.Feature == -1 {
			break
		}
		gb.Trees = append(gb.Trees, best)
		gb.Gains[best.Feature] += math.Max(0, baseSSE-bestSSE)
		for i := 0; i < n; i++ {
			F[i] += gb.LearningRate * best.value(X[i])
		}
	}
	return nil
}

func (s stump) value(x []float64) float64 {
	if x[s.Feature] > s.Threshold {
		return s.RightVal
	}
	return s.LeftVal
}

func (gb *GradientBoosting) PredictProba(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i := range X {
		f := gb.Init
		for _, t := range gb.Trees {
			f += gb.LearningRate * t.value(X[i])
		}
		out[i] = sigmoid(f)
	}
	return out
}

func (gb *GradientBoosting) Predict(X [][]float64) []int { return threshold(gb.PredictProba(X)) }

func (gb *GradientBoosting) Importances() []float64 { return normalize(gb.Gains) }

func quantileThresholds(X [][]float64, j int, nCand int) []float64 {
	if nCand <= 0 {
		nCand = 16
	}
	n := len(X)
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		vals[i] = X[i][j]
	}
	sort.Float64s(vals)
	out := make([]float64, 0, nCand)
	for k := 1; k < nCand; k++ {
		idx := int(math.Round(float64(k) / float64(nCand) * float64(n-1)))
		if idx <= 0 || idx >= n {
			continue
		}
		if thr := vals[idx]; len(out) == 0 || thr != out[len(out)-1] {
			out = append(out, thr)
		}
	}
	if len(out) == 0 {
		sum := 0.0
		for _, v := range vals {
			sum += v
		}
		out = append(out, sum/float64(n))
	}
	return out
}
