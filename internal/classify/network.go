package classify

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// networkConfig holds the dimensions and hyperparameters of the dense network.
type networkConfig struct {
	inputDim     int
	hiddenUnits  int
	outputDim    int
	epochs       int
	batchSize    int
	dropoutRate  float64
	learningRate float64
	seed         int64
}

// network is a two-layer dense network: dense(hidden, ReLU) -> dropout ->
// dense(output, softmax). Weights live in process memory only and are lost on
// restart; there is no persistence or versioning.
type network struct {
	cfg networkConfig
	w1  *mat.Dense // inputDim x hiddenUnits
	b1  []float64  // hiddenUnits
	w2  *mat.Dense // hiddenUnits x outputDim
	b2  []float64  // outputDim
}

// gradients mirrors the parameter layout of network.
type gradients struct {
	w1 *mat.Dense
	b1 []float64
	w2 *mat.Dense
	b2 []float64
}

// trainNetwork fits a fresh network on the given feature vectors and dense
// category labels using minibatch Adam with categorical cross-entropy loss.
// Data order is reshuffled every epoch. The second return value is the mean
// loss of the final epoch, reported for logging; training always terminates
// since the corpus is tiny.
func trainNetwork(cfg networkConfig, features [][]float64, labels []int) (*network, float64, error) {
	if len(features) == 0 {
		return nil, 0, fmt.Errorf("no training examples")
	}
	if len(features) != len(labels) {
		return nil, 0, fmt.Errorf("feature count %d does not match label count %d", len(features), len(labels))
	}
	for i, f := range features {
		if len(f) != cfg.inputDim {
			return nil, 0, fmt.Errorf("feature vector %d has length %d, want %d", i, len(f), cfg.inputDim)
		}
	}
	for i, l := range labels {
		if l < 0 || l >= cfg.outputDim {
			return nil, 0, fmt.Errorf("label %d out of range [0,%d)", i, cfg.outputDim)
		}
	}

	rng := rand.New(rand.NewSource(cfg.seed))
	n := &network{
		cfg: cfg,
		w1:  randomDense(cfg.inputDim, cfg.hiddenUnits, rng),
		b1:  make([]float64, cfg.hiddenUnits),
		w2:  randomDense(cfg.hiddenUnits, cfg.outputDim, rng),
		b2:  make([]float64, cfg.outputDim),
	}

	opt := newAdam(cfg.learningRate)
	var lastEpochLoss float64

	for epoch := 0; epoch < cfg.epochs; epoch++ {
		perm := rng.Perm(len(features))
		var epochLoss float64
		var batches int

		for start := 0; start < len(perm); start += cfg.batchSize {
			end := start + cfg.batchSize
			if end > len(perm) {
				end = len(perm)
			}
			x, y := n.batchTensors(features, labels, perm[start:end])

			loss, grads := n.lossAndGradients(x, y, rng)
			opt.step(n.parameters(), grads.parameters())
			epochLoss += loss
			batches++
		}

		lastEpochLoss = epochLoss / float64(batches)
	}

	return n, lastEpochLoss, nil
}

// predict runs a forward pass (no dropout) and returns the argmax output
// index. All intermediate buffers are local and released with the call.
func (n *network) predict(features []float64) (int, error) {
	if len(features) != n.cfg.inputDim {
		return 0, fmt.Errorf("feature vector length %d does not match input dimension %d", len(features), n.cfg.inputDim)
	}

	x := mat.NewDense(1, n.cfg.inputDim, features)

	var z1 mat.Dense
	z1.Mul(x, n.w1)
	addBiasRows(&z1, n.b1)
	reluInPlace(&z1)

	var z2 mat.Dense
	z2.Mul(&z1, n.w2)
	addBiasRows(&z2, n.b2)
	softmaxRows(&z2)

	best := 0
	row := z2.RawRowView(0)
	for i, p := range row {
		if p > row[best] {
			best = i
		}
	}
	return best, nil
}

// batchTensors assembles the design matrix and one-hot label matrix for the
// given permutation slice.
func (n *network) batchTensors(features [][]float64, labels []int, idx []int) (*mat.Dense, *mat.Dense) {
	b := len(idx)
	x := mat.NewDense(b, n.cfg.inputDim, nil)
	y := mat.NewDense(b, n.cfg.outputDim, nil)
	for row, i := range idx {
		x.SetRow(row, features[i])
		y.Set(row, labels[i], 1)
	}
	return x, y
}

// lossAndGradients performs one forward and backward pass over a batch,
// applying inverted dropout to the hidden activations during training only.
func (n *network) lossAndGradients(x, y *mat.Dense, rng *rand.Rand) (float64, *gradients) {
	b, _ := x.Dims()

	// Forward: hidden layer
	var z1 mat.Dense
	z1.Mul(x, n.w1)
	addBiasRows(&z1, n.b1)

	// ReLU with mask kept for the backward pass, fused with inverted dropout.
	h := mat.DenseCopyOf(&z1)
	mask := mat.NewDense(b, n.cfg.hiddenUnits, nil)
	keep := 1 - n.cfg.dropoutRate
	for r := 0; r < b; r++ {
		for c := 0; c < n.cfg.hiddenUnits; c++ {
			if z1.At(r, c) <= 0 {
				h.Set(r, c, 0)
				continue
			}
			scale := 1.0
			if n.cfg.dropoutRate > 0 {
				if rng.Float64() < n.cfg.dropoutRate {
					scale = 0
				} else {
					scale = 1 / keep
				}
			}
			mask.Set(r, c, scale)
			h.Set(r, c, h.At(r, c)*scale)
		}
	}

	// Forward: output layer
	var z2 mat.Dense
	z2.Mul(h, n.w2)
	addBiasRows(&z2, n.b2)
	softmaxRows(&z2)

	// Categorical cross-entropy against the one-hot labels
	const eps = 1e-9
	var loss float64
	for r := 0; r < b; r++ {
		for c := 0; c < n.cfg.outputDim; c++ {
			if y.At(r, c) > 0 {
				loss -= math.Log(z2.At(r, c) + eps)
			}
		}
	}
	loss /= float64(b)

	// Backward: softmax + cross-entropy collapse to (p - y) / b
	dz2 := mat.NewDense(b, n.cfg.outputDim, nil)
	dz2.Sub(&z2, y)
	dz2.Scale(1/float64(b), dz2)

	var dw2 mat.Dense
	dw2.Mul(h.T(), dz2)
	db2 := columnSums(dz2)

	var dh mat.Dense
	dh.Mul(dz2, n.w2.T())
	// Dropout mask already folds in the ReLU derivative (zero where z1 <= 0).
	dh.MulElem(&dh, mask)

	var dw1 mat.Dense
	dw1.Mul(x.T(), &dh)
	db1 := columnSums(&dh)

	return loss, &gradients{w1: &dw1, b1: db1, w2: &dw2, b2: db2}
}

// parameters exposes all weights as flat slices for the optimizer.
func (n *network) parameters() [][]float64 {
	return [][]float64{n.w1.RawMatrix().Data, n.b1, n.w2.RawMatrix().Data, n.b2}
}

func (g *gradients) parameters() [][]float64 {
	return [][]float64{g.w1.RawMatrix().Data, g.b1, g.w2.RawMatrix().Data, g.b2}
}

// adam implements the Adam optimizer with the usual default moment decays.
type adam struct {
	lr    float64
	beta1 float64
	beta2 float64
	eps   float64
	t     int
	m     [][]float64
	v     [][]float64
}

func newAdam(lr float64) *adam {
	return &adam{lr: lr, beta1: 0.9, beta2: 0.999, eps: 1e-8}
}

// step applies one Adam update. Moment buffers are allocated lazily on the
// first call to match the parameter shapes.
func (a *adam) step(params, grads [][]float64) {
	if a.m == nil {
		a.m = make([][]float64, len(params))
		a.v = make([][]float64, len(params))
		for i, p := range params {
			a.m[i] = make([]float64, len(p))
			a.v[i] = make([]float64, len(p))
		}
	}
	a.t++
	c1 := 1 - math.Pow(a.beta1, float64(a.t))
	c2 := 1 - math.Pow(a.beta2, float64(a.t))

	for i, p := range params {
		g := grads[i]
		m, v := a.m[i], a.v[i]
		for j := range p {
			m[j] = a.beta1*m[j] + (1-a.beta1)*g[j]
			v[j] = a.beta2*v[j] + (1-a.beta2)*g[j]*g[j]
			mHat := m[j] / c1
			vHat := v[j] / c2
			p[j] -= a.lr * mHat / (math.Sqrt(vHat) + a.eps)
		}
	}
}

// randomDense initializes a weight matrix with He-scaled normal draws.
func randomDense(rows, cols int, rng *rand.Rand) *mat.Dense {
	data := make([]float64, rows*cols)
	scale := math.Sqrt(2.0 / float64(rows))
	for i := range data {
		data[i] = rng.NormFloat64() * scale
	}
	return mat.NewDense(rows, cols, data)
}

// addBiasRows adds the bias vector to every row of m.
func addBiasRows(m *mat.Dense, bias []float64) {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, m.At(i, j)+bias[j])
		}
	}
}

// reluInPlace clamps negative entries to zero.
func reluInPlace(m *mat.Dense) {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if m.At(i, j) < 0 {
				m.Set(i, j, 0)
			}
		}
	}
}

// softmaxRows normalizes each row of m into a probability distribution,
// shifting by the row max for numerical stability.
func softmaxRows(m *mat.Dense) {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		maxVal := m.At(i, 0)
		for j := 1; j < c; j++ {
			if m.At(i, j) > maxVal {
				maxVal = m.At(i, j)
			}
		}
		var sum float64
		for j := 0; j < c; j++ {
			e := math.Exp(m.At(i, j) - maxVal)
			m.Set(i, j, e)
			sum += e
		}
		for j := 0; j < c; j++ {
			m.Set(i, j, m.At(i, j)/sum)
		}
	}
}

// columnSums returns the per-column sums of m.
func columnSums(m mat.Matrix) []float64 {
	r, c := m.Dims()
	sums := make([]float64, c)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			sums[j] += m.At(i, j)
		}
	}
	return sums
}
