package model

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

type VectorizationError struct {
	Op  string
	Err error
}

func (e *VectorizationError) Error() string {
	return fmt.Sprintf("vectorization failed during %s: %v", e.Op, e.Err)
}

func (e *VectorizationError) Unwrap() error {
	return e.Err
}

func IsVectorizationError(err error) bool {
	var target *VectorizationError
	return errors.As(err, &target)
}

// Similarity fits one vectorizer on queries and targets together, then
// returns the cosine similarity of every query (row) against every target
// (column). Values are clamped to [0,1].
func Similarity(queries, targets []string) (sim *mat.Dense, err error) {
	// gonum reports shape errors by panicking
	defer func() {
		if r := recover(); r != nil {
			sim = nil
			err = &VectorizationError{Op: "similarity", Err: fmt.Errorf("%v", r)}
		}
	}()

	if len(queries) == 0 || len(targets) == 0 {
		return nil, &VectorizationError{Op: "fit", Err: ErrEmptyCorpus}
	}

	corpus := make([]string, 0, len(queries)+len(targets))
	corpus = append(corpus, queries...)
	corpus = append(corpus, targets...)

	v := NewVectorizer()
	if err := v.Fit(corpus); err != nil {
		return nil, &VectorizationError{Op: "fit", Err: err}
	}

	q, err := v.Transform(queries)
	if err != nil {
		return nil, &VectorizationError{Op: "transform queries", Err: err}
	}
	t, err := v.Transform(targets)
	if err != nil {
		return nil, &VectorizationError{Op: "transform targets", Err: err}
	}

	// rows are unit length (or zero), so the dot product is the cosine
	sim = mat.NewDense(len(queries), len(targets), nil)
	sim.Mul(q, t.T())
	sim.Apply(func(_, _ int, x float64) float64 {
		return clamp01(x)
	}, sim)
	return sim, nil
}

// ColumnMeans averages each column of m.
func ColumnMeans(m *mat.Dense) []float64 {
	rows, cols := m.Dims()
	means := make([]float64, cols)
	if rows == 0 {
		return means
	}
	for j := 0; j < cols; j++ {
		var sum float64
		for i := 0; i < rows; i++ {
			sum += m.At(i, j)
		}
		means[j] = sum / float64(rows)
	}
	return means
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
