package model

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrEmptyCorpus     = errors.New("empty corpus")
	ErrEmptyVocabulary = errors.New("empty vocabulary; documents only contain stop words")
	ErrNotFitted       = errors.New("vectorizer has not been fitted")
)

// Tokenize lower-cases text, splits it on anything that is not a letter,
// digit or underscore, and drops stop-words and single-rune tokens.
func Tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) < 2 {
			continue
		}
		if _, stop := englishStopWords[w]; stop {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// Vectorizer turns documents into L2-normalised TF-IDF rows over a
// vocabulary learned by Fit.
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

func NewVectorizer() *Vectorizer {
	return &Vectorizer{}
}

// Fit learns the vocabulary (sorted lexicographically) and the smoothed
// inverse document frequency of every term.
func (v *Vectorizer) Fit(docs []string) error {
	if len(docs) == 0 {
		return ErrEmptyCorpus
	}

	docFreq := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, tok := range Tokenize(doc) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			docFreq[tok]++
		}
	}
	if len(docFreq) == 0 {
		return ErrEmptyVocabulary
	}

	terms := make([]string, 0, len(docFreq))
	for term := range docFreq {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	v.vocabulary = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	for i, term := range terms {
		v.vocabulary[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}
	return nil
}

// Transform maps documents onto the fitted vocabulary. Terms outside the
// vocabulary are ignored; a document with no known terms becomes a zero row.
func (v *Vectorizer) Transform(docs []string) (*mat.Dense, error) {
	if v.vocabulary == nil {
		return nil, ErrNotFitted
	}
	if len(docs) == 0 {
		return nil, ErrEmptyCorpus
	}

	cols := len(v.vocabulary)
	data := make([]float64, len(docs)*cols)
	for i, doc := range docs {
		row := data[i*cols : (i+1)*cols]
		for _, tok := range Tokenize(doc) {
			if j, ok := v.vocabulary[tok]; ok {
				row[j]++
			}
		}
		var norm float64
		for j := range row {
			row[j] *= v.idf[j]
			norm += row[j] * row[j]
		}
		if norm == 0 {
			continue
		}
		norm = math.Sqrt(norm)
		for j := range row {
			row[j] /= norm
		}
	}
	return mat.NewDense(len(docs), cols, data), nil
}

func (v *Vectorizer) VocabularySize() int {
	return len(v.vocabulary)
}
