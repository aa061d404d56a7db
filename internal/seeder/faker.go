package seeder

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// IDLength is the length of every generated identifier.
	IDLength = 32

	hexAlphabet = "0123456789abcdef"
	day         = 24 * time.Hour
)

var ErrInvalidDistribution = errors.New("invalid categorical distribution")

// DataGenerator owns the single random source shared by every table
// generator. Draw order determines output, so callers must consume it
// sequentially in a fixed table order.
type DataGenerator struct {
	rand *rand.Rand
}

func NewDataGenerator(seed uint64) *DataGenerator {
	return &DataGenerator{
		rand: rand.New(rand.NewPCG(seed, seed)),
	}
}

// HexID returns length symbols drawn uniformly, with replacement, from the
// hexadecimal alphabet. Uniqueness is not checked.
func (g *DataGenerator) HexID(length int) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(hexAlphabet[g.rand.IntN(len(hexAlphabet))])
	}
	return b.String()
}

// IntRange draws from the half-open range [lo, hi).
func (g *DataGenerator) IntRange(lo, hi int) int {
	return lo + g.rand.IntN(hi-lo)
}

// IntBetween draws from the closed range [lo, hi].
func (g *DataGenerator) IntBetween(lo, hi int) int {
	return lo + g.rand.IntN(hi-lo+1)
}

// Uniform draws a float from [lo, hi].
func (g *DataGenerator) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*g.rand.Float64()
}

// Money draws a uniform amount from [lo, hi] rounded to cents.
func (g *DataGenerator) Money(lo, hi float64) decimal.Decimal {
	return decimal.NewFromFloat(g.Uniform(lo, hi)).Round(2)
}

func (g *DataGenerator) Chance(p float64) bool {
	return g.rand.Float64() < p
}

func (g *DataGenerator) Choice(values []string) string {
	return values[g.rand.IntN(len(values))]
}

// Days returns a whole-day offset drawn from [lo, hi].
func (g *DataGenerator) Days(lo, hi int) time.Duration {
	return time.Duration(g.IntBetween(lo, hi)) * day
}

// Timestamp draws a second-granularity instant from [start, end].
func (g *DataGenerator) Timestamp(start, end time.Time) time.Time {
	span := int64(end.Sub(start) / time.Second)
	return start.Add(time.Duration(g.rand.Int64N(span+1)) * time.Second)
}

// SampleDistinct picks k distinct indexes from [0, n) without replacement,
// in selection order.
func (g *DataGenerator) SampleDistinct(n, k int) ([]int, error) {
	if k > n || k < 0 {
		return nil, fmt.Errorf("cannot sample %d distinct values from %d", k, n)
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + g.rand.IntN(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k], nil
}

// Distribution is a fixed set of labels with selection probabilities.
type Distribution struct {
	labels     []string
	cumulative []float64
}

func NewDistribution(labels []string, weights []float64) (Distribution, error) {
	if len(labels) == 0 || len(labels) != len(weights) {
		return Distribution{}, fmt.Errorf("%w: %d labels, %d weights", ErrInvalidDistribution, len(labels), len(weights))
	}

	cumulative := make([]float64, len(weights))
	sum := 0.0
	for i, w := range weights {
		if w < 0 {
			return Distribution{}, fmt.Errorf("%w: negative weight %v for %s", ErrInvalidDistribution, w, labels[i])
		}
		sum += w
		cumulative[i] = sum
	}
	if math.Abs(sum-1) > 1e-9 {
		return Distribution{}, fmt.Errorf("%w: weights sum to %v", ErrInvalidDistribution, sum)
	}

	return Distribution{
		labels:     append([]string(nil), labels...),
		cumulative: cumulative,
	}, nil
}

func MustDistribution(labels []string, weights []float64) Distribution {
	d, err := NewDistribution(labels, weights)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Distribution) Labels() []string {
	return append([]string(nil), d.labels...)
}

func (g *DataGenerator) Pick(d Distribution) string {
	u := g.rand.Float64()
	for i, c := range d.cumulative {
		if u < c {
			return d.labels[i]
		}
	}
	// Float rounding can leave u just above the last cumulative value.
	return d.labels[len(d.labels)-1]
}
