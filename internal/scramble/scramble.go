package scramble

import (
	"errors"
	"math"
	"strconv"
)

// segment pairs a primitive root with its prime modulus. The powers of the
// generator cycle through every nonzero residue of the modulus exactly once,
// so a segment scrambles a contiguous run of modulus-1 indices.
type segment struct {
	generator int64
	modulus   int64
}

// segmentTable is ordered by increasing modulus. Each segment's period is
// roughly 0.9 x 10^d for digit counts 2 through 10, which is what keeps
// output digit length close to input digit length. The constants are
// load-bearing: identifiers derived from them are already issued, and any
// change re-maps every index that has not been handed out yet. Digit length
// drifts by one near segment boundaries; that is inherent to the constants,
// not something to correct.
var segmentTable = [...]segment{
	{generator: 56, modulus: 97},
	{generator: 511, modulus: 887},
	{generator: 5203, modulus: 9013},
	{generator: 51947, modulus: 90001},
	{generator: 519612, modulus: 900001},
	{generator: 5196144, modulus: 8999993},
	{generator: 51961523, modulus: 89999999},
	{generator: 519615218, modulus: 899999963},
	{generator: 5196152444, modulus: 9000000043},
}

// ErrIndexOutOfRange indicates an index beyond the combined capacity of
// every segment in the table.
var ErrIndexOutOfRange = errors.New("index exceeds total segment capacity")

// ErrMissingExponentiator indicates construction without a modular
// exponentiation backend.
var ErrMissingExponentiator = errors.New("modular exponentiation backend is required")

// ErrInvalidBaseOffset indicates a base offset that is negative or too large
// to leave room for the segment table.
var ErrInvalidBaseOffset = errors.New("base offset must be non-negative and leave room for the segment table")

// Scrambler maps allocation indices to scrambled decimal identifiers.
//
// A Scrambler is a pure function of its inputs: it holds only the configured
// base offset and the exponentiation backend, both immutable after
// construction, so a single instance is safe for concurrent use without
// locking.
type Scrambler struct {
	baseOffset int64
	exp        Exponentiator
}

// New creates a Scrambler backed by math/big modular exponentiation.
//
// The base offset is a global shift applied before the segment walk. It lets
// a deployment skip past indices that were already exposed unscrambled, so
// scrambled output never collides with previously issued plain counters.
func New(baseOffset int64) (*Scrambler, error) {
	return NewWithExponentiator(baseOffset, BigExponentiator{})
}

// NewWithExponentiator creates a Scrambler with an injected exponentiation
// backend. A missing backend fails here, at construction, never lazily at
// the first call.
func NewWithExponentiator(baseOffset int64, exp Exponentiator) (*Scrambler, error) {
	if exp == nil {
		return nil, ErrMissingExponentiator
	}
	if baseOffset < 0 || baseOffset > math.MaxInt64-Capacity() {
		return nil, ErrInvalidBaseOffset
	}
	return &Scrambler{baseOffset: baseOffset, exp: exp}, nil
}

// BaseOffset returns the configured base offset.
func (s *Scrambler) BaseOffset() int64 {
	return s.baseOffset
}

// MapIndex maps an index to its scrambled decimal identifier.
//
// # Sentinel indices
//
// Indices at or below zero are unallocated sentinel values outside the
// scrambled space. They come back as their plain decimal representation and
// are never an error.
//
// # Segment walk
//
// Positive indices fold over the segment table with a running offset that
// starts at the base offset. The first segment whose modulus exceeds the
// remaining distance produces generator^(index-offset) mod modulus, shifted
// by the accumulated offset. Every earlier segment adds its full period to
// the offset, which keeps each segment's output range disjoint from and
// strictly above the ranges produced before it.
//
// # Range
//
// Indices beyond the combined period of all nine segments (Capacity, just
// under 10^10) return ErrIndexOutOfRange. The condition is permanent, not
// transient; callers must not retry.
func (s *Scrambler) MapIndex(index int64) (string, error) {
	if index <= 0 {
		return strconv.FormatInt(index, 10), nil
	}
	offset := s.baseOffset
	for _, seg := range segmentTable {
		if index-offset < seg.modulus {
			residue := s.exp.ModPow(seg.generator, index-offset, seg.modulus)
			return strconv.FormatInt(offset+residue, 10), nil
		}
		offset += seg.modulus - 1
	}
	return "", ErrIndexOutOfRange
}

// Capacity returns the number of distinct positive indices the table can
// scramble: the sum of every segment's period.
func Capacity() int64 {
	var total int64
	for _, seg := range segmentTable {
		total += seg.modulus - 1
	}
	return total
}

// SegmentCount returns the number of segments in the table.
func SegmentCount() int {
	return len(segmentTable)
}
