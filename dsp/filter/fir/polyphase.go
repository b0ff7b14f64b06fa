package fir

import "fmt"

// Direction selects the tap ordering of the decomposed sub-filters.
type Direction int

const (
	// Forward fills sub-filter columns left to right (convolution
	// ordering).
	Forward Direction = iota

	// Reverse fills sub-filter columns right to left (time-reversed,
	// correlation ordering).
	Reverse
)

// Bank is a row-major polyphase filter bank: Rows() independent
// sub-filters of Cols() taps each, backed by a single slice. The bank
// only holds storage; Decompose fills it from a prototype filter.
type Bank struct {
	rows int
	cols int
	taps []float64
}

// NewBank allocates a bank of rows sub-filters with cols taps each.
func NewBank(rows, cols int) (*Bank, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBankShape, rows, cols)
	}

	return &Bank{
		rows: rows,
		cols: cols,
		taps: make([]float64, rows*cols),
	}, nil
}

// Rows returns the number of sub-filters.
func (b *Bank) Rows() int { return b.rows }

// Cols returns the tap count of each sub-filter.
func (b *Bank) Cols() int { return b.cols }

// Row returns the taps of sub-filter i. The slice aliases the bank's
// storage; it is not a copy.
func (b *Bank) Row(i int) []float64 {
	if i < 0 || i >= b.rows {
		panic(fmt.Sprintf("fir: bank row %d out of range [0,%d)", i, b.rows))
	}

	return b.taps[i*b.cols : (i+1)*b.cols : (i+1)*b.cols]
}

// Decompose distributes the prototype taps round-robin across the
// bank's rows, one column at a time, scaling every tap by gain.
//
// With invert set, every other column is negated, turning a lowpass
// prototype bank into a highpass bank without redesigning the taps.
// The negated columns depend on the direction: Reverse negates odd
// columns, Forward negates even columns. The asymmetry is deliberate
// and matched by the corresponding apply orderings; do not "fix" it.
//
// The bank must have k rows and len(prototype)/k columns, and the
// prototype length must divide evenly by k.
func Decompose(bank *Bank, prototype []float64, gain float64, dir Direction, invert bool) error {
	if bank == nil {
		return ErrNilBank
	}

	n := len(prototype)
	if n == 0 {
		return ErrEmptyPrototype
	}

	k := bank.rows
	if n%k != 0 {
		return fmt.Errorf("%w: %d %% %d != 0", ErrIndivisibleLength, n, k)
	}

	l := n / k
	if bank.cols != l {
		return fmt.Errorf("%w: bank is %dx%d, want %dx%d", ErrBankShape, bank.rows, bank.cols, k, l)
	}

	idx := 0
	if dir == Reverse {
		for j := l - 1; j >= 0; j-- {
			sign := columnSign(j, dir, invert)
			for i := range k {
				bank.taps[i*l+j] = gain * prototype[idx] * sign
				idx++
			}
		}

		return nil
	}

	for j := range l {
		sign := columnSign(j, dir, invert)
		for i := range k {
			bank.taps[i*l+j] = gain * prototype[idx] * sign
			idx++
		}
	}

	return nil
}

func columnSign(col int, dir Direction, invert bool) float64 {
	if !invert {
		return 1
	}

	odd := col&1 == 1
	if dir == Reverse {
		if odd {
			return -1
		}

		return 1
	}

	if odd {
		return 1
	}

	return -1
}
