package bits

import (
    "errors"
    "fmt"
    "strings"
)

// Bit holds exactly the values 0 and 1.
type Bit = byte

// Sequence is an ordered run of bits, most significant first.
type Sequence []Bit

var ErrInvalidBit = errors.New("bit value outside {0,1}")

// FromBytes expands every byte into 8 bits, most significant first,
// concatenated in input order.
func FromBytes(data []byte) Sequence {
    out := make(Sequence, 0, len(data)*8)
    for _, b := range data {
        for shift := 7; shift >= 0; shift-- {
            out = append(out, Bit(b>>uint(shift)&1))
        }
    }
    return out
}

// FromString parses a run of '0' and '1' characters.
func FromString(s string) (Sequence, error) {
    out := make(Sequence, len(s))
    for i := 0; i < len(s); i++ {
        switch s[i] {
        case '0':
            out[i] = 0
        case '1':
            out[i] = 1
        default:
            return nil, fmt.Errorf("%w: %q at index %d", ErrInvalidBit, s[i], i)
        }
    }
    return out, nil
}

// FromUint renders the low width bits of value, most significant first,
// zero padded on the left. High order bits beyond width are dropped.
func FromUint(value uint64, width int) Sequence {
    out := make(Sequence, width)
    for i := 0; i < width; i++ {
        out[width-1-i] = Bit(value >> uint(i) & 1)
    }
    return out
}

// Uint folds the sequence into an unsigned integer, first bit most
// significant. Sequences longer than 64 bits overflow silently; the
// caller guards the length.
func (self Sequence) Uint() uint64 {
    var result uint64
    for _, b := range self {
        result = result<<1 | uint64(b)
    }
    return result
}

// Validate rejects any element outside {0,1}.
func (self Sequence) Validate() error {
    for i, b := range self {
        if b != 0 && b != 1 {
            return fmt.Errorf("%w: %d at index %d", ErrInvalidBit, b, i)
        }
    }
    return nil
}

func (self Sequence) Clone() Sequence {
    out := make(Sequence, len(self))
    copy(out, self)
    return out
}

// Flip inverts the bit at index i in place.
func (self Sequence) Flip(i int) {
    self[i] ^= 1
}

func (self Sequence) String() string {
    var sb strings.Builder
    sb.Grow(len(self))
    for _, b := range self {
        if b == 1 {
            sb.WriteByte('1')
        } else {
            sb.WriteByte('0')
        }
    }
    return sb.String()
}
