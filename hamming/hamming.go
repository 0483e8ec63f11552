package hamming

import (
    "errors"
    "fmt"

    "github.com/harlequix/chancode/bits"
)

var ErrEmptyInput = errors.New("empty input sequence")
var ErrUncorrectable = errors.New("syndrome points outside the sequence")

// RedundantBits returns the smallest r satisfying 2^r >= m + r + 1.
func RedundantBits(m int) int {
    r := 0
    for 1<<uint(r) < m+r+1 {
        r++
    }
    return r
}

// Encode places the data bits at the 1-indexed positions that are not
// powers of two and fills every power-of-two position with the parity of
// its column group. Positions count from the start of the sequence; no
// reversal happens on either side.
func Encode(data bits.Sequence) (bits.Sequence, error) {
    if len(data) == 0 {
        return nil, ErrEmptyInput
    }
    if err := data.Validate(); err != nil {
        return nil, err
    }
    r := RedundantBits(len(data))
    n := len(data) + r
    encoded := make(bits.Sequence, n)
    next := 0
    for i := 0; i < n; i++ {
        pos := i + 1
        if pos&(pos-1) != 0 {
            encoded[i] = data[next]
            next++
        }
    }
    for k := 0; k < r; k++ {
        encoded[1<<uint(k)-1] = groupParity(encoded, k)
    }
    return encoded, nil
}

// Decode recovers the data bits from an encoded sequence, correcting at
// most one flipped position. The returned index is the corrected
// 0-indexed position, -1 when the sequence was clean. Two or more flips
// exceed the code's guarantee and either miscorrect silently or surface
// as ErrUncorrectable.
func Decode(encoded bits.Sequence) (bits.Sequence, int, error) {
    if len(encoded) == 0 {
        return nil, -1, ErrEmptyInput
    }
    if err := encoded.Validate(); err != nil {
        return nil, -1, err
    }
    n := len(encoded)
    syndrome := 0
    for k := 0; 1<<uint(k) <= n; k++ {
        if groupParity(encoded, k) != 0 {
            syndrome |= 1 << uint(k)
        }
    }
    corrected := -1
    work := encoded
    if syndrome != 0 {
        if syndrome > n {
            return nil, -1, fmt.Errorf("%w: position %d of %d", ErrUncorrectable, syndrome, n)
        }
        work = encoded.Clone()
        work.Flip(syndrome - 1)
        corrected = syndrome - 1
    }
    data := make(bits.Sequence, 0, n)
    for i := 0; i < n; i++ {
        pos := i + 1
        if pos&(pos-1) != 0 {
            data = append(data, work[i])
        }
    }
    return data, corrected, nil
}

// groupParity xors column group k: runs of 2^k consecutive positions
// every 2^(k+1), starting at the group's parity slot. The slot itself is
// included, so a consistent group xors to zero.
func groupParity(encoded bits.Sequence, k int) bits.Bit {
    run := 1 << uint(k)
    step := 1 << uint(k+1)
    var parity bits.Bit
    for j := run - 1; j < len(encoded); j += step {
        for t := 0; t < run && j+t < len(encoded); t++ {
            parity ^= encoded[j+t]
        }
    }
    return parity
}
