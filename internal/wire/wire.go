package wire

import (
    "fmt"

    "github.com/harlequix/chancode/bits"
)

// The channel carries one ASCII character per bit.
const One byte = 49
const Zero byte = 48

// Marshal renders a sequence as '0'/'1' bytes, one byte per bit.
func Marshal(seq bits.Sequence) ([]byte, error) {
    if err := seq.Validate(); err != nil {
        return nil, err
    }
    out := make([]byte, len(seq))
    for i, b := range seq {
        if b == 1 {
            out[i] = One
        } else {
            out[i] = Zero
        }
    }
    return out, nil
}

// Unmarshal parses wire bytes back into a sequence.
func Unmarshal(raw []byte) (bits.Sequence, error) {
    out := make(bits.Sequence, len(raw))
    for i, c := range raw {
        switch c {
        case One:
            out[i] = 1
        case Zero:
            out[i] = 0
        default:
            return nil, fmt.Errorf("wire byte at index %d is not '0' or '1': %q", i, c)
        }
    }
    return out, nil
}

// Pack folds a sequence into dense bytes, most significant bit first,
// zero padded on the right to a byte boundary.
func Pack(seq bits.Sequence) []byte {
    out := make([]byte, (len(seq)+7)/8)
    for i, b := range seq {
        if b == 1 {
            out[i/8] |= 1 << uint(7-i%8)
        }
    }
    return out
}
