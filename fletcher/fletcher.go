package fletcher

import (
    "errors"
    "fmt"

    "github.com/harlequix/chancode/bits"
)

// Supported checksum widths. The width splits into two running sums of
// half the size each.
const (
    Mode8 int = 8
    Mode16 int = 16
    Mode32 int = 32
)

var ErrInvalidMode = errors.New("unsupported checksum mode")

// Checksum runs the two-sum loop over the sequence. Every element
// contributes its raw 0/1 value to sum1; this is deliberately the
// per-bit variant, not the textbook byte-block Fletcher.
func Checksum(data bits.Sequence, mode int) (uint64, error) {
    blockSize, err := split(mode)
    if err != nil {
        return 0, err
    }
    if err := data.Validate(); err != nil {
        return 0, err
    }
    modulus := uint64(1)<<uint(blockSize) - 1
    var sum1, sum2 uint64
    for _, b := range data {
        sum1 = (sum1 + uint64(b)) % modulus
        sum2 = (sum2 + sum1) % modulus
    }
    return sum2<<uint(blockSize) | sum1, nil
}

// Append returns data with the checksum bits attached at the end,
// most significant first.
func Append(data bits.Sequence, mode int) (bits.Sequence, error) {
    sum, err := Checksum(data, mode)
    if err != nil {
        return nil, err
    }
    out := make(bits.Sequence, 0, len(data)+mode)
    out = append(out, data...)
    out = append(out, bits.FromUint(sum, mode)...)
    return out, nil
}

// Verify recomputes the checksum over the frame prefix and compares it
// against the trailing mode bits.
func Verify(frame bits.Sequence, mode int) (bool, error) {
    if _, err := split(mode); err != nil {
        return false, err
    }
    if len(frame) < mode {
        return false, fmt.Errorf("frame shorter than its checksum: %d < %d", len(frame), mode)
    }
    want := frame[len(frame)-mode:].Uint()
    got, err := Checksum(frame[:len(frame)-mode], mode)
    if err != nil {
        return false, err
    }
    return got == want, nil
}

// BinaryString renders the low mode bits of a checksum, most significant
// first, zero padded on the left.
func BinaryString(sum uint64, mode int) (string, error) {
    if _, err := split(mode); err != nil {
        return "", err
    }
    return bits.FromUint(sum, mode).String(), nil
}

func split(mode int) (int, error) {
    switch mode {
    case Mode8, Mode16, Mode32:
        return mode / 2, nil
    }
    return 0, fmt.Errorf("%w: %d", ErrInvalidMode, mode)
}
