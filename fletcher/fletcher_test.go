package fletcher

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/harlequix/chancode/bits"
)

func TestChecksumKnownValues(t *testing.T) {
    seq, err := bits.FromString("1011")
    require.NoError(t, err)

    // sum1 walks 1,1,2,3 and sum2 walks 1,2,4,7
    sum, err := Checksum(seq, Mode16)
    require.NoError(t, err)
    assert.Equal(t, uint64(7<<8|3), sum)

    sum, err = Checksum(seq, Mode8)
    require.NoError(t, err)
    assert.Equal(t, uint64(7<<4|3), sum)
}

func TestChecksumAllZeros(t *testing.T) {
    sum, err := Checksum(make(bits.Sequence, 32), Mode16)
    require.NoError(t, err)
    assert.Equal(t, uint64(0), sum)
}

func TestChecksumDeterministic(t *testing.T) {
    seq := bits.FromBytes([]byte("deterministic"))
    first, err := Checksum(seq, Mode32)
    require.NoError(t, err)
    second, err := Checksum(seq, Mode32)
    require.NoError(t, err)
    assert.Equal(t, first, second)
}

func TestChecksumInvalidMode(t *testing.T) {
    _, err := Checksum(bits.Sequence{1, 0}, 12)
    assert.ErrorIs(t, err, ErrInvalidMode)
    _, err = Checksum(bits.Sequence{1, 0}, 0)
    assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestChecksumInvalidBit(t *testing.T) {
    _, err := Checksum(bits.Sequence{1, 3}, Mode16)
    assert.ErrorIs(t, err, bits.ErrInvalidBit)
}

func TestAppendVerifyRoundTrip(t *testing.T) {
    for _, mode := range []int{Mode8, Mode16, Mode32} {
        data := bits.FromBytes([]byte("round trip"))
        frame, err := Append(data, mode)
        require.NoError(t, err)
        assert.Len(t, frame, len(data)+mode)

        ok, err := Verify(frame, mode)
        require.NoError(t, err)
        assert.True(t, ok, "mode %d", mode)
    }
}

func TestVerifyDetectsFlip(t *testing.T) {
    data := bits.FromBytes([]byte("corrupt me"))
    frame, err := Append(data, Mode16)
    require.NoError(t, err)

    frame.Flip(7)
    ok, err := Verify(frame, Mode16)
    require.NoError(t, err)
    assert.False(t, ok)
}

func TestVerifyShortFrame(t *testing.T) {
    _, err := Verify(make(bits.Sequence, 8), Mode16)
    assert.Error(t, err)
}

func TestBinaryString(t *testing.T) {
    out, err := BinaryString(7<<8|3, Mode16)
    require.NoError(t, err)
    assert.Equal(t, "0000011100000011", out)

    _, err = BinaryString(1, 13)
    assert.ErrorIs(t, err, ErrInvalidMode)
}
