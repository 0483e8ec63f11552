package noise

import (
    "encoding/binary"
    "fmt"
    "math/rand"
    "time"

    "github.com/jinzhu/copier"
    "golang.org/x/crypto/sha3"

    "github.com/harlequix/chancode/bits"
    log "github.com/harlequix/chancode/log"
)

// Simulator flips bits of a sequence with a fixed per-bit probability.
// Every instance owns its generator; use one Simulator per goroutine.
type Simulator struct {
    rng *rand.Rand
    logger *log.Logger
}

// Report describes one pass over a sequence. Original and Noisy are
// fresh copies; the input sequence is never touched.
type Report struct {
    Original bits.Sequence
    Noisy bits.Sequence
    Flipped []int
}

func NewSimulator() *Simulator {
    return NewSimulatorWithSeed(time.Now().UnixNano())
}

func NewSimulatorWithSeed(seed int64) *Simulator {
    return &Simulator{
        rng: rand.New(rand.NewSource(seed)),
        logger: log.NewLogger("noise"),
    }
}

// NewSimulatorFromSecret derives the seed from a shared secret, so two
// parties rehearsing a channel replay the same flip pattern.
func NewSimulatorFromSecret(secret string) *Simulator {
    hasher := sha3.NewShake128()
    hasher.Write([]byte(secret))
    raw := make([]byte, 8)
    hasher.Read(raw)
    return NewSimulatorWithSeed(int64(binary.LittleEndian.Uint64(raw)))
}

// Apply draws one Bernoulli trial per bit and flips on success. percent
// is an integer probability in [0,100].
func (self *Simulator) Apply(seq bits.Sequence, percent int) (*Report, error) {
    if percent < 0 || percent > 100 {
        return nil, fmt.Errorf("flip probability out of range: %d", percent)
    }
    if err := seq.Validate(); err != nil {
        return nil, err
    }
    report := &Report{}
    if err := copier.Copy(&report.Original, seq); err != nil {
        return nil, err
    }
    if err := copier.Copy(&report.Noisy, seq); err != nil {
        return nil, err
    }
    threshold := float64(percent) / 100.0
    for i := range report.Noisy {
        if self.rng.Float64() < threshold {
            report.Noisy.Flip(i)
            report.Flipped = append(report.Flipped, i)
        }
    }
    self.logger.WithField("bits", len(seq)).WithField("flipped", len(report.Flipped)).Trace("noise pass")
    return report, nil
}
