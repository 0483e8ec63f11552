package chancode

import (
    "errors"
    "fmt"

    "github.com/spf13/viper"

    "github.com/harlequix/chancode/bits"
    "github.com/harlequix/chancode/fletcher"
    "github.com/harlequix/chancode/hamming"
    "github.com/harlequix/chancode/internal/wire"
    log "github.com/harlequix/chancode/log"
    "github.com/harlequix/chancode/noise"
)

const SchemeFletcher string = "fletcher"
const SchemeHamming string = "hamming"

var ErrUnknownScheme = errors.New("unknown coding scheme")

var logger *log.Logger

func init() {
    logger = log.NewLogger("codec")
}

func init() {
    viper.SetDefault("Scheme", SchemeFletcher)
    viper.SetDefault("Mode", fletcher.Mode16)
    viper.SetDefault("FlipPercent", 0)
    viper.SetDefault("TraceFile", "")
}

type Config struct {
    Scheme string
    Mode int
    FlipPercent int
    TraceFile string
}

func NewConfig() Config {
    return Config{
        Scheme: viper.GetString("Scheme"),
        Mode: viper.GetInt("Mode"),
        FlipPercent: viper.GetInt("FlipPercent"),
        TraceFile: viper.GetString("TraceFile"),
    }
}

// Codec runs the full pipeline: message bytes to bit sequence, coding
// per the configured scheme, noise pass, ASCII wire rendering.
type Codec struct {
    config Config
    sim *noise.Simulator
    logger *log.Logger
}

// Transmission is the record of one encode and noise pass.
type Transmission struct {
    Encoded bits.Sequence
    Noisy bits.Sequence
    Flipped []int
    Wire []byte
}

func NewCodec(config Config) *Codec {
    codecLogger := log.NewLogger("codec")
    if config.TraceFile != "" {
        log.AddTracer(codecLogger, config.TraceFile)
    }
    return &Codec{
        config: config,
        sim: noise.NewSimulator(),
        logger: codecLogger,
    }
}

// WithSimulator swaps the noise source, e.g. for a seeded generator.
func (self *Codec) WithSimulator(sim *noise.Simulator) *Codec {
    self.sim = sim
    return self
}

// Encode maps the message to bits and applies the configured scheme.
func (self *Codec) Encode(message []byte) (bits.Sequence, error) {
    data := bits.FromBytes(message)
    switch self.config.Scheme {
    case SchemeFletcher:
        return fletcher.Append(data, self.config.Mode)
    case SchemeHamming:
        return hamming.Encode(data)
    }
    logger.WithField("InvalidValue", self.config.Scheme).Error("do not know scheme")
    return nil, fmt.Errorf("%w: %s", ErrUnknownScheme, self.config.Scheme)
}

// Transmit encodes the message, runs the noise pass and renders the
// wire bytes for the transport collaborator.
func (self *Codec) Transmit(message []byte) (*Transmission, error) {
    encoded, err := self.Encode(message)
    if err != nil {
        return nil, err
    }
    report, err := self.sim.Apply(encoded, self.config.FlipPercent)
    if err != nil {
        return nil, err
    }
    raw, err := wire.Marshal(report.Noisy)
    if err != nil {
        return nil, err
    }
    self.logger.WithField("scheme", self.config.Scheme).WithField("bits", len(encoded)).WithField("flipped", len(report.Flipped)).Debug("transmit")
    return &Transmission{
        Encoded: encoded,
        Noisy: report.Noisy,
        Flipped: report.Flipped,
        Wire: raw,
    }, nil
}

// Verify checks a received fletcher frame against its trailing checksum.
func (self *Codec) Verify(raw []byte) (bool, error) {
    frame, err := wire.Unmarshal(raw)
    if err != nil {
        return false, err
    }
    return fletcher.Verify(frame, self.config.Mode)
}

// Recover decodes a received hamming frame back into message bytes,
// correcting at most one flipped bit. The returned index is the
// corrected position in the frame, -1 when it arrived clean.
func (self *Codec) Recover(raw []byte) ([]byte, int, error) {
    frame, err := wire.Unmarshal(raw)
    if err != nil {
        return nil, -1, err
    }
    data, corrected, err := hamming.Decode(frame)
    if err != nil {
        return nil, corrected, err
    }
    return wire.Pack(data), corrected, nil
}
