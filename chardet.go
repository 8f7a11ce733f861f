// Package chardet detects the character encoding of a byte stream.
//
// chardet ports the probabilistic detection strategy used by Mozilla's
// universal charset detector: a coordinator races a family of
// per-encoding probers (coding state machines, byte-distribution
// analyzers, single-byte bigram sequence analyzers) against the input
// and reports the most confident verdict once it runs out of signal or
// is told to stop.
//
// Basic usage:
//
//	det := chardet.New()
//	det.Feed([]byte("some bytes of unknown encoding"))
//	result := det.Close()
//	fmt.Println(result.Encoding, result.Confidence)
//
// Or, for a single buffer already fully in memory:
//
//	result := chardet.Detect(buf)
//
// Advanced usage:
//
//	config := chardet.DefaultConfig()
//	config.LanguageFilter = chardet.Japanese | chardet.NonCJK
//	det, err := chardet.NewWithConfig(config)
package chardet

import "github.com/coregx/chardet/engine"

// Detector incrementally detects the encoding of a byte stream fed to it
// across one or more calls to Feed.
//
// A Detector is not safe for concurrent use; each goroutine detecting a
// distinct stream needs its own instance (or should call Reset between
// streams instead of allocating a new one).
type Detector struct {
	coordinator *engine.Coordinator
}

// New returns a Detector configured with DefaultConfig.
func New() *Detector {
	det, err := NewWithConfig(DefaultConfig())
	if err != nil {
		// DefaultConfig is always valid; a panic here would indicate a
		// programming error in this package, not caller input.
		panic(err)
	}
	return det
}

// NewWithConfig returns a Detector built from config, or a ConfigError if
// config is invalid.
func NewWithConfig(config Config) (*Detector, error) {
	c, err := engine.New(config)
	if err != nil {
		return nil, err
	}
	return &Detector{coordinator: c}, nil
}

// Reset restores the Detector to its initial state so it can be reused
// for a new stream.
func (d *Detector) Reset() { d.coordinator.Reset() }

// Feed pushes the next chunk of the stream. It is a no-op once the
// Detector has already reached a verdict (see Done).
func (d *Detector) Feed(chunk []byte) { d.coordinator.Feed(chunk) }

// Done reports whether further Feed calls are no-ops because a verdict
// has already been reached: a BOM on the first chunk, or the escape or
// UTF-16/32 prober reaching FOUND_IT. A multi-byte or single-byte prober
// reaching FOUND_IT does not end detection early.
func (d *Detector) Done() bool { return d.coordinator.Done() }

// Close finalizes detection over everything fed so far and returns the
// verdict. It may be called more than once; subsequent calls repeat the
// same verdict without re-running the probers.
func (d *Detector) Close() Result {
	r := d.coordinator.Close()
	return Result{Encoding: r.Encoding, Confidence: r.Confidence, Language: r.Language}
}

// Detect is a convenience wrapper for the common case of a single,
// fully-buffered input: it feeds buf in one call and closes immediately.
func Detect(buf []byte) Result {
	d := New()
	d.Feed(buf)
	return d.Close()
}
