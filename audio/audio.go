// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// Source is a pull stream of interleaved float32 samples in [-1, 1], the
// form decoders hand to ReadAll and the streaming operators.
type Source interface {
	SampleRate() int
	Channels() int
	// ReadSamples fills a prefix of dst and returns how many values (not
	// frames) it wrote. A stream may return n > 0 together with io.EOF;
	// after that every call returns 0, io.EOF.
	ReadSamples(dst []float32) (n int, err error)
	// BufSize is the preferred number of values per ReadSamples call.
	BufSize() int
	Close() error
}

// Decoder opens a Source over an encoded byte stream.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Format describes a decoded stream.
type Format struct {
	SampleRate int
	Channels   int
}

// Registry maps case-insensitive format keys such as "wav" or "ogg" to
// decoders. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Decoder
}

func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Decoder)}
}

// Register binds format to d, replacing any earlier binding.
func (r *Registry) Register(format string, d Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codecs[strings.ToLower(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.codecs[strings.ToLower(format)]
	return d, ok
}

// ForPath looks up a decoder by the extension of path.
func (r *Registry) ForPath(path string) (Decoder, bool) {
	return r.Get(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Formats returns the registered keys in sorted order.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.codecs))
}
