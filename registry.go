// SPDX-License-Identifier: EPL-2.0

package audtensor

import (
	"sync"

	"github.com/ik5/audtensor/audio"
	"github.com/ik5/audtensor/formats/aiff"
	"github.com/ik5/audtensor/formats/mp3"
	"github.com/ik5/audtensor/formats/vorbis"
	"github.com/ik5/audtensor/formats/wav"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *audio.Registry
)

// NewRegistry returns a registry holding every bundled decoder.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})

	return reg
}

// DefaultRegistry is the shared registry used by Load and LoadFile.
// Decoders registered on it are visible to later loads.
func DefaultRegistry() *audio.Registry {
	defaultOnce.Do(func() { defaultRegistry = NewRegistry() })

	return defaultRegistry
}
