// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audtensor/audioerr"
)

// WritePCM16 writes interleaved 16 bit samples as a WAV stream. Unlike
// WriteArray it needs no seeking, so w may be a pipe or a socket.
func WritePCM16(w io.Writer, sampleRate, channels int, samples []int16) error {
	const op = "wav.WritePCM16"

	if sampleRate <= 0 || channels <= 0 {
		return audioerr.Specf(op, "invalid format %d Hz, %d channels", sampleRate, channels)
	}
	if len(samples)%channels != 0 {
		return audioerr.Specf(op, "%d samples do not split into %d channels", len(samples), channels)
	}

	const bytesPerSample = 2
	dataSize := uint32(len(samples) * bytesPerSample)

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate*channels*bytesPerSample))
	binary.LittleEndian.PutUint16(header[32:34], uint16(channels*bytesPerSample))
	binary.LittleEndian.PutUint16(header[34:36], 8*bytesPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return audioerr.New(audioerr.IO, op, fmt.Errorf("%w", err))
	}

	const chunk = 8192
	buf := make([]byte, min(len(samples), chunk)*bytesPerSample)
	for i := 0; i < len(samples); i += chunk {
		part := samples[i:min(i+chunk, len(samples))]
		out := buf[:len(part)*bytesPerSample]
		for j, s := range part {
			binary.LittleEndian.PutUint16(out[j*2:], uint16(s))
		}

		if _, err := w.Write(out); err != nil {
			return audioerr.New(audioerr.IO, op, fmt.Errorf("%w", err))
		}
	}

	return nil
}
