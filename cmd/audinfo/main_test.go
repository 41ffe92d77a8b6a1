// SPDX-License-Identifier: EPL-2.0

package main

import (
	"math"
	"testing"
)

func TestRMSDB(t *testing.T) {
	t.Parallel()

	samples := []float64{
		1, -1, 1, -1, // full-scale square
		0.5, -0.5, 0.5, -0.5,
		0, 0, 0, 0,
	}

	got, err := rmsDB(samples, 3, 4)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{0, 20 * math.Log10(0.5), -120}
	for c := range want {
		if math.Abs(got[c]-want[c]) > 1e-9 {
			t.Errorf("rmsDB()[%d] = %v, want %v", c, got[c], want[c])
		}
	}
}
