// This file is part of VCS2600.
//
// VCS2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// VCS2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VCS2600.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter paces frame production to a television's refresh rate,
// and measures the rate actually achieved so a host can report it (or
// decide the emulation is falling behind).
package limiter

import (
	"sync/atomic"
	"time"
)

// measurementWindow is the number of frames averaged over before Measured
// is updated. Too small and the measured value is noisy; too large and it
// reacts slowly to a SetRefreshRate change.
const measurementWindow = 30

// Limiter paces CheckFrame() calls to a target frame rate using a
// time.Ticker, and reports the rate actually achieved via Measured.
type Limiter struct {
	ticker *time.Ticker

	// Measured holds the most recently computed actual frame rate, as a
	// float32. It is safe to read concurrently with calls to CheckFrame
	// and MeasureActual.
	Measured atomic.Value

	windowStart time.Time
	windowCount int
}

// NewLimiter creates a Limiter ticking at 60Hz (NTSC) until SetRefreshRate
// is called.
func NewLimiter() *Limiter {
	lmtr := &Limiter{}
	lmtr.Measured.Store(float32(0))
	lmtr.SetRefreshRate(60.0)
	return lmtr
}

// SetRefreshRate reconfigures the limiter's target frame rate, restarting
// the measurement window.
func (lmtr *Limiter) SetRefreshRate(hz float32) {
	period := time.Duration(float64(time.Second) / float64(hz))

	if lmtr.ticker == nil {
		lmtr.ticker = time.NewTicker(period)
	} else {
		lmtr.ticker.Reset(period)
	}

	lmtr.windowStart = time.Now()
	lmtr.windowCount = 0
}

// CheckFrame blocks until it is time to present the next frame.
func (lmtr *Limiter) CheckFrame() {
	<-lmtr.ticker.C
}

// MeasureActual should be called once per frame, after CheckFrame. Every
// measurementWindow frames it recomputes Measured from the wall-clock time
// actually elapsed.
func (lmtr *Limiter) MeasureActual() {
	lmtr.windowCount++
	if lmtr.windowCount < measurementWindow {
		return
	}

	elapsed := time.Since(lmtr.windowStart).Seconds()
	if elapsed > 0 {
		lmtr.Measured.Store(float32(float64(lmtr.windowCount) / elapsed))
	}

	lmtr.windowStart = time.Now()
	lmtr.windowCount = 0
}
