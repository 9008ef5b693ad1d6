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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/beamracer/vcs2600/curated"
	"github.com/beamracer/vcs2600/hardware/tia"
	"github.com/beamracer/vcs2600/hardware/tia/video"
)

// frameBufferBytes is the size in bytes of a fully flattened TIA frame
// buffer (one RGB triple per pixel), plus room at the head for chaining
// the previous digest into the next one.
const frameBufferBytes = sha1.Size + tia.VisibleWidth*tia.VisibleHeight*3

// Video produces a SHA-1 hash of a TIA's frame buffer. The TIA owns its
// frame buffer directly (there is no pluggable pixel-renderer broadcast
// to subscribe to), so Video reads it straight off the TIA once per
// frame rather than accumulating pixels through callbacks.
//
// Note that the use of SHA-1 is fine for this application because this
// is not a cryptographic task.
type Video struct {
	digest [sha1.Size]byte
	buffer []byte
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{buffer: make([]byte, frameBufferBytes)}
}

// Hash implements digest.Digest.
func (dig Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// Snapshot folds one TIA frame buffer into the running digest. Chaining
// the previous digest into the head of the buffer means the result
// depends on every frame seen so far, not just the most recent one; call
// it once per completed frame.
func (dig *Video) Snapshot(frame *[tia.VisibleHeight][tia.VisibleWidth]video.RGB) error {
	n := copy(dig.buffer, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf("digest: video: digest error while snapshotting frame")
	}

	i := sha1.Size
	for y := 0; y < tia.VisibleHeight; y++ {
		for x := 0; x < tia.VisibleWidth; x++ {
			p := frame[y][x]
			dig.buffer[i] = p.R
			dig.buffer[i+1] = p.G
			dig.buffer[i+2] = p.B
			i += 3
		}
	}

	dig.digest = sha1.Sum(dig.buffer)
	return nil
}
