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

package cartridgeloader

import (
	"bytes"
	"crypto/md5"
	"crypto/sha1"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beamracer/vcs2600/logger"
)

// Loader abstracts loading of cartridge ROM data from disk or from an
// embedded byte slice.
type Loader struct {
	io.ReadSeeker

	// the name to use for the cartridge represented by Loader, for display
	// purposes
	Name string

	// filename of the cartridge on disk. empty for embedded data.
	Filename string

	// hashes of the cartridge data, set by NewLoaderFromData() or by Load().
	// no value set beforehand is checked against the data; Load()
	// overwrites it with the hash of the data that was actually read.
	HashSHA1 string
	HashMD5  string

	// cartridge data, set once Load() has been called
	Data []byte

	data     *bytes.Reader
	embedded bool
}

// NewLoaderFromFilename is the preferred method of initialisation for the
// Loader type when loading data from a file on disk.
func NewLoaderFromFilename(filename string) (Loader, error) {
	if strings.TrimSpace(filename) == "" {
		return Loader{}, fmt.Errorf("cartridgeloader: no filename")
	}

	return Loader{
		Filename: filename,
		Name:     NameFromFilename(filename),
	}, nil
}

// NewLoaderFromData is the preferred method of initialisation for the
// Loader type when loading data already held in memory, for example a
// go:embed'd test ROM.
func NewLoaderFromData(name string, data []byte) (Loader, error) {
	if len(data) == 0 {
		return Loader{}, fmt.Errorf("cartridgeloader: embedded data is empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Loader{}, fmt.Errorf("cartridgeloader: no name for embedded data")
	}

	ld := Loader{
		Name:     name,
		Filename: name,
		Data:     data,
		data:     bytes.NewReader(data),
		embedded: true,
		HashSHA1: fmt.Sprintf("%x", sha1.Sum(data)),
		HashMD5:  fmt.Sprintf("%x", md5.Sum(data)),
	}
	return ld, nil
}

// Load reads the cartridge data into memory, if it hasn't been already,
// and records its SHA1/MD5 hashes.
func (ld *Loader) Load() error {
	if ld.embedded || len(ld.Data) > 0 {
		return nil
	}

	f, err := os.Open(ld.Filename)
	if err != nil {
		return fmt.Errorf("cartridgeloader: %w", err)
	}
	defer f.Close()

	ld.Data, err = io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("cartridgeloader: %w", err)
	}

	if len(ld.Data) != 2048 && len(ld.Data) != 4096 {
		logger.Logf("cartridgeloader", "unusual cartridge size (%d bytes)", len(ld.Data))
	}

	ld.data = bytes.NewReader(ld.Data)
	ld.HashSHA1 = fmt.Sprintf("%x", sha1.Sum(ld.Data))
	ld.HashMD5 = fmt.Sprintf("%x", md5.Sum(ld.Data))

	return nil
}

// Read implements the io.Reader interface.
func (ld *Loader) Read(p []byte) (int, error) {
	if ld.data == nil {
		return 0, io.EOF
	}
	return ld.data.Read(p)
}

// Seek implements the io.Seeker interface.
func (ld *Loader) Seek(offset int64, whence int) (int64, error) {
	if ld.data == nil {
		return 0, nil
	}
	return ld.data.Seek(offset, whence)
}

// Close releases any resources held by the Loader. Present for symmetry
// with io.Closer; neither loading path keeps a file open between calls.
func (ld *Loader) Close() error {
	return nil
}
