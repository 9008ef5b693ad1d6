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

// Package cartridgeloader is used to load cartridge data so that it can be
// used with the cartridge package.
//
// Only flat (non bank-switched) images are supported: a file of 2048 bytes
// maps as an Atari 2k cartridge and a file of 4096 bytes as an Atari 4k
// cartridge. The recognised file extensions (BIN, ROM, A26, 2K, 4K) are
// used only for display-name purposes; the mapping itself is always decided
// by file size.
//
// # Hashes
//
// NewLoaderFromData() creates a SHA1 and MD5 hash of the data straight
// away; a loader created with NewLoaderFromFilename() gets its hashes when
// Load() reads the file. The cartridge package records the SHA1 hash for
// identification purposes.
package cartridgeloader
