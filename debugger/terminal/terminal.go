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

// Package terminal wraps "github.com/pkg/term/termios" to put the
// debugger's input into cbreak mode, so VCS2600_DEBUG can single-step the
// machine on a bare keypress rather than waiting for a line of input.
package terminal

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal puts os.Stdin into cbreak mode for the lifetime of a debug
// session and restores the original mode on Close.
type Terminal struct {
	input  *os.File
	output *os.File

	canonAttr  unix.Termios
	cbreakAttr unix.Termios
}

// Open switches the input file into cbreak mode: keystrokes are
// available to ReadKey immediately, without waiting for a newline, and
// without being echoed.
func Open(input, output *os.File) (*Terminal, error) {
	if input == nil || output == nil {
		return nil, fmt.Errorf("terminal: input and output files are required")
	}

	t := &Terminal{input: input, output: output}

	if err := termios.Tcgetattr(t.input.Fd(), &t.canonAttr); err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	t.cbreakAttr = t.canonAttr
	termios.Cfmakecbreak(&t.cbreakAttr)

	if err := termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.cbreakAttr); err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}

	return t, nil
}

// Close restores the input file's original (canonical) terminal mode.
func (t *Terminal) Close() {
	_ = termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.canonAttr)
}

// ReadKey blocks for a single keystroke and returns it.
func (t *Terminal) ReadKey() (byte, error) {
	buf := make([]byte, 1)
	if _, err := t.input.Read(buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// Print writes s to the terminal's output file.
func (t *Terminal) Print(s string) {
	_, _ = t.output.WriteString(s)
}

// Printf formats and writes to the terminal's output file.
func (t *Terminal) Printf(format string, a ...interface{}) {
	t.Print(fmt.Sprintf(format, a...))
}
