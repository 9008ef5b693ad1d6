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

// Command vcs2600 runs a cartridge headlessly: one positional argument
// names the ROM file. Setting VCS2600_DEBUG to a truthy value drops into
// a single-step debugger that prints the CPU's register state after each
// instruction and waits for a keypress before continuing.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/beamracer/vcs2600/cartridgeloader"
	"github.com/beamracer/vcs2600/debugger/terminal"
	"github.com/beamracer/vcs2600/hardware"
	"github.com/beamracer/vcs2600/hardware/preferences"
	"github.com/beamracer/vcs2600/hardware/television"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "vcs2600:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: vcs2600 romfile")
	}

	cartload, err := cartridgeloader.NewLoaderFromFilename(args[0])
	if err != nil {
		return err
	}

	// the preferred television spec is a saved preference; the VCS's own
	// preferences instance shares the same file
	prf, err := preferences.NewPreferences()
	if err != nil {
		return err
	}

	tv, err := television.NewTelevision(prf.TVSpec.String())
	if err != nil {
		return err
	}

	vcs, err := hardware.NewVCS(tv)
	if err != nil {
		return err
	}

	if err := vcs.AttachCartridge(&cartload); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if debugEnabled() {
		return runDebugger(ctx, vcs)
	}

	err = vcs.Run(func() bool {
		select {
		case <-ctx.Done():
			return false
		default:
			return true
		}
	})
	if err != nil {
		return err
	}

	fmt.Printf("vcs2600: %.1f fps\n", tv.MeasuredRefreshRate())
	return nil
}

// debugEnabled reports whether VCS2600_DEBUG names a truthy value.
func debugEnabled() bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv("VCS2600_DEBUG")))
	return v == "1" || v == "true" || v == "yes" || v == "on"
}

// runDebugger single-steps the machine one CPU instruction at a time,
// printing the CPU's register state after each, and waiting for a
// keypress before continuing. Any key other than "q" steps; "q" quits.
func runDebugger(ctx context.Context, vcs *hardware.VCS) error {
	term, err := terminal.Open(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer term.Close()

	term.Printf("vcs2600 debugger: any key steps one instruction, m dumps RAM, q quits\n")

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		result, err := vcs.Step()
		if err != nil {
			return err
		}
		if result.Final {
			term.Printf("%s\n", vcs.CPU.String())
		}

		key, err := term.ReadKey()
		if err != nil {
			return err
		}
		switch key {
		case 'q', 'Q':
			return nil
		case 'm', 'M':
			dumpRAM(term, vcs)
		}
	}
}

// dumpRAM prints the 128 bytes of RIOT RAM, 16 bytes per line. Peek is
// used rather than Read so the dump has no side effects on chip state.
func dumpRAM(term *terminal.Terminal, vcs *hardware.VCS) {
	for base := uint16(0x80); base < 0x100; base += 16 {
		term.Printf("%02x:", base)
		for off := uint16(0); off < 16; off++ {
			v, err := vcs.Mem.Peek(base + off)
			if err != nil {
				term.Printf(" ??")
				continue
			}
			term.Printf(" %02x", v)
		}
		term.Printf("\n")
	}
}
