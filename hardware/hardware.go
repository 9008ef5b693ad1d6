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

package hardware

import (
	"github.com/beamracer/vcs2600/cartridgeloader"
	"github.com/beamracer/vcs2600/curated"
	"github.com/beamracer/vcs2600/hardware/cpu"
	"github.com/beamracer/vcs2600/hardware/cpu/execution"
	"github.com/beamracer/vcs2600/hardware/instance"
	"github.com/beamracer/vcs2600/hardware/memory"
	"github.com/beamracer/vcs2600/hardware/riot"
	"github.com/beamracer/vcs2600/hardware/television"
	"github.com/beamracer/vcs2600/hardware/tia"
)

// Input is the one-frame's-worth of host input a frontend collects and
// feeds to VCS.ApplyInput: the four joystick directions and fire button
// for player 0, and the console switches.
type Input struct {
	Up, Down, Left, Right bool
	Fire                  bool

	Select  bool
	Reset   bool
	ColorBW bool
}

// VCS is the root of the emulation. It owns the CPU, Memory, RIOT and TIA
// and runs the scheduler that keeps them ticking in lockstep.
type VCS struct {
	Instance *instance.Instance
	TV       *television.Television

	CPU  *cpu.CPU
	Mem  *memory.Memory
	RIOT *riot.RIOT
	TIA  *tia.TIA
}

// NewVCS is the preferred method of initialisation for the VCS type. tv
// must already exist; the VCS wires itself in as tv's coordinate source
// once the TIA is built.
func NewVCS(tv *television.Television) (*VCS, error) {
	if tv == nil {
		return nil, curated.Errorf("hardware: NewVCS requires a television")
	}

	ins, err := instance.NewInstance(tv)
	if err != nil {
		return nil, err
	}

	vcs := &VCS{
		Instance: ins,
		TV:       tv,
		Mem:      memory.NewMemory(nil),
	}

	vcs.CPU = cpu.NewCPU(vcs.Mem)
	vcs.RIOT = riot.NewRIOT(vcs.Mem)
	vcs.TIA = tia.NewTIA(vcs.Mem)
	vcs.TV.SetCoordsSource(vcs.TIA.GetCoords)

	return vcs, nil
}

// AttachCartridge loads cartload's ROM data into the cartridge address
// space and resets the machine, so that execution starts from the new
// ROM's own reset vector.
func (vcs *VCS) AttachCartridge(cartload *cartridgeloader.Loader) error {
	if err := cartload.Load(); err != nil {
		return err
	}
	if err := vcs.Mem.AttachCartridge(cartload.Data); err != nil {
		return err
	}
	return vcs.Reset()
}

// Reset emulates the console's reset switch. RAM is cleared or
// randomised according to preferences; the TIA and RIOT are recreated
// fresh, which is the simplest way to guarantee every one of their
// latches returns to its power-on state; and the CPU loads PC from the
// cartridge's reset vector.
func (vcs *VCS) Reset() error {
	vcs.Mem.Reset(vcs.Instance.Prefs.RandomState.Get(), vcs.Instance.Random)

	vcs.TIA = tia.NewTIA(vcs.Mem)
	vcs.RIOT = riot.NewRIOT(vcs.Mem)
	vcs.TV.SetCoordsSource(vcs.TIA.GetCoords)

	return vcs.CPU.Reset()
}

// ApplyInput feeds the joystick, fire button and console switch state of
// in into the RIOT's ports and the TIA's INPT4 latch. A frontend calls
// this once per frame (or whenever input changes) before stepping.
func (vcs *VCS) ApplyInput(in Input) {
	var joystick uint8
	if in.Up {
		joystick |= riot.JoystickUp
	}
	if in.Down {
		joystick |= riot.JoystickDown
	}
	if in.Left {
		joystick |= riot.JoystickLeft
	}
	if in.Right {
		joystick |= riot.JoystickRight
	}
	vcs.RIOT.SetJoystick(joystick)

	var switches uint8
	if in.Select {
		switches |= riot.SwitchSelect
	}
	if in.Reset {
		switches |= riot.SwitchReset
	}
	if in.ColorBW {
		switches |= riot.SwitchColor
	}
	vcs.RIOT.SetConsoleSwitches(switches)

	vcs.TIA.SetP0Fire(in.Fire)
}

// microStep advances the RIOT and TIA by one CPU cycle's worth of
// ticks: one RIOT tick to every three TIA ticks, matching the 1:3 clock
// ratio between the 6507 and the TIA.
func (vcs *VCS) microStep() {
	vcs.RIOT.Tick()
	vcs.TIA.Tick()
	vcs.TIA.Tick()
	vcs.TIA.Tick()
}

// Step advances the machine by one CPU instruction, or, if the CPU is
// currently halted on WSYNC, by one CPU cycle's worth of RIOT/TIA
// ticks so the halt can eventually clear. The TIA and RIOT are always
// advanced in lockstep with however many CPU cycles actually elapsed,
// whether or not the CPU itself executed anything this call.
func (vcs *VCS) Step() (execution.Result, error) {
	if vcs.TIA.CPUHalted() {
		vcs.microStep()
		return execution.Result{}, nil
	}

	result, err := vcs.CPU.ExecuteInstruction()
	if err != nil {
		return result, err
	}

	for i := 0; i < result.Cycles; i++ {
		vcs.microStep()
	}

	return result, nil
}

// RunFrame steps the machine until the TIA reports one more complete
// frame than when RunFrame was called, then paces output to the
// television's refresh rate.
func (vcs *VCS) RunFrame() error {
	target := vcs.TIA.FrameComplete + 1
	for vcs.TIA.FrameComplete < target {
		if _, err := vcs.Step(); err != nil {
			return err
		}
	}
	vcs.TV.NewFrame()
	return nil
}

// Run steps the machine frame by frame for as long as continueCheck
// returns true. A nil continueCheck runs forever. The caller is
// responsible for wiring continueCheck to whatever cancellation signal
// (a context, a GUI close event) it needs.
func (vcs *VCS) Run(continueCheck func() bool) error {
	for continueCheck == nil || continueCheck() {
		if err := vcs.RunFrame(); err != nil {
			return err
		}
	}
	return nil
}
