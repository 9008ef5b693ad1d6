package memory

import "testing"

func TestCartridgeWindow(t *testing.T) {
	cart := NewCart()
	if cart.origin != 0x1000 || cart.memtop != 0x1fff {
		t.Errorf("cartridge window misplaced: %#04x-%#04x", cart.origin, cart.memtop)
	}
	if bankSize != cart.memtop-cart.origin+1 {
		t.Errorf("cartridge bank size inconsistent with window bounds")
	}
}
