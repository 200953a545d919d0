// Package platform declares the services a board supplies to the firmware:
// an output port, a periodic timer, the softAP half of the radio and the
// callback runtime that delivers init-done and wireless events.
//
// The firmware never talks to registers or SDK calls directly. Boards live in
// sub-packages:
//   - platform/picow - Raspberry Pi Pico W (//go:build tinygo)
//   - platform/sim   - deterministic host simulation (//go:build !tinygo && !baremetal)
//   - platform/loop  - real-time callback dispatcher shared by boards
package platform

import "time"

// GPIOPort is the output half of a GPIO bank.
type GPIOPort interface {
	// Output returns the output register. Bit n is the level driven on pin n.
	Output() uint32
	// SetClear drives every bit in set high and every bit in clear low.
	SetClear(set, clear uint32)
}

// Timer is a single software timer handle. Its callback runs on the
// runtime's dispatch thread.
//
// Arming a timer that is already armed is undefined on real hardware
// (the SDK links it into its timer list twice). Callers must Disarm first.
type Timer interface {
	SetFunc(fn func())
	Arm(interval time.Duration, repeat bool)
	// Disarm stops the timer. It is a no-op on an idle timer.
	Disarm()
}

// Runtime is the callback dispatcher of a board. There is no preemption:
// a callback runs to completion before the next one starts.
type Runtime interface {
	// OnInitDone registers fn to run once after board bring-up completes.
	OnInitDone(fn func())
	// SetEventHandler registers the wireless event callback. Events that
	// arrive before registration are dropped.
	SetEventHandler(fn func(Event))
	// Yield briefly hands the thread back to pending board work.
	Yield()
}

// SoftAP reads and commits the access-point configuration of the radio.
type SoftAP interface {
	SoftAPConfig() (SoftAPConfig, error)
	SetSoftAPConfig(cfg SoftAPConfig) error
}

// Bit returns the GPIO mask for pin n.
func Bit(n uint8) uint32 { return 1 << n }
