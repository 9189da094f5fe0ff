/*
Package devsim is a software model of the RTC peripheral, used for
deterministic testing of the driver and by the rtccheck tool.

The model keeps the register file in memory and advances the counters only
through Tick, so a test controls exactly when the prescaler wraps and when
the alarm matches. It models a single processor core: interrupt delivery is
synchronous, and suspending interrupts defers delivery until resume.
*/
package devsim

import (
	log "github.com/sirupsen/logrus"

	"github.com/christyanmind/nuttx/rtc"
)

// Access records one register transaction, in order.
type Access struct {
	Write bool
	Reg   rtc.Register
	Val   uint32
}

// Device implements rtc.RegisterInterface and rtc.InterruptController over
// an in-memory register file.
//
// Like the hardware it models, Device assumes a single core: it is not safe
// for use from multiple goroutines.
type Device struct {
	frequency uint32

	regs      map[rtc.Register]uint32
	alarmFlag bool // alarm match latched, cleared by seconds/compare writes

	handlers  map[rtc.IRQ]func()
	enabled   map[rtc.IRQ]bool
	pending   map[rtc.IRQ]bool
	suspended int
	inService bool

	trace []Access

	// ReadHook, when set, runs before every register read. Tests use it to
	// advance the counter in the middle of a multi-register read sequence.
	ReadHook func(reg rtc.Register)
}

// New returns a Device with all registers zeroed. frequency is the
// prescaler wrap point, matching rtc.Config.Frequency.
func New(frequency uint32) *Device {
	return &Device{
		frequency: frequency,
		regs:      make(map[rtc.Register]uint32),
		handlers:  make(map[rtc.IRQ]func()),
		enabled:   make(map[rtc.IRQ]bool),
		pending:   make(map[rtc.IRQ]bool),
	}
}

// Read32 implements rtc.RegisterInterface.
func (d *Device) Read32(reg rtc.Register) uint32 {
	if d.ReadHook != nil {
		d.ReadHook(reg)
	}
	val := d.regs[reg]
	d.trace = append(d.trace, Access{Reg: reg, Val: val})
	return val
}

// Write32 implements rtc.RegisterInterface.
func (d *Device) Write32(reg rtc.Register, val uint32) {
	d.trace = append(d.trace, Access{Write: true, Reg: reg, Val: val})
	log.Debugf("devsim: %s <- %#x", reg, val)

	d.regs[reg] = val
	switch reg {
	case rtc.RegSeconds, rtc.RegAlarm:
		// Writing the seconds or compare register resets the alarm flag.
		d.alarmFlag = false
	}
	d.dispatch()
}

// Tick advances the prescaler by n ticks, carrying into the seconds counter
// at the configured frequency. No-op while the counter is stopped. The
// alarm flag latches when the seconds counter increments onto the compare
// value while the alarm interrupt is enabled in the register file.
func (d *Device) Tick(n uint32) {
	if d.regs[rtc.RegStatus]&rtc.StatusCounterEnable == 0 {
		return
	}
	prescaler := d.regs[rtc.RegPrescaler] + n
	seconds := d.regs[rtc.RegSeconds]
	for prescaler >= d.frequency {
		prescaler -= d.frequency
		seconds++
		if seconds == d.regs[rtc.RegAlarm] && d.regs[rtc.RegInterruptEnable]&rtc.InterruptAlarm != 0 {
			d.alarmFlag = true
			log.Debugf("devsim: alarm match at %d", seconds)
		}
	}
	d.regs[rtc.RegPrescaler] = prescaler
	d.regs[rtc.RegSeconds] = seconds
	d.dispatch()
}

// Attach implements rtc.InterruptController.
func (d *Device) Attach(line rtc.IRQ, handler func()) {
	d.handlers[line] = handler
}

// Enable implements rtc.InterruptController.
func (d *Device) Enable(line rtc.IRQ) {
	d.enabled[line] = true
	d.dispatch()
}

// Suspend implements rtc.InterruptController. Nested suspends are
// supported; pending interrupts are delivered when the outermost resume
// runs.
func (d *Device) Suspend() func() {
	d.suspended++
	return func() {
		d.suspended--
		if d.suspended == 0 {
			d.dispatch()
		}
	}
}

// dispatch delivers pending interrupts while delivery is possible.
func (d *Device) dispatch() {
	if d.alarmFlag && d.regs[rtc.RegInterruptEnable]&rtc.InterruptAlarm != 0 {
		d.pending[rtc.IRQAlarm] = true
	}
	// The core never takes an interrupt while suspended or while already
	// servicing one.
	if d.suspended > 0 || d.inService {
		return
	}
	for line, p := range d.pending {
		if !p || !d.enabled[line] {
			continue
		}
		handler := d.handlers[line]
		if handler == nil {
			continue
		}
		d.pending[line] = false
		log.Debugf("devsim: delivering IRQ %d", line)
		d.inService = true
		handler()
		d.inService = false
	}
}

// Trace returns a copy of the register accesses recorded so far.
func (d *Device) Trace() []Access {
	return append([]Access(nil), d.trace...)
}

// ResetTrace discards the recorded accesses.
func (d *Device) ResetTrace() {
	d.trace = nil
}
