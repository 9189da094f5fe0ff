package rtc

import (
	"errors"
	"time"
)

// Alarm errors, all recoverable by the caller.
var (
	// ErrAlarmBusy is returned by SetAlarm while an alarm is armed.
	ErrAlarmBusy = errors.New("alarm already armed")
	// ErrNoAlarm is returned by CancelAlarm when nothing is armed.
	ErrNoAlarm = errors.New("no alarm armed")
	// ErrAlarmsDisabled is returned when the driver was configured
	// without alarm support.
	ErrAlarmsDisabled = errors.New("alarms not configured")
)

// AlarmScheduler manages the single hardware alarm slot. An alarm is armed
// by SetAlarm, completed asynchronously by the alarm interrupt, or disarmed
// by CancelAlarm.
//
// The callback slot is shared between host calls and the interrupt handler,
// so both public methods mutate it inside a critical section. The handler
// itself runs with the interrupt already taken and cannot nest.
type AlarmScheduler struct {
	regs RegisterInterface
	intc InterruptController

	// callback is non-nil exactly while a hardware alarm is armed.
	callback func()
}

// NewAlarmScheduler returns an AlarmScheduler over the given registers.
// The interrupt handler is attached by TimeKeeper.Initialize.
func NewAlarmScheduler(regs RegisterInterface, intc InterruptController) *AlarmScheduler {
	return &AlarmScheduler{
		regs: regs,
		intc: intc,
	}
}

// SetAlarm arms the alarm to fire at the given time, whole-second
// granularity, and stores the callback to invoke from interrupt context
// when it does. Exactly one alarm can be outstanding; SetAlarm returns
// ErrAlarmBusy until the armed one fires or is cancelled.
//
// The callback runs in interrupt context and must not block.
func (a *AlarmScheduler) SetAlarm(at time.Time, callback func()) error {
	resume := a.intc.Suspend()
	defer resume()

	if a.callback != nil {
		return ErrAlarmBusy
	}
	a.callback = callback

	// Writing the compare register also resets a stale alarm flag.
	a.regs.Write32(RegAlarm, uint32(at.Unix()))
	a.regs.Write32(RegInterruptEnable, InterruptAlarm)
	return nil
}

// CancelAlarm disarms the outstanding alarm. The stored callback is dropped
// and will not be invoked. Returns ErrNoAlarm if nothing is armed.
func (a *AlarmScheduler) CancelAlarm() error {
	resume := a.intc.Suspend()
	defer resume()

	if a.callback == nil {
		return ErrNoAlarm
	}
	a.callback = nil

	// The compare register is inert with the interrupt disabled, no need
	// to clear it.
	a.regs.Write32(RegInterruptEnable, 0)
	return nil
}

// handleInterrupt services the alarm interrupt. Invoked by the interrupt
// controller, never directly by the host.
func (a *AlarmScheduler) handleInterrupt() {
	if a.callback != nil {
		a.callback()
		a.callback = nil
	}

	// Clear the compare register and disable the interrupt even if no
	// callback was armed, so a spurious or stale match cannot fire again.
	a.regs.Write32(RegAlarm, 0)
	a.regs.Write32(RegInterruptEnable, 0)
}
