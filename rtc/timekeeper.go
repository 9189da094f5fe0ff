package rtc

import (
	"fmt"
	"time"
)

// TimeKeeper brings the counter hardware up and provides consistent reads
// and writes of wall-clock time while the counter free-runs underneath.
type TimeKeeper struct {
	regs RegisterInterface
	intc InterruptController
	cfg  Config

	enabled bool
	alarm   *AlarmScheduler
}

// NewTimeKeeper returns a TimeKeeper driving the registers behind regs.
// The hardware is not touched until Initialize.
func NewTimeKeeper(regs RegisterInterface, intc InterruptController, cfg *Config) (*TimeKeeper, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t := &TimeKeeper{
		regs: regs,
		intc: intc,
		cfg:  *cfg,
	}
	if cfg.Alarms {
		t.alarm = NewAlarmScheduler(regs, intc)
	}
	return t, nil
}

// Initialize configures and starts the counter hardware. It is called once
// during boot; calling it a second time on a running clock is not supported.
func (t *TimeKeeper) Initialize() error {
	// Ungate the module clock.
	gate := t.regs.Read32(RegClockGate)
	t.regs.Write32(RegClockGate, gate|ClockGateRTC)

	// Stop the counters before touching anything else.
	t.regs.Write32(RegStatus, 0)

	t.regs.Write32(RegControl, ControlCap16pF|ControlCap4pF|ControlOscEnable)

	t.regs.Write32(RegInterruptEnable, 0)

	// Writing the seconds register resets stale flags. Writing back the
	// value just read keeps whatever time the battery domain retained.
	t.regs.Write32(RegSeconds, t.regs.Read32(RegSeconds))

	if t.alarm != nil {
		t.intc.Attach(IRQAlarm, t.alarm.handleInterrupt)
		t.intc.Enable(IRQAlarm)
	}

	t.regs.Write32(RegStatus, StatusCounterEnable)

	t.enabled = true
	return nil
}

// Enabled reports whether Initialize has started the counter.
func (t *TimeKeeper) Enabled() bool {
	return t.enabled
}

// Time returns the current time at whole-second granularity. A single
// register read, safe from any context.
func (t *TimeKeeper) Time() time.Time {
	return time.Unix(int64(t.regs.Read32(RegSeconds)), 0)
}

// PreciseTime returns the current time including the sub-second fraction.
// Falls back to whole-second granularity when high resolution is not
// configured.
//
// The prescaler can carry into the seconds register between any two reads,
// so the pair is re-read until the prescaler did not wrap across the
// seconds read. The loop runs with interrupts suspended so it cannot be
// stalled across multiple wraps.
func (t *TimeKeeper) PreciseTime() time.Time {
	if !t.cfg.HighRes {
		return t.Time()
	}

	resume := t.intc.Suspend()
	defer resume()

	var ticks, seconds uint32
	for {
		ticks = t.regs.Read32(RegPrescaler)
		seconds = t.regs.Read32(RegSeconds)
		again := t.regs.Read32(RegPrescaler)
		if ticks <= again {
			break
		}
	}
	return time.Unix(int64(seconds), int64(ticks)*(nsPerSec/int64(t.cfg.Frequency)))
}

// SetTime sets the counter to ts, truncated to the prescaler tick.
//
// The counter must be stopped for the time registers to accept writes, and
// the prescaler must be written before the seconds register or the
// hardware latches a stale fraction. The whole sequence runs with
// interrupts suspended so no reader can observe the stopped counter.
func (t *TimeKeeper) SetTime(ts time.Time) error {
	seconds := ts.Unix()
	if seconds < 0 {
		return fmt.Errorf("time %v is before the counter epoch", ts)
	}
	ticks := uint32(int64(ts.Nanosecond()) / (nsPerSec / int64(t.cfg.Frequency)))
	if ticks >= t.cfg.Frequency {
		// Truncation of the tick period can push the last nanoseconds of
		// a second past the prescaler range; saturate at the final tick.
		ticks = t.cfg.Frequency - 1
	}

	resume := t.intc.Suspend()
	defer resume()

	t.regs.Write32(RegStatus, 0)
	t.regs.Write32(RegPrescaler, ticks)
	t.regs.Write32(RegSeconds, uint32(seconds))
	t.regs.Write32(RegStatus, StatusCounterEnable)
	return nil
}

// SetAlarm arms the single alarm slot, see AlarmScheduler.SetAlarm.
func (t *TimeKeeper) SetAlarm(at time.Time, callback func()) error {
	if t.alarm == nil {
		return ErrAlarmsDisabled
	}
	return t.alarm.SetAlarm(at, callback)
}

// CancelAlarm disarms the alarm slot, see AlarmScheduler.CancelAlarm.
func (t *TimeKeeper) CancelAlarm() error {
	if t.alarm == nil {
		return ErrAlarmsDisabled
	}
	return t.alarm.CancelAlarm()
}
