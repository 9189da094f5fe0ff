package rtc

// Register names one of the RTC peripheral registers. The driver never
// touches memory directly; all access goes through RegisterInterface so
// that a simulated backend can stand in for real silicon.
type Register int

// Registers of the RTC peripheral plus the SIM clock-gate register that
// feeds it.
const (
	// RegClockGate is the system integration module register holding the
	// RTC clock-gate bit.
	RegClockGate Register = iota
	// RegControl is the RTC control register (oscillator setup).
	RegControl
	// RegStatus is the RTC status register (counter enable, flags).
	RegStatus
	// RegSeconds is the free-running time seconds counter.
	RegSeconds
	// RegPrescaler is the fractional (sub-second) tick counter.
	RegPrescaler
	// RegAlarm is the alarm compare register, matched against RegSeconds.
	RegAlarm
	// RegInterruptEnable is the RTC interrupt enable register.
	RegInterruptEnable
)

var registerNames = map[Register]string{
	RegClockGate:       "SIM_SCGC6",
	RegControl:         "RTC_CR",
	RegStatus:          "RTC_SR",
	RegSeconds:         "RTC_TSR",
	RegPrescaler:       "RTC_TPR",
	RegAlarm:           "RTC_TAR",
	RegInterruptEnable: "RTC_IER",
}

func (r Register) String() string {
	if name, ok := registerNames[r]; ok {
		return name
	}
	return "RTC_UNKNOWN"
}

// Register field layout. These values are a fixed hardware contract and
// must match the chip reference manual exactly.
const (
	// ClockGateRTC gates the RTC module clock in RegClockGate.
	ClockGateRTC uint32 = 1 << 29

	// ControlOscEnable turns the 32.768 kHz oscillator on.
	ControlOscEnable uint32 = 1 << 8
	// ControlCap16pF and ControlCap4pF select the oscillator load
	// capacitance. The combination matches the board's crystal.
	ControlCap16pF uint32 = 1 << 10
	ControlCap4pF  uint32 = 1 << 12

	// StatusCounterEnable starts the seconds/prescaler counters when set
	// in RegStatus. Writing the time registers requires this bit clear.
	StatusCounterEnable uint32 = 1 << 4

	// InterruptAlarm enables the alarm interrupt in RegInterruptEnable.
	InterruptAlarm uint32 = 1 << 2
)

// IRQ identifies a line at the interrupt controller.
type IRQ int

// IRQAlarm is the vector the RTC alarm asserts.
const IRQAlarm IRQ = 46

// RegisterInterface is the access substrate the driver runs on. Reads and
// writes complete synchronously; there is no error path at this level.
type RegisterInterface interface {
	Read32(reg Register) uint32
	Write32(reg Register, val uint32)
}

// InterruptController attaches and unmasks interrupt handlers, and provides
// the critical section primitive used to keep register sequences atomic
// with respect to interrupt delivery.
//
// Suspend disables interrupt delivery and returns a function restoring the
// previous state. The returned func must be called on every exit path,
// typically via defer. Suspend nests.
type InterruptController interface {
	Attach(line IRQ, handler func())
	Enable(line IRQ)
	Suspend() (resume func())
}
