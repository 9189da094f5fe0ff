package rtc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupMocks(t *testing.T) (*MockRegisterInterface, *MockInterruptController) {
	ctrl := gomock.NewController(t)
	return NewMockRegisterInterface(ctrl), NewMockInterruptController(ctrl)
}

func TestInitializeSequence(t *testing.T) {
	regs, intc := setupMocks(t)

	gomock.InOrder(
		// Clock gate is read-modify-write, other module bits preserved.
		regs.EXPECT().Read32(RegClockGate).Return(uint32(1<<3)),
		regs.EXPECT().Write32(RegClockGate, uint32(1<<3)|ClockGateRTC),
		// Counters stopped before oscillator setup.
		regs.EXPECT().Write32(RegStatus, uint32(0)),
		regs.EXPECT().Write32(RegControl, ControlCap16pF|ControlCap4pF|ControlOscEnable),
		regs.EXPECT().Write32(RegInterruptEnable, uint32(0)),
		// Seconds register rewritten with its own value to reset flags.
		regs.EXPECT().Read32(RegSeconds).Return(uint32(1234)),
		regs.EXPECT().Write32(RegSeconds, uint32(1234)),
		intc.EXPECT().Attach(IRQAlarm, gomock.Any()),
		intc.EXPECT().Enable(IRQAlarm),
		// Counter started last.
		regs.EXPECT().Write32(RegStatus, StatusCounterEnable),
	)

	tk, err := NewTimeKeeper(regs, intc, nil)
	require.NoError(t, err)
	require.False(t, tk.Enabled())

	require.NoError(t, tk.Initialize())
	require.True(t, tk.Enabled())
}

func TestInitializeWithoutAlarms(t *testing.T) {
	regs, intc := setupMocks(t)

	// No Attach/Enable calls expected when alarms are disabled.
	gomock.InOrder(
		regs.EXPECT().Read32(RegClockGate).Return(uint32(0)),
		regs.EXPECT().Write32(RegClockGate, ClockGateRTC),
		regs.EXPECT().Write32(RegStatus, uint32(0)),
		regs.EXPECT().Write32(RegControl, ControlCap16pF|ControlCap4pF|ControlOscEnable),
		regs.EXPECT().Write32(RegInterruptEnable, uint32(0)),
		regs.EXPECT().Read32(RegSeconds).Return(uint32(0)),
		regs.EXPECT().Write32(RegSeconds, uint32(0)),
		regs.EXPECT().Write32(RegStatus, StatusCounterEnable),
	)

	tk, err := NewTimeKeeper(regs, intc, &Config{Frequency: DefaultFrequency})
	require.NoError(t, err)
	require.NoError(t, tk.Initialize())

	require.ErrorIs(t, tk.SetAlarm(time.Unix(100, 0), func() {}), ErrAlarmsDisabled)
	require.ErrorIs(t, tk.CancelAlarm(), ErrAlarmsDisabled)
}

func TestSetTimeWriteOrdering(t *testing.T) {
	regs, intc := setupMocks(t)

	resumed := false
	intc.EXPECT().Suspend().Return(func() { resumed = true })
	gomock.InOrder(
		regs.EXPECT().Write32(RegStatus, uint32(0)),
		// Prescaler strictly before seconds.
		regs.EXPECT().Write32(RegPrescaler, uint32(16384)),
		regs.EXPECT().Write32(RegSeconds, uint32(1600000000)),
		regs.EXPECT().Write32(RegStatus, StatusCounterEnable),
	)

	tk, err := NewTimeKeeper(regs, intc, &Config{Frequency: DefaultFrequency, HighRes: true})
	require.NoError(t, err)

	require.NoError(t, tk.SetTime(time.Unix(1600000000, 500000000)))
	require.True(t, resumed, "interrupts must be restored after SetTime")
}

func TestSetTimeSaturatesLastTick(t *testing.T) {
	regs, intc := setupMocks(t)

	intc.EXPECT().Suspend().Return(func() {})
	gomock.InOrder(
		regs.EXPECT().Write32(RegStatus, uint32(0)),
		// 999999999ns lands past the prescaler range with truncated tick
		// periods; the write saturates at frequency-1.
		regs.EXPECT().Write32(RegPrescaler, uint32(DefaultFrequency-1)),
		regs.EXPECT().Write32(RegSeconds, uint32(42)),
		regs.EXPECT().Write32(RegStatus, StatusCounterEnable),
	)

	tk, err := NewTimeKeeper(regs, intc, &Config{Frequency: DefaultFrequency, HighRes: true})
	require.NoError(t, err)
	require.NoError(t, tk.SetTime(time.Unix(42, 999999999)))
}

func TestSetTimeBeforeEpoch(t *testing.T) {
	regs, intc := setupMocks(t)

	tk, err := NewTimeKeeper(regs, intc, &Config{Frequency: DefaultFrequency})
	require.NoError(t, err)
	require.Error(t, tk.SetTime(time.Unix(-1, 0)))
}

func TestTimeSingleRead(t *testing.T) {
	regs, intc := setupMocks(t)

	regs.EXPECT().Read32(RegSeconds).Return(uint32(1700000000))

	tk, err := NewTimeKeeper(regs, intc, &Config{Frequency: DefaultFrequency})
	require.NoError(t, err)
	require.Equal(t, time.Unix(1700000000, 0), tk.Time())
}

func TestPreciseTimeLowResFallback(t *testing.T) {
	regs, intc := setupMocks(t)

	// Single seconds read, no prescaler access and no critical section.
	regs.EXPECT().Read32(RegSeconds).Return(uint32(500))

	tk, err := NewTimeKeeper(regs, intc, &Config{Frequency: DefaultFrequency, HighRes: false})
	require.NoError(t, err)
	require.Equal(t, time.Unix(500, 0), tk.PreciseTime())
}

func TestPreciseTimeSuspendsInterrupts(t *testing.T) {
	regs, intc := setupMocks(t)

	resumed := false
	gomock.InOrder(
		intc.EXPECT().Suspend().Return(func() { resumed = true }),
		regs.EXPECT().Read32(RegPrescaler).Return(uint32(100)),
		regs.EXPECT().Read32(RegSeconds).Return(uint32(900)),
		regs.EXPECT().Read32(RegPrescaler).Return(uint32(102)),
	)

	tk, err := NewTimeKeeper(regs, intc, &Config{Frequency: DefaultFrequency, HighRes: true})
	require.NoError(t, err)

	got := tk.PreciseTime()
	require.Equal(t, int64(900), got.Unix())
	// Nanoseconds come from the prescaler read paired with the seconds read.
	require.Equal(t, 100*(1000000000/DefaultFrequency), got.Nanosecond())
	require.True(t, resumed, "interrupts must be restored after PreciseTime")
}

func TestNewTimeKeeperBadConfig(t *testing.T) {
	regs, intc := setupMocks(t)

	_, err := NewTimeKeeper(regs, intc, &Config{Frequency: 0})
	require.Error(t, err)

	_, err = NewTimeKeeper(regs, intc, &Config{Frequency: 2000000000})
	require.Error(t, err)
}
