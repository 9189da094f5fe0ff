/*
Package rtc drives a Kinetis-style real time clock peripheral.

The peripheral keeps time in two free-running hardware registers: a seconds
counter and a prescaler counting fractional ticks at the oscillator
frequency. No time value is held in software; every read goes to the
registers, every write reprograms them.

Supported operations
  - bringing the peripheral up once at boot (clock gate, oscillator,
    counter enable) through TimeKeeper.Initialize
  - reading the time at whole-second or sub-second granularity, with the
    prescaler wrap-around resolved by re-reading until consistent
  - setting the time, with the stop/write/restart sequence kept atomic
    against concurrent readers
  - arming and cancelling the single one-shot alarm, completed from
    interrupt context through a stored callback

Hardware access goes through RegisterInterface and InterruptController, so
the package runs unmodified against real registers or against the simulated
backend in rtc/devsim.
*/
package rtc
