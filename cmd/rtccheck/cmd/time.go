package cmd

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(timeCmd)
	RootCmd.AddCommand(settimeCmd)
}

var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "Print the simulated RTC time at both granularities",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()

		dev, tk, _, err := bootSimulated()
		if err != nil {
			log.Fatal(err)
		}
		// Run the counter a little so the fractional part is non-zero.
		dev.Tick(12345)

		fmt.Printf("seconds: %v\n", tk.Time())
		fmt.Printf("precise: %v\n", tk.PreciseTime())
	},
}

var settimeCmd = &cobra.Command{
	Use:   "settime <RFC3339 time>",
	Short: "Set the simulated RTC and read the time back",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		ConfigureVerbosity()

		ts, err := time.Parse(time.RFC3339Nano, args[0])
		if err != nil {
			log.Fatalf("parsing %q: %v", args[0], err)
		}
		_, tk, _, err := bootSimulated()
		if err != nil {
			log.Fatal(err)
		}
		if err := tk.SetTime(ts); err != nil {
			log.Fatal(err)
		}

		fmt.Printf("written:   %v\n", ts)
		fmt.Printf("read back: %v\n", tk.PreciseTime())
	},
}
