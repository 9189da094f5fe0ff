package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(alarmCmd)
}

var alarmCmd = &cobra.Command{
	Use:   "alarm [seconds]",
	Short: "Arm a one-shot alarm on the simulated RTC and tick until it fires",
	Args:  cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		ConfigureVerbosity()

		ahead := 3
		if len(args) == 1 {
			var err error
			ahead, err = strconv.Atoi(args[0])
			if err != nil || ahead <= 0 {
				log.Fatalf("seconds must be a positive integer, got %q", args[0])
			}
		}

		dev, tk, cfg, err := bootSimulated()
		if err != nil {
			log.Fatal(err)
		}

		fired := false
		target := tk.Time().Add(time.Duration(ahead) * time.Second)
		if err := tk.SetAlarm(target, func() { fired = true }); err != nil {
			log.Fatal(err)
		}
		log.Infof("alarm armed for %v", target)

		for i := 0; i < ahead && !fired; i++ {
			dev.Tick(cfg.Frequency)
			log.Debugf("ticked to %v", tk.Time())
		}

		if !fired {
			fmt.Printf("%s alarm did not fire by %v\n", color.RedString("[FAIL]"), tk.Time())
			os.Exit(1)
		}
		fmt.Printf("%s alarm fired at %v\n", color.GreenString("[ OK ]"), tk.PreciseTime())
	},
}
