package cmd

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/christyanmind/nuttx/rtc"
	"github.com/christyanmind/nuttx/rtc/devsim"
)

// RootCmd is the main entry point, subcommands register themselves in init.
var RootCmd = &cobra.Command{
	Use:   "rtccheck",
	Short: "Exercise the RTC driver against a simulated device",
}

var verbose bool
var cfgPath string

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	RootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a driver config file")
}

// ConfigureVerbosity configures log verbosity based on parsed flags. Needs to be called by any subcommand.
func ConfigureVerbosity() {
	log.SetLevel(log.InfoLevel)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

func driverConfig() (*rtc.Config, error) {
	if cfgPath == "" {
		return rtc.DefaultConfig(), nil
	}
	return rtc.ReadConfig(cfgPath)
}

// bootSimulated brings the driver up on a devsim backend and seeds it with
// the host wall clock, the way the kernel would seed the RTC at boot.
func bootSimulated() (*devsim.Device, *rtc.TimeKeeper, *rtc.Config, error) {
	cfg, err := driverConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	dev := devsim.New(cfg.Frequency)
	tk, err := rtc.NewTimeKeeper(dev, dev, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := tk.Initialize(); err != nil {
		return nil, nil, nil, fmt.Errorf("initializing driver: %w", err)
	}
	if err := tk.SetTime(time.Now()); err != nil {
		return nil, nil, nil, fmt.Errorf("seeding time: %w", err)
	}
	return dev, tk, cfg, nil
}

// Execute is the main entry point for CLI interface
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
