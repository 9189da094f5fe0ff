package rtc

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

const nsPerSec = 1000000000

// DefaultFrequency is the prescaler input frequency with the standard
// 32.768 kHz watch crystal.
const DefaultFrequency = 32768

// Config describes the RTC driver configuration.
type Config struct {
	Frequency uint32 `yaml:"frequency"` // prescaler ticks per second
	HighRes   bool   `yaml:"highres"`   // expose sub-second precision
	Alarms    bool   `yaml:"alarms"`    // attach the alarm interrupt
}

// DefaultConfig returns the configuration for the common board setup.
func DefaultConfig() *Config {
	return &Config{
		Frequency: DefaultFrequency,
		HighRes:   true,
		Alarms:    true,
	}
}

// Validate Config is sane
func (c *Config) Validate() error {
	if c.Frequency == 0 {
		return fmt.Errorf("frequency must be positive")
	}
	if c.Frequency > nsPerSec {
		return fmt.Errorf("frequency %d is above 1GHz, sub-second ticks would not be representable in nanoseconds", c.Frequency)
	}
	return nil
}

// ReadConfig reads config from the file
func ReadConfig(path string) (*Config, error) {
	c := DefaultConfig()
	cData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(cData, c); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return c, nil
}
