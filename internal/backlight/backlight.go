// Package backlight drives the panel backlight.
package backlight

import (
	"fmt"
	"strings"
	"sync"

	"aura_display/internal/logger"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

// Driver sets the backlight level. 0 is off, 255 is full brightness.
type Driver interface {
	Set(level uint8) error
	Close() error
}

// Config selects the driver. Driver is "periph" or "log".
type Config struct {
	Driver    string
	Pin       string
	Frequency physic.Frequency
}

const (
	DriverPeriph = "periph"
	DriverLog    = "log"

	defaultPin       = "GPIO13"
	defaultFrequency = 25 * physic.KiloHertz
)

// New opens the configured driver. The log driver is used when none is set.
func New(cfg Config, log *logger.Logger) (Driver, error) {
	if log == nil {
		log = logger.Nop()
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverLog:
		return NewLog(log), nil
	case DriverPeriph, "pwm":
		return OpenPWM(cfg.Pin, cfg.Frequency, log)
	default:
		return nil, fmt.Errorf("backlight: unknown driver %q", cfg.Driver)
	}
}

// DutyFor maps a 0-255 level onto the full PWM duty range.
func DutyFor(level uint8) gpio.Duty {
	return gpio.Duty(int64(gpio.DutyMax) * int64(level) / 255)
}

// pwmPin is the part of gpio.PinIO the driver uses.
type pwmPin interface {
	Name() string
	Out(l gpio.Level) error
	PWM(duty gpio.Duty, f physic.Frequency) error
	Halt() error
}

// PWM drives a PWM-capable GPIO pin.
type PWM struct {
	mu   sync.Mutex
	pin  pwmPin
	freq physic.Frequency
	log  *logger.Logger
}

// OpenPWM initializes the host drivers and looks the pin up by name.
func OpenPWM(name string, freq physic.Frequency, log *logger.Logger) (*PWM, error) {
	if name == "" {
		name = defaultPin
	}
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("backlight: host init: %w", err)
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("backlight: pin %q not found", name)
	}
	return newPWM(p, freq, log), nil
}

func newPWM(p pwmPin, freq physic.Frequency, log *logger.Logger) *PWM {
	if freq <= 0 {
		freq = defaultFrequency
	}
	return &PWM{pin: p, freq: freq, log: log}
}

func (b *PWM) Set(level uint8) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var err error
	switch level {
	case 0:
		err = b.pin.Out(gpio.Low)
	case 255:
		err = b.pin.Out(gpio.High)
	default:
		err = b.pin.PWM(DutyFor(level), b.freq)
	}
	if err != nil {
		return fmt.Errorf("backlight: set %s to %d: %w", b.pin.Name(), level, err)
	}
	b.log.Debugw("backlight_set", "pin", b.pin.Name(), "level", level)
	return nil
}

// Close turns the backlight off and releases the pin.
func (b *PWM) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.pin.Out(gpio.Low); err != nil {
		return err
	}
	return b.pin.Halt()
}

// Log is a driver for hosts without a backlight pin; it only records the level.
type Log struct {
	mu    sync.Mutex
	level uint8
	log   *logger.Logger
}

func NewLog(log *logger.Logger) *Log { return &Log{log: log} }

func (b *Log) Set(level uint8) error {
	b.mu.Lock()
	b.level = level
	b.mu.Unlock()
	b.log.Infow("backlight_set", "driver", DriverLog, "level", level)
	return nil
}

// Level returns the last level set.
func (b *Log) Level() uint8 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.level
}

func (b *Log) Close() error { return nil }
