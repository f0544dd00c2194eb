package leds

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// SysClassLEDs is the Linux device-class directory for LED endpoints.
// Each subdirectory represents one LED and exposes attribute files
// such as "brightness" as plain text.
const SysClassLEDs = "/sys/class/leds"

// LED represents one discovered LED endpoint. Records are immutable
// after construction for the lifetime of a run.
type LED struct {
	// FileName is the raw sysfs directory name (e.g., "input4::capslock").
	// It uniquely identifies the LED for the process lifetime.
	FileName string `json:"file_name" yaml:"file_name"`

	// Name is the display name: FileName with every "::" namespace
	// separator replaced by a single space. Presentation only.
	Name string `json:"name" yaml:"name"`

	// On is true when the brightness attribute parsed greater than zero.
	On bool `json:"on" yaml:"on"`
}

// New constructs an LED record for the named subdirectory of
// SysClassLEDs. Devices can be removed between enumeration and read,
// so a vanished directory is reported as KindNotFound rather than
// treated as fatal corruption.
func New(fileName string) (LED, error) {
	return newLED(SysClassLEDs, fileName)
}

func newLED(root, fileName string) (LED, error) {
	ledPath := filepath.Join(root, fileName)

	if _, err := os.ReadDir(ledPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return LED{}, newError(KindNotFound, fileName, err)
		}
		return LED{}, newError(KindIOError, fileName, err)
	}

	data, err := os.ReadFile(filepath.Join(ledPath, "brightness"))
	if err != nil {
		return LED{}, newError(KindIOError, fileName, err)
	}

	brightness, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 8)
	if err != nil {
		return LED{}, newError(KindInvalidBrightness, fileName, err)
	}

	return LED{
		FileName: fileName,
		Name:     strings.ReplaceAll(fileName, "::", " "),
		On:       brightness > 0,
	}, nil
}

// State returns a human-readable on/off label.
func (l LED) State() string {
	if l.On {
		return "on"
	}
	return "off"
}
