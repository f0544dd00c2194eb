package leds

import (
	"os"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/glimpse-tui/glimpse/internal/logging"
)

// Scan enumerates every LED under SysClassLEDs and returns one record
// per device, in directory enumeration order.
//
// Any single device failing to construct fails the whole scan with no
// partial results. This keeps the reported error unambiguous at the
// cost of one misbehaving device hiding the rest; see DESIGN.md for
// the rationale behind keeping this policy.
func Scan() ([]LED, error) {
	return scan(SysClassLEDs)
}

func scan(root string) ([]LED, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, newError(KindIOError, "", err)
	}

	found := make([]LED, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !utf8.ValidString(name) {
			return nil, newError(KindInvalidFileName, name, nil)
		}

		led, err := newLED(root, name)
		if err != nil {
			return nil, err
		}

		logging.Debug("Discovered LED",
			zap.String("file_name", led.FileName),
			zap.Bool("on", led.On),
		)
		found = append(found, led)
	}

	logging.Debug("Scan complete", zap.Int("count", len(found)))
	return found, nil
}
