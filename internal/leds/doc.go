// Package leds discovers LED devices through the Linux sysfs LED class
// interface.
//
// Each subdirectory of /sys/class/leds represents one LED endpoint and
// exposes a "brightness" attribute file whose trimmed contents parse as
// an unsigned 8-bit integer. The package maps that value into a boolean
// on/off state: zero is off, anything else is on, regardless of actual
// intensity.
//
// # Discovery Process
//
//  1. Enumerate the direct children of /sys/class/leds
//  2. For each child, confirm the directory is still accessible
//     (devices can be unplugged mid-scan)
//  3. Read and parse the brightness attribute
//  4. Derive the display name by replacing "::" namespace separators
//     with spaces
//
// The scan runs exactly once per program run, synchronously, and is
// strictly read-only: the package never writes to sysfs.
//
// # Error Classification
//
// Failures carry a closed Kind set (NotFound, InvalidBrightness,
// InvalidFileName, IOError) on the *Error type, recoverable with
// errors.As:
//
//	found, err := leds.Scan()
//	var scanErr *leds.Error
//	if errors.As(err, &scanErr) && scanErr.Kind == leds.KindNotFound {
//	    // device vanished between enumeration and read
//	}
//
// A single failing device fails the whole scan with no partial results.
package leds
