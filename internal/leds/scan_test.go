package leds

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeLED creates a fake sysfs LED directory with the given brightness
// attribute content.
func writeLED(t *testing.T, root, name, brightness string) {
	t.Helper()

	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create LED dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "brightness"), []byte(brightness), 0o644); err != nil {
		t.Fatalf("failed to write brightness: %v", err)
	}
}

// scanKind extracts the error Kind, failing the test if err is not a
// *Error.
func scanKind(t *testing.T, err error) Kind {
	t.Helper()

	var scanErr *Error
	if !errors.As(err, &scanErr) {
		t.Fatalf("error = %v, want *leds.Error", err)
	}
	return scanErr.Kind
}

func TestScan_WellFormed(t *testing.T) {
	root := t.TempDir()
	writeLED(t, root, "input4::capslock", "0\n")
	writeLED(t, root, "mmc0", "1")
	writeLED(t, root, "tpacpi::power", "255\n")

	found, err := scan(root)
	if err != nil {
		t.Fatalf("scan() error = %v", err)
	}

	if len(found) != 3 {
		t.Fatalf("scan() returned %d LEDs, want 3", len(found))
	}

	// os.ReadDir returns entries sorted by name
	want := []LED{
		{FileName: "input4::capslock", Name: "input4 capslock", On: false},
		{FileName: "mmc0", Name: "mmc0", On: true},
		{FileName: "tpacpi::power", Name: "tpacpi power", On: true},
	}

	for i, led := range found {
		if led != want[i] {
			t.Errorf("scan()[%d] = %+v, want %+v", i, led, want[i])
		}
	}
}

func TestScan_DisplayNameOrderAndState(t *testing.T) {
	root := t.TempDir()
	writeLED(t, root, "alpha::on", "5")
	writeLED(t, root, "beta::off", "0")

	found, err := scan(root)
	if err != nil {
		t.Fatalf("scan() error = %v", err)
	}

	want := []LED{
		{FileName: "alpha::on", Name: "alpha on", On: true},
		{FileName: "beta::off", Name: "beta off", On: false},
	}
	if len(found) != len(want) {
		t.Fatalf("scan() returned %d LEDs, want %d", len(found), len(want))
	}
	for i := range want {
		if found[i] != want[i] {
			t.Errorf("scan()[%d] = %+v, want %+v", i, found[i], want[i])
		}
	}
}

func TestScan_BrightnessStates(t *testing.T) {
	tests := []struct {
		name       string
		brightness string
		wantOn     bool
	}{
		{
			name:       "zero is off",
			brightness: "0",
			wantOn:     false,
		},
		{
			name:       "one is on",
			brightness: "1",
			wantOn:     true,
		},
		{
			name:       "max is on",
			brightness: "255",
			wantOn:     true,
		},
		{
			name:       "surrounding whitespace is trimmed",
			brightness: " 7\n",
			wantOn:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeLED(t, root, "status", tt.brightness)

			found, err := scan(root)
			if err != nil {
				t.Fatalf("scan() error = %v", err)
			}
			if len(found) != 1 {
				t.Fatalf("scan() returned %d LEDs, want 1", len(found))
			}
			if found[0].On != tt.wantOn {
				t.Errorf("On = %v, want %v (brightness %q)", found[0].On, tt.wantOn, tt.brightness)
			}
		})
	}
}

func TestScan_InvalidBrightness(t *testing.T) {
	tests := []struct {
		name       string
		brightness string
	}{
		{name: "non-numeric", brightness: "glow"},
		{name: "above 8-bit range", brightness: "256"},
		{name: "negative", brightness: "-1"},
		{name: "empty", brightness: ""},
		{name: "trailing garbage", brightness: "5x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeLED(t, root, "good", "1")
			writeLED(t, root, "weird", tt.brightness)

			found, err := scan(root)
			if err == nil {
				t.Fatal("scan() succeeded, want InvalidBrightness error")
			}
			if kind := scanKind(t, err); kind != KindInvalidBrightness {
				t.Errorf("Kind = %v, want %v", kind, KindInvalidBrightness)
			}
			// Whole-scan failure: no partial results
			if found != nil {
				t.Errorf("scan() returned partial results: %v", found)
			}
		})
	}
}

func TestScan_MissingBrightnessFile(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "bare"), 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := scan(root)
	if err == nil {
		t.Fatal("scan() succeeded, want IOError")
	}
	if kind := scanKind(t, err); kind != KindIOError {
		t.Errorf("Kind = %v, want %v", kind, KindIOError)
	}
}

func TestScan_MissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "missing")

	_, err := scan(root)
	if err == nil {
		t.Fatal("scan() succeeded, want IOError")
	}
	if kind := scanKind(t, err); kind != KindIOError {
		t.Errorf("Kind = %v, want %v", kind, KindIOError)
	}
}

func TestScan_EmptyRoot(t *testing.T) {
	found, err := scan(t.TempDir())
	if err != nil {
		t.Fatalf("scan() error = %v", err)
	}
	if len(found) != 0 {
		t.Errorf("scan() returned %d LEDs, want 0", len(found))
	}
}

func TestScan_InvalidFileName(t *testing.T) {
	root := t.TempDir()
	// Directory name with bytes that are not valid UTF-8
	badName := string([]byte{'b', 0xff, 'd'})
	if err := os.MkdirAll(filepath.Join(root, badName), 0o755); err != nil {
		t.Skipf("filesystem rejects non-UTF-8 names: %v", err)
	}

	_, err := scan(root)
	if err == nil {
		t.Fatal("scan() succeeded, want InvalidFileName error")
	}
	if kind := scanKind(t, err); kind != KindInvalidFileName {
		t.Errorf("Kind = %v, want %v", kind, KindInvalidFileName)
	}
}

func TestNew_NotFound(t *testing.T) {
	_, err := newLED(t.TempDir(), "ghost")
	if err == nil {
		t.Fatal("newLED() succeeded, want NotFound error")
	}
	if kind := scanKind(t, err); kind != KindNotFound {
		t.Errorf("Kind = %v, want %v", kind, KindNotFound)
	}
}

func TestLED_State(t *testing.T) {
	if got := (LED{On: true}).State(); got != "on" {
		t.Errorf("State() = %q, want %q", got, "on")
	}
	if got := (LED{On: false}).State(); got != "off" {
		t.Errorf("State() = %q, want %q", got, "off")
	}
}

func TestError_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "not found",
			err:  &Error{Kind: KindNotFound, LED: "mmc0"},
			want: "LED does not exist",
		},
		{
			name: "invalid brightness",
			err:  &Error{Kind: KindInvalidBrightness, LED: "mmc0"},
			want: "Invalid brightness value",
		},
		{
			name: "invalid file name",
			err:  &Error{Kind: KindInvalidFileName},
			want: "Invalid encoding in file name",
		},
		{
			name: "io error includes cause",
			err:  &Error{Kind: KindIOError, Cause: errors.New("permission denied")},
			want: "I/O error: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := os.ErrPermission
	err := newError(KindIOError, "mmc0", cause)

	if !errors.Is(err, os.ErrPermission) {
		t.Error("errors.Is() failed to find the wrapped cause")
	}
}
