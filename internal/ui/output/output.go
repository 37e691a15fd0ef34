// Package output builds termenv outputs for the log handler and the progress
// renderers, honoring NO_COLOR and CI.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

func noColor() bool {
	return os.Getenv("NO_COLOR") != ""
}

func inCI() bool {
	switch os.Getenv("CI") {
	case "true", "1":
		return true
	default:
		return false
	}
}

// ColorProfile detects the terminal's color support. NO_COLOR forces Ascii.
func ColorProfile() termenv.Profile {
	if noColor() {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ColorProfileANSI is the fixed 16-color profile used for logs and CI.
// NO_COLOR forces Ascii.
func ColorProfileANSI() termenv.Profile {
	if noColor() {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// IsInteractive reports whether w is a terminal outside of CI. The
// interactive progress view is only used when this holds for stderr.
func IsInteractive(w io.Writer) bool {
	if inCI() {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms
}

// ProfileFor picks ColorProfile for interactive writers and ColorProfileANSI otherwise.
func ProfileFor(w io.Writer) termenv.Profile {
	if IsInteractive(w) {
		return ColorProfile()
	}
	return ColorProfileANSI()
}

// New returns an output for w using the detected profile.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return NewWithProfile(w, ColorProfile, opts...)
}

// NewWithProfile returns an output for w, or stderr when w is nil, using the
// profile chosen by profileFn. Outputs always act as a TTY so styling is
// decided by the profile alone.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	opts = append(opts, termenv.WithProfile(profileFn()), termenv.WithTTY(true))
	return termenv.NewOutput(w, opts...)
}
