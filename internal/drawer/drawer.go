// Package drawer replays ordered curves as physical pointer strokes on
// an on-screen window.
//
// Window discovery and pointer automation go through xdotool, wrapped
// behind CommandBuilder so tests can capture the exact invocations.
// The drawer consumes normalized points per curve and performs one
// pointer-down, N pointer-moves, one pointer-up gesture with a fixed
// inter-step delay.
package drawer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/inkline-data/sketch.trace/internal/config"
	"github.com/inkline-data/sketch.trace/internal/monitoring"
	"github.com/inkline-data/sketch.trace/internal/timeutil"
	"github.com/inkline-data/sketch.trace/internal/vision"
)

// StepsPerCurve is the number of delayed pointer steps a minimal
// two-point curve costs: move, down, move, up. Used for drawing time
// estimates.
const StepsPerCurve = 4

// Drawer maps normalized curve points into absolute screen coordinates
// inside a window's canvas rectangle and emits pointer gestures.
type Drawer struct {
	builder CommandBuilder
	clock   timeutil.Clock

	windowID string
	winX     float64
	winY     float64
	winW     float64
	winH     float64

	canvas  config.CanvasRect
	delay   time.Duration
	verbose bool
}

// New locates the target window by class name and reads its geometry.
// Returns an error when no visible window matches.
func New(builder CommandBuilder, windowClass string, canvas config.CanvasRect, delay time.Duration, verbose bool) (*Drawer, error) {
	id, err := findWindow(builder, windowClass)
	if err != nil {
		return nil, err
	}

	x, y, w, h, err := windowGeometry(builder, id)
	if err != nil {
		return nil, err
	}

	if verbose {
		monitoring.Logf("drawer: window id %s at (%d,%d) size %dx%d", id, x, y, w, h)
	}

	return &Drawer{
		builder:  builder,
		clock:    timeutil.RealClock{},
		windowID: id,
		winX:     float64(x),
		winY:     float64(y),
		winW:     float64(w),
		winH:     float64(h),
		canvas:   canvas,
		delay:    delay,
		verbose:  verbose,
	}, nil
}

// Foreground raises and focuses the target window.
func (d *Drawer) Foreground() error {
	if _, err := d.builder.BuildCommand("xdotool", "windowraise", d.windowID).Run(); err != nil {
		return fmt.Errorf("failed to raise window %s: %w", d.windowID, err)
	}
	if _, err := d.builder.BuildCommand("xdotool", "windowfocus", d.windowID).Run(); err != nil {
		return fmt.Errorf("failed to focus window %s: %w", d.windowID, err)
	}
	return nil
}

// Estimate projects the wall-clock time to draw n curves, assuming the
// minimal gesture of StepsPerCurve delayed steps per curve.
func (d *Drawer) Estimate(n int) time.Duration {
	return time.Duration(n) * StepsPerCurve * d.delay
}

// Delay returns the configured inter-step delay.
func (d *Drawer) Delay() time.Duration {
	return d.delay
}

// DrawCurve replays one curve: move to the first point, press, move
// through the remaining points, release. Each step sleeps the
// configured delay so the target application registers the motion.
func (d *Drawer) DrawCurve(c vision.Curve) error {
	if len(c) == 0 {
		return nil
	}

	if d.verbose {
		monitoring.Logf("drawer: curve with %d points starting at (%.3f, %.3f)", len(c), c[0].X, c[0].Y)
	}

	if err := d.mouseMove(c[0]); err != nil {
		return err
	}
	d.sleep()

	if err := d.mouseDown(); err != nil {
		return err
	}
	d.sleep()

	for _, p := range c[1:] {
		if err := d.mouseMove(p); err != nil {
			return err
		}
		d.sleep()
	}

	if err := d.mouseUp(); err != nil {
		return err
	}
	d.sleep()

	return nil
}

func (d *Drawer) sleep() {
	d.clock.Sleep(d.delay)
}

// mapPoint converts a normalized curve point into absolute screen
// pixels: first into the canvas sub-rectangle, then into the window.
func (d *Drawer) mapPoint(p vision.Point) (int, int) {
	nx := d.canvas.X + p.X*d.canvas.Width
	ny := d.canvas.Y + p.Y*d.canvas.Height

	sx := int(nx*d.winW + d.winX)
	sy := int(ny*d.winH + d.winY)
	return sx, sy
}

func (d *Drawer) mouseMove(p vision.Point) error {
	x, y := d.mapPoint(p)
	if _, err := d.builder.BuildCommand("xdotool", "mousemove", strconv.Itoa(x), strconv.Itoa(y)).Run(); err != nil {
		return fmt.Errorf("failed to move pointer to (%d,%d): %w", x, y, err)
	}
	return nil
}

func (d *Drawer) mouseDown() error {
	if _, err := d.builder.BuildCommand("xdotool", "mousedown", "1").Run(); err != nil {
		return fmt.Errorf("failed to press pointer button: %w", err)
	}
	return nil
}

func (d *Drawer) mouseUp() error {
	if _, err := d.builder.BuildCommand("xdotool", "mouseup", "1").Run(); err != nil {
		return fmt.Errorf("failed to release pointer button: %w", err)
	}
	return nil
}

// findWindow resolves a window class to an X window id using xdotool
// search, restricted to visible windows.
func findWindow(builder CommandBuilder, class string) (string, error) {
	out, err := builder.BuildCommand("xdotool", "search", "--onlyvisible", "--class", class).Run()
	if err != nil {
		return "", fmt.Errorf("xdotool search failed for class %q: %w", class, err)
	}

	id := strings.TrimSpace(string(out))
	if id == "" {
		return "", fmt.Errorf("no visible window found for class %q", class)
	}
	// Multiple matches come back one per line; take the first.
	if i := strings.IndexByte(id, '\n'); i >= 0 {
		id = strings.TrimSpace(id[:i])
	}
	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		return "", fmt.Errorf("unexpected window id %q for class %q", id, class)
	}
	return id, nil
}

// windowGeometry reads position and size from xdotool getwindowgeometry
// output, which contains lines like:
//
//	Position: 128,64 (screen: 0)
//	Geometry: 800x600
func windowGeometry(builder CommandBuilder, id string) (x, y, w, h int, err error) {
	out, err := builder.BuildCommand("xdotool", "getwindowgeometry", id).Run()
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("xdotool getwindowgeometry failed for %s: %w", id, err)
	}

	x, y, err = parseGeometryField(string(out), "Position: ", ',')
	if err != nil {
		return 0, 0, 0, 0, err
	}
	w, h, err = parseGeometryField(string(out), "Geometry: ", 'x')
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return x, y, w, h, nil
}

// parseGeometryField extracts the two integers following a field label,
// separated by sep, ignoring anything after the second number.
func parseGeometryField(text, label string, sep byte) (int, int, error) {
	i := strings.Index(text, label)
	if i < 0 {
		return 0, 0, fmt.Errorf("field %q not found in xdotool output", strings.TrimSpace(label))
	}
	rest := text[i+len(label):]
	if j := strings.IndexByte(rest, '\n'); j >= 0 {
		rest = rest[:j]
	}

	parts := strings.SplitN(rest, string(sep), 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed %q field: %q", strings.TrimSpace(label), rest)
	}

	first, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed %q field: %q", strings.TrimSpace(label), rest)
	}

	second := strings.TrimSpace(parts[1])
	// Drop trailing annotations like " (screen: 0)".
	if k := strings.IndexByte(second, ' '); k >= 0 {
		second = second[:k]
	}
	sv, err := strconv.Atoi(second)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed %q field: %q", strings.TrimSpace(label), rest)
	}

	return first, sv, nil
}
