package svg

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/algo-filterview/graph"
)

func testFrame(t *testing.T, active bool) graph.Frame {
	t.Helper()
	e := graph.New(graph.WithSurface(800, 500))
	mags := make([]float64, len(e.FrequencyData()))
	for i := range mags {
		mags[i] = 1
	}
	if err := e.SetMagnitudes(mags); err != nil {
		t.Fatal(err)
	}
	if active {
		e.PointerDown(graph.Point{X: 300, Y: 200})
	}
	return e.Frame()
}

func TestRender_Document(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf).Render(testFrame(t, false)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="800" height="500"`,
		`>12 Hz</text>`,
		`>20 K</text>`,
		`>-20 dB</text>`,
		// Flat 0 dB curve: graph y 265 is view y 235.
		`<path d="M54 460 L54 235 L790 235 L790 460 Z"`,
		`<circle cx="54.5" cy="235" r="3.5" fill="#bf1f1f"/>`,
		"</svg>\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q", want)
		}
	}

	if n := strings.Count(out, "<line "); n != 9+10+2 {
		t.Errorf("%d lines, want 21", n)
	}
	if n := strings.Count(out, "<text "); n != 21 {
		t.Errorf("%d labels, want 21", n)
	}
}

func TestRender_ActiveMarkers(t *testing.T) {
	var buf bytes.Buffer
	style := DefaultStyle()
	style.MarkerActive = "#00ff00"
	if err := New(&buf, WithStyle(style)).Render(testFrame(t, true)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `fill="#00ff00"`) {
		t.Fatal("active marker color not used")
	}
}

func TestRender_EmptyCurve(t *testing.T) {
	var buf bytes.Buffer
	e := graph.New(graph.WithSurface(800, 500))
	if err := New(&buf).Render(e.Frame()); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "<path") {
		t.Fatal("empty curve rendered")
	}
}

type failWriter struct{}

var errDiskFull = errors.New("disk full")

func (failWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestRender_WriteError(t *testing.T) {
	err := New(failWriter{}).Render(testFrame(t, false))
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("err = %v, want wrapped errDiskFull", err)
	}
}
