package resonant_test

import (
	"fmt"

	"github.com/cwbudde/algo-filterview/dsp/filter/resonant"
)

func ExampleDesign() {
	const sampleRate = 48000.0

	c := resonant.Design(resonant.Normalize(1000, sampleRate), 6)

	fmt.Printf("DC: %.3f\n", c.Magnitude(0, sampleRate))
	fmt.Printf("Nyquist: %.3f\n", c.Magnitude(sampleRate/2, sampleRate))
	// Output:
	// DC: 1.000
	// Nyquist: 0.000
}
