// SPDX-License-Identifier: MIT

package aiff_test

import (
	"bytes"
	"fmt"

	"github.com/aurisaudio/auris/formats/aiff"
)

// Example_invalidInput shows how decode failures surface.
func Example_invalidInput() {
	data := bytes.NewReader([]byte("not an aiff file"))

	decoder := aiff.Decoder{}
	_, err := decoder.Decode(data)

	if err == aiff.ErrNotAiffFile {
		fmt.Println("Detected: Not a valid AIFF file")
	} else if err != nil {
		fmt.Printf("Other error: %v\n", err)
	}
	// Output: Detected: Not a valid AIFF file
}
