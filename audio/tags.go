// SPDX-License-Identifier: MIT

package audio

// Tags holds whatever metadata the audio container provided. Fields the
// container does not carry stay empty.
type Tags struct {
	Title     string
	Artist    string
	Album     string
	Genre     string
	Date      string
	Comment   string
	Copyright string
	Software  string
	TrackNbr  string
}

// Empty reports whether no metadata field is set.
func (t Tags) Empty() bool {
	return t == Tags{}
}
