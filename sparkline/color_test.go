package sparkline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in     string
		want   Color
		wantOK bool
	}{
		{"#16c784", Color{0x16, 0xc7, 0x84, 255}, true},
		{"#F80", Color{0xff, 0x88, 0x00, 255}, true},
		{"#f808", Color{0xff, 0x88, 0x00, 0x88}, true},
		{"#00000080", Color{0, 0, 0, 0x80}, true},
		{" rgb(10, 20, 30) ", Color{10, 20, 30, 255}, true},
		{"rgba(255,0,0,0.5)", Color{255, 0, 0, 128}, true},
		{"SteelBlue", Color{0x46, 0x82, 0xb4, 255}, true},
		{"transparent", Color{}, true},
		{"", Color{}, false},
		{"#12345", Color{}, false},
		{"#ggg", Color{}, false},
		{"rgb(300,0,0)", Color{}, false},
		{"rgba(1,2,3)", Color{}, false},
		{"not-a-colour", Color{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseColor(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColorOrFallsBack(t *testing.T) {
	assert.Equal(t, black, parseColorOr("#zzzzzz", black))
	assert.Equal(t, white, parseColorOr("", white))
}

func TestPaintAttrs(t *testing.T) {
	assert.Equal(t, `stroke="#16c784"`, paintAttrs("stroke", Color{0x16, 0xc7, 0x84, 255}))
	assert.Equal(t, `fill="#000000" fill-opacity="0.50"`, paintAttrs("fill", Color{0, 0, 0, 128}))
}
