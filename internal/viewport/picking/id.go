package picking

import "github.com/Faultbox/meshview/internal/engine/render"

// NoHit is the id of a click that landed on the background.
const NoHit = 0

// base is the radix of the color packing. Each channel carries one base-255
// digit, so channel value 255 never appears in an object color and a white
// pixel can only be background.
const base = 255

// MaxID is the largest id a color can carry.
const MaxID = base*base*base - 1

// DecodeID unpacks an object id from a picking-pass pixel:
// blue + green*255 + red*255*255.
func DecodeID(r, g, b uint8) int {
	return int(b) + int(g)*base + int(r)*base*base
}

// EncodeID returns the channels that DecodeID maps back to id.
// ok is false for ids outside [1, MaxID].
func EncodeID(id int) (r, g, b uint8, ok bool) {
	if id <= NoHit || id > MaxID {
		return 0, 0, 0, false
	}
	b = uint8(id % base)
	g = uint8(id / base % base)
	r = uint8(id / (base * base))
	return r, g, b, true
}

// Color returns the flat picking color of id, or white for ids that cannot
// be encoded.
func Color(id int) render.Color {
	r, g, b, ok := EncodeID(id)
	if !ok {
		return render.White
	}
	return render.RGB(r, g, b)
}

// pixelID maps a read-back pixel to an id; the white clear color is NoHit.
func pixelID(r, g, b uint8) int {
	if r == 255 && g == 255 && b == 255 {
		return NoHit
	}
	return DecodeID(r, g, b)
}
