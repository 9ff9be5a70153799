package scene

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Hex builds a colour from 0xRRGGBB.
func Hex(v uint32) RGB {
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// Hex returns the colour as 0xRRGGBB.
func (c RGB) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Floats returns the channels normalised to 0..1.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// Palette holds the fixed colours of the phone scene.
var Palette = struct {
	Body          RGB
	BodySpecular  RGB
	Screen        RGB
	ScreenSpec    RGB
	Button        RGB
	ButtonSpec    RGB
	ButtonPressed RGB
	ScreenGlow    RGB
	Ambient       RGB
	KeyLight      RGB
	FillLight     RGB
	EmissiveOff   RGB
	EmissiveBoot  RGB
	EmissiveHome  RGB
	OverlayText   RGB
}{
	Body:          Hex(0x1a1a1a),
	BodySpecular:  Hex(0x111111),
	Screen:        Hex(0x000000),
	ScreenSpec:    Hex(0x222222),
	Button:        Hex(0x333333),
	ButtonSpec:    Hex(0x666666),
	ButtonPressed: Hex(0x555555),
	ScreenGlow:    Hex(0x0088ff),
	Ambient:       Hex(0x404040),
	KeyLight:      Hex(0xffffff),
	FillLight:     Hex(0xccccff),
	EmissiveOff:   Hex(0x000000),
	EmissiveBoot:  Hex(0x001122),
	EmissiveHome:  Hex(0x003366),
	OverlayText:   Hex(0x00aaff),
}
