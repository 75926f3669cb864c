package resource

const (
	DigitWidth  = 5
	DigitHeight = 8
)

var digitBits = [10][DigitHeight]byte{
	{0x70, 0x88, 0x98, 0xA8, 0xC8, 0x88, 0x70, 0x00},
	{0x20, 0x60, 0x20, 0x20, 0x20, 0x20, 0x70, 0x00},
	{0x70, 0x88, 0x08, 0x10, 0x20, 0x40, 0xF8, 0x00},
	{0xF8, 0x10, 0x20, 0x10, 0x08, 0x88, 0x70, 0x00},
	{0x10, 0x30, 0x50, 0x90, 0xF8, 0x10, 0x10, 0x00},
	{0xF8, 0x80, 0xF0, 0x08, 0x08, 0x88, 0x70, 0x00},
	{0x30, 0x40, 0x80, 0xF0, 0x88, 0x88, 0x70, 0x00},
	{0xF8, 0x08, 0x10, 0x20, 0x40, 0x40, 0x40, 0x00},
	{0x70, 0x88, 0x88, 0x70, 0x88, 0x88, 0x70, 0x00},
	{0x70, 0x88, 0x88, 0x78, 0x08, 0x10, 0x60, 0x00},
}

// Digit returns the packed glyph for d, 0 through 9.
func Digit(d int) Bitmap {
	return Bitmap{
		Bits:   digitBits[d][:],
		Width:  DigitWidth,
		Height: DigitHeight,
	}
}
