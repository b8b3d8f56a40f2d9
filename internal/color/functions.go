package color

// Brighten returns c with its HSL lightness raised by amount, keeping hue and
// HSL saturation. Negative amounts darken. The result is clamped.
func Brighten(c Color, amount float64) Color {
	h, s, b := c.HSB()
	sl, l := HSBToHSL(s, b)
	sb, nb := HSLToHSB(sl, Lightness(clamp01(float64(l)+amount)))
	return FromHSB(h, sb, nb)
}

// Darken returns c with its HSL lightness lowered by amount.
func Darken(c Color, amount float64) Color {
	return Brighten(c, -amount)
}
