// Package icons defines the fixed glyph table used to compose avatars.
//
// Each glyph pairs a stable Lucide symbol reference with a short human label
// and the 24x24 stroke geometry needed to inline the symbol into a
// self-contained image. The table is immutable after process start; callers
// receive copies.
package icons
