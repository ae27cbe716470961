// Package image1bit provides a 1-bit monochrome image format for the SSD1306 display controller.
//
// The SSD1306 OLED controller has no grayscale: each pixel is either lit or dark.
// Pixels are stored in vertical "page" packing where each byte holds a column
// of 8 vertically stacked pixels.
//
// Memory layout example for a 3-column, 8-row page:
//
//	Rows:   0 1 2 3 4 5 6 7   (bit 0 = row 0, bit 7 = row 7)
//	Col 0:  1 0 0 0 0 0 0 1   → 0x81
//	Col 1:  0 1 0 0 0 0 0 0   → 0x02
//	Col 2:  1 1 1 1 0 0 0 0   → 0x0F
//
// A display that is W pixels wide and H pixels tall uses W*ceil(H/8) bytes;
// the pixel (x, y) lives in byte (y/8)*W + x at bit y%8.
//
// This package provides:
//
// - Bit: A color type representing one monochrome pixel
// - BitModel: A color model for converting standard Go colors to Bit
// - VerticalLSB: An image.Image implementation matching the controller's RAM layout
//
// Example usage:
//
//	// Create a 128x32 image
//	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 32))
//
//	// Light a pixel
//	img.SetBit(10, 20, image1bit.On)
//
//	// Read it back
//	println(img.BitAt(10, 20))  // Output: true
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
package image1bit
