package pipeline

import "image"

// PixelatePass quantizes the frame into square blocks; every pixel in a block
// takes the color of the block's top-left pixel.
type PixelatePass struct {
	BlockSize int
}

// NewPixelatePass creates a pixelation pass with the given block size in pixels.
func NewPixelatePass(blockSize int) *PixelatePass {
	if blockSize < 1 {
		blockSize = 1
	}
	return &PixelatePass{BlockSize: blockSize}
}

// Name returns the pass name.
func (p *PixelatePass) Name() string {
	return PassPixelate
}

// Apply writes the pixelated src into dst. dst and src must have the same
// bounds; they may be the same image.
func (p *PixelatePass) Apply(dst, src *image.RGBA) {
	Pixelate(dst, src, p.BlockSize)
}

// Pixelate performs nearest-neighbor block quantization of src into dst.
// Blocks are aligned to src's top-left corner. Rows are visited top to bottom
// and each block origin is read before any pixel after it is written, so dst
// may alias src.
func Pixelate(dst, src *image.RGBA, block int) {
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		sy := b.Min.Y + (y-b.Min.Y)/block*block
		for x := b.Min.X; x < b.Max.X; x++ {
			sx := b.Min.X + (x-b.Min.X)/block*block

			si := src.PixOffset(sx, sy)
			di := dst.PixOffset(x, y)
			copy(dst.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
}
