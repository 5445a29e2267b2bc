package imageproc

// Rec. 709 luma weights.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// Brightness returns the perceived brightness of a color in [0, 1].
func Brightness(c RGB) float64 {
	return (lumaR*float64(c.R) + lumaG*float64(c.G) + lumaB*float64(c.B)) / 255
}

// Grid splits an image into square tiles, resolution of them per row,
// and returns the mean brightness of each tile in row-major order. The
// resolution must be between 1 and the image width; padded images take
// any power-of-two resolution in that range evenly.
func Grid(img *RGBAImage, resolution int) [][]float64 {
	tileSize := img.Width() / resolution
	rows := img.Height() / tileSize

	grid := make([][]float64, rows)
	for row := 0; row < rows; row++ {
		grid[row] = make([]float64, resolution)
		for col := 0; col < resolution; col++ {
			grid[row][col] = tileBrightness(img, col*tileSize, row*tileSize, tileSize)
		}
	}
	return grid
}

func tileBrightness(img *RGBAImage, x0, y0, size int) float64 {
	var sum float64
	for y := y0; y < y0+size; y++ {
		for x := x0; x < x0+size; x++ {
			sum += Brightness(img.GetRGB(x, y))
		}
	}
	return sum / float64(size*size)
}

// BrightnessGrid pads an image once and serves brightness grids over
// it, reusing the last grid while the resolution stays put.
type BrightnessGrid struct {
	padded     *RGBAImage
	resolution int
	grid       [][]float64
}

// NewBrightnessGrid pads the image and prepares it for grid queries.
func NewBrightnessGrid(img *RGBAImage) *BrightnessGrid {
	return &BrightnessGrid{padded: Pad(img)}
}

// Grid returns the brightness grid at the given resolution, recomputing
// it only when the resolution changed since the last call.
func (bg *BrightnessGrid) Grid(resolution int) [][]float64 {
	if bg.grid == nil || resolution != bg.resolution {
		bg.grid = Grid(bg.padded, resolution)
		bg.resolution = resolution
	}
	return bg.grid
}

// PaddedWidth returns the image width after power-of-two padding.
func (bg *BrightnessGrid) PaddedWidth() int {
	return bg.padded.Width()
}

// PaddedHeight returns the image height after power-of-two padding.
func (bg *BrightnessGrid) PaddedHeight() int {
	return bg.padded.Height()
}
