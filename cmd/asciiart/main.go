package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	asciiart "github.com/ShakedAmar118/ascii-art-generator"
	"github.com/ShakedAmar118/ascii-art-generator/imageproc"
	"github.com/ShakedAmar118/ascii-art-generator/output"
	"github.com/ShakedAmar118/ascii-art-generator/shell"
)

func main() {
	inputFile := flag.String("input", "",
		"Path to the input image file (required)")
	fontPath := flag.String("font", "builtin",
		"Font for glyph brightness: 'builtin' or path to a TTF file")
	glyphsFile := flag.String("glyphs", "",
		"Path to a precomputed glyph data file (overrides -font)")
	charset := flag.String("charset", "0123456789",
		"Initial character set")
	res := flag.Int("res", 2,
		"Starting resolution in characters per row (clamped to the image's valid range)")
	targetWidth := flag.Int("width", 0,
		"Downscale the image to this width before conversion (0 keeps the original size)")
	outputMode := flag.String("output", "console",
		"Output method for -run: console, html, or png")
	htmlFile := flag.String("html", "out.html",
		"Path for html output")
	pngFile := flag.String("png", "out.png",
		"Path for png output")
	pngScale := flag.Int("pngscale", 2,
		"Glyph magnification for png output")
	runOnce := flag.Bool("run", false,
		"Convert once and exit instead of starting the interactive shell")
	flag.Parse()

	if *inputFile == "" {
		fmt.Println("Please provide the image using the -input flag")
		flag.PrintDefaults()
		return
	}

	source, err := loadSource(*glyphsFile, *fontPath)
	if err != nil {
		fmt.Printf("Error loading font: %v\n", err)
		os.Exit(1)
	}

	img, err := imageproc.LoadImage(*inputFile)
	if err != nil {
		fmt.Printf("Error loading image: %v\n", err)
		os.Exit(1)
	}
	if *targetWidth > 0 && *targetWidth < img.Width() {
		img = imageproc.ResizeToWidth(img, *targetWidth, imageproc.InterpolationArea)
	}

	grid := imageproc.NewBrightnessGrid(img)
	resolution := clampResolution(*res, grid)

	cache := asciiart.NewGlyphBrightnessCache(source)
	matcher := asciiart.NewMatcher(cache, []rune(*charset))

	if *runOnce {
		art, err := asciiart.Convert(matcher, grid.Grid(resolution))
		if err != nil {
			fmt.Printf("Error converting image: %v\n", err)
			os.Exit(1)
		}

		var renderer output.Renderer
		written := ""
		switch *outputMode {
		case "console":
			renderer = output.NewConsole(os.Stdout)
		case "html":
			renderer = output.NewHTML(*htmlFile, "Courier New")
			written = *htmlFile
		case "png":
			renderer = output.NewPNG(*pngFile, source, *pngScale)
			written = *pngFile
		default:
			fmt.Println("Invalid output method, options are console, html, or png")
			os.Exit(1)
		}
		if err := renderer.Render(art); err != nil {
			fmt.Printf("Error writing output: %v\n", err)
			os.Exit(1)
		}
		if written != "" {
			fmt.Printf("Output written to %s\n", written)
		}
		return
	}

	sh := shell.New(matcher, grid,
		shell.WithResolution(resolution),
		shell.WithHTMLFile(*htmlFile),
		shell.WithPrompt(term.IsTerminal(int(os.Stdin.Fd()))),
	)
	if err := sh.Run(os.Stdin); err != nil {
		fmt.Printf("Error reading input: %v\n", err)
		os.Exit(1)
	}
}

// loadSource picks the glyph bitmap source: a precomputed glyph file
// wins, then a TTF font, then the builtin bitmaps.
func loadSource(glyphsFile, fontPath string) (asciiart.BitmapSource, error) {
	if glyphsFile != "" {
		return asciiart.LoadGlyphFile(glyphsFile)
	}
	if fontPath == "builtin" {
		return asciiart.BuiltinFont(), nil
	}
	return asciiart.LoadFontBitmaps(fontPath)
}

// clampResolution pulls a requested resolution into the range the
// image supports: at most one character per pixel column, at least one
// character per row.
func clampResolution(res int, grid *imageproc.BrightnessGrid) int {
	if w := grid.PaddedWidth(); res > w {
		res = w
	}
	if minRow := max(1, grid.PaddedWidth()/grid.PaddedHeight()); res < minRow {
		res = minRow
	}
	return res
}
