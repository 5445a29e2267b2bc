// Package shell implements the interactive command loop that drives an
// ASCII art conversion: charset edits, resolution and rounding control,
// output switching, and the conversion itself.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	asciiart "github.com/ShakedAmar118/ascii-art-generator"
	"github.com/ShakedAmar118/ascii-art-generator/imageproc"
	"github.com/ShakedAmar118/ascii-art-generator/output"
)

const (
	prompt         = ">>> "
	defaultRes     = 2
	minCharsetSize = 2

	asciiLowerBound = ' '
	asciiUpperBound = '~'

	htmlFileName = "out.html"
	htmlFontName = "Courier New"

	resolutionMessage = "Resolution set to %d.\n"
)

// Command failure messages, printed verbatim to the shell's output.
var (
	errTooSmallCharset  = errors.New("Did not execute. Charset is too small.")
	errAddFormat        = errors.New("Did not add due to incorrect format.")
	errRemoveFormat     = errors.New("Did not remove due to incorrect format.")
	errResFormat        = errors.New("Did not change resolution due to incorrect format.")
	errResBounds        = errors.New("Did not change resolution due to exceeding boundaries.")
	errOutputFormat     = errors.New("Did not change output method due to incorrect format.")
	errRoundFormat      = errors.New("Did not change rounding method due to incorrect format.")
	errIncorrectCommand = errors.New("Did not execute due to incorrect command.")

	errMalformedSpec = errors.New("malformed character spec")
)

// Shell runs the interactive loop over a matcher and a prepared
// brightness grid. It starts on console output at the default
// resolution and mutates its state command by command.
type Shell struct {
	matcher    *asciiart.Matcher
	grid       *imageproc.BrightnessGrid
	renderer   output.Renderer
	resolution int

	out        io.Writer
	showPrompt bool
	htmlPath   string
	htmlFont   string
}

// Option is a functional option for configuring a Shell.
type Option func(*Shell)

// WithPrompt controls whether the input prompt is printed. Piped input
// reads better without it.
func WithPrompt(show bool) Option {
	return func(s *Shell) {
		s.showPrompt = show
	}
}

// WithOutput redirects the shell's messages and console art away from
// standard output.
func WithOutput(w io.Writer) Option {
	return func(s *Shell) {
		s.out = w
	}
}

// WithResolution sets the starting resolution in characters per row.
func WithResolution(resolution int) Option {
	return func(s *Shell) {
		s.resolution = resolution
	}
}

// WithHTMLFile sets the file the html output method writes to.
func WithHTMLFile(path string) Option {
	return func(s *Shell) {
		s.htmlPath = path
	}
}

// New creates a shell over the given matcher and brightness grid.
func New(matcher *asciiart.Matcher, grid *imageproc.BrightnessGrid, opts ...Option) *Shell {
	s := &Shell{
		matcher:    matcher,
		grid:       grid,
		resolution: defaultRes,
		out:        os.Stdout,
		showPrompt: true,
		htmlPath:   htmlFileName,
		htmlFont:   htmlFontName,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.renderer = output.NewConsole(s.out)
	return s
}

// Run reads commands line by line until an exit command or the end of
// input. Command failures are reported to the shell's output and never
// end the loop.
func (s *Shell) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for {
		if s.showPrompt {
			fmt.Fprint(s.out, prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		input := scanner.Text()
		if strings.HasPrefix(input, "exit") {
			return nil
		}
		s.handle(input)
	}
}

func (s *Shell) handle(input string) {
	switch {
	case input == "asciiArt" || strings.HasPrefix(input, "asciiArt "):
		s.runAsciiArt()
	case input == "chars" || strings.HasPrefix(input, "chars "):
		fmt.Fprintln(s.out, s.matcher)
	case input == "add" || input == "remove":
		s.reportAddRemove(input == "add")
	case strings.HasPrefix(input, "add ") || strings.HasPrefix(input, "remove "):
		s.handleAddRemove(input)
	case input == "res":
		fmt.Fprintf(s.out, resolutionMessage, s.resolution)
	case strings.HasPrefix(input, "res "):
		s.handleRes(strings.Split(input, " ")[1])
	case input == "output":
		fmt.Fprintln(s.out, errOutputFormat)
	case strings.HasPrefix(input, "output "):
		s.handleOutput(strings.Split(input, " ")[1])
	case input == "round":
		fmt.Fprintln(s.out, errRoundFormat)
	case strings.HasPrefix(input, "round "):
		s.handleRound(strings.Split(input, " ")[1])
	default:
		fmt.Fprintln(s.out, errIncorrectCommand)
	}
}

// runAsciiArt converts the image at the current resolution and hands
// the art to the active renderer. The grid lookup comes first so a
// resolution change is absorbed even when the charset check then
// refuses to execute.
func (s *Shell) runAsciiArt() {
	grid := s.grid.Grid(s.resolution)
	if s.matcher.Size() < minCharsetSize {
		fmt.Fprintln(s.out, errTooSmallCharset)
		return
	}
	art, err := asciiart.Convert(s.matcher, grid)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	if err := s.renderer.Render(art); err != nil {
		fmt.Fprintln(s.out, err)
	}
}

func (s *Shell) handleAddRemove(input string) {
	isAdd := strings.HasPrefix(input, "add ")
	chars, err := parseCharSpec(strings.Split(input, " ")[1])
	if err != nil {
		s.reportAddRemove(isAdd)
		return
	}
	for _, r := range chars {
		if isAdd {
			s.matcher.Add(r)
		} else {
			s.matcher.Remove(r)
		}
	}
}

func (s *Shell) reportAddRemove(isAdd bool) {
	if isAdd {
		fmt.Fprintln(s.out, errAddFormat)
	} else {
		fmt.Fprintln(s.out, errRemoveFormat)
	}
}

// parseCharSpec expands an add/remove argument into the characters it
// names: the words space and all, a single printable character, or a
// three-character range like a-d (reversed ranges are normalized).
func parseCharSpec(arg string) ([]rune, error) {
	switch arg {
	case "space":
		return []rune{' '}, nil
	case "all":
		return charRange(asciiLowerBound, asciiUpperBound), nil
	}

	runes := []rune(arg)
	switch {
	case len(runes) == 1:
		if !inCharBounds(runes[0]) {
			return nil, errMalformedSpec
		}
		return runes, nil
	case len(runes) == 3 && runes[1] == '-':
		start, end := runes[0], runes[2]
		if !inCharBounds(start) || !inCharBounds(end) {
			return nil, errMalformedSpec
		}
		if start > end {
			start, end = end, start
		}
		return charRange(start, end), nil
	}
	return nil, errMalformedSpec
}

func charRange(start, end rune) []rune {
	chars := make([]rune, 0, end-start+1)
	for r := start; r <= end; r++ {
		chars = append(chars, r)
	}
	return chars
}

func inCharBounds(r rune) bool {
	return r >= asciiLowerBound && r <= asciiUpperBound
}

// handleRes doubles or halves the resolution. Going up is capped by the
// padded width; going down is floored by the image's width to height
// ratio so a row keeps at least one character.
func (s *Shell) handleRes(arg string) {
	switch arg {
	case "up":
		if s.resolution*2 > s.grid.PaddedWidth() {
			fmt.Fprintln(s.out, errResBounds)
			return
		}
		s.resolution *= 2
	case "down":
		minCharsInRow := float64(max(1, s.grid.PaddedWidth()/s.grid.PaddedHeight()))
		if float64(s.resolution)/2 < minCharsInRow {
			fmt.Fprintln(s.out, errResBounds)
			return
		}
		s.resolution /= 2
	default:
		fmt.Fprintln(s.out, errResFormat)
		return
	}
	fmt.Fprintf(s.out, resolutionMessage, s.resolution)
}

func (s *Shell) handleOutput(arg string) {
	switch arg {
	case "console":
		s.renderer = output.NewConsole(s.out)
	case "html":
		s.renderer = output.NewHTML(s.htmlPath, s.htmlFont)
	default:
		fmt.Fprintln(s.out, errOutputFormat)
	}
}

func (s *Shell) handleRound(arg string) {
	switch arg {
	case "abs":
		s.matcher.SetPolicy(asciiart.RoundAbs)
	case "up":
		s.matcher.SetPolicy(asciiart.RoundUp)
	case "down":
		s.matcher.SetPolicy(asciiart.RoundDown)
	default:
		fmt.Fprintln(s.out, errRoundFormat)
	}
}
