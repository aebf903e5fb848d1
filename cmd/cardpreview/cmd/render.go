package cmd

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/image/bmp"

	"github.com/go-drift/cardview/pkg/errors"
	"github.com/go-drift/cardview/pkg/graphics"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a card document to an image",
		Long: `Render a card document to a PNG or BMP image.

The card is built from the document's attributes, laid out at the
requested width and drawn at its measured height. Drawables named in the
document are loaded from the document's directory unless --resources is
given.`,
		Usage: "cardpreview render [-o out.png] [--width dp] [--dark] <document.yaml>",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	var opts buildOptions
	var output, background string
	var checked bool

	fs := pflag.NewFlagSet("render", pflag.ContinueOnError)
	fs.StringVarP(&output, "output", "o", "", "output image, .png or .bmp (default: <document>.png)")
	fs.StringVar(&background, "background", "", "fill color behind the card (default: transparent)")
	fs.BoolVar(&checked, "checked", false, "draw the card in its checked state")
	opts.addFlags(fs)
	fs.BoolP("help", "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printCommandHelp(commands["render"], fs.FlagUsages())
			return nil
		}
		return err
	}
	if help, _ := fs.GetBool("help"); help {
		printCommandHelp(commands["render"], fs.FlagUsages())
		return nil
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("render takes exactly one document, got %d", fs.NArg())
	}
	path := fs.Arg(0)
	if output == "" {
		output = strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
	}

	errors.SetHandler(&errors.LogHandler{Verbose: opts.verbose})
	defer errors.SetHandler(nil)

	b, err := buildCard(path, opts)
	if err != nil {
		return err
	}
	if checked {
		b.card.SetChecked(true)
	}

	canvas := graphics.NewRasterCanvas(int(math.Ceil(b.size.Width)), int(math.Ceil(b.size.Height)))
	if background != "" {
		color, err := graphics.ParseColor(background)
		if err != nil {
			return fmt.Errorf("failed to parse --background: %w", err)
		}
		canvas.Clear(color)
	}
	b.card.Draw(canvas)

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := encodeImage(f, output, canvas.Image()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(stdout, "Rendered %s (%dx%d)\n", output, canvas.Image().Bounds().Dx(), canvas.Image().Bounds().Dy())
	return nil
}

// encodeImage writes img in the format named by the output's extension.
func encodeImage(w io.Writer, name string, img image.Image) error {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".png", "":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}
