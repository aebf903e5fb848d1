package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/go-drift/cardview/pkg/attrs"
	"github.com/go-drift/cardview/pkg/card"
	"github.com/go-drift/cardview/pkg/graphics"
	"github.com/go-drift/cardview/pkg/theme"
	"github.com/go-drift/cardview/pkg/view"
)

// defaultWidthDp is the layout width used when neither the document nor a
// flag sets one.
const defaultWidthDp = 360

// buildOptions are the flags shared by render and inspect.
type buildOptions struct {
	dark      bool
	widthDp   float64
	resources string
	verbose   bool
}

func (o *buildOptions) addFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&o.dark, "dark", false, "use the dark color scheme")
	fs.Float64Var(&o.widthDp, "width", 0, "layout width in dp (default: document width or 360)")
	fs.StringVar(&o.resources, "resources", "", "drawable directory (default: the document's directory)")
	fs.BoolVar(&o.verbose, "verbose", false, "report errors with stack traces")
}

// built is a card assembled from a document.
type built struct {
	doc  *attrs.Document
	host *view.Host
	card *card.Card
	size graphics.Size
}

// buildCard loads the document at path, builds its card and lays it out.
func buildCard(path string, opts buildOptions) (*built, error) {
	doc, err := attrs.LoadDocument(path)
	if err != nil {
		return nil, err
	}

	th := theme.DefaultLightTheme()
	if opts.dark {
		th = theme.DefaultDarkTheme()
	}
	if err := th.ApplyOverrides(doc.Theme); err != nil {
		return nil, fmt.Errorf("failed to apply theme: %w", err)
	}

	resources := opts.resources
	if resources == "" {
		resources = filepath.Dir(path)
	}

	host := view.NewHost()
	host.Metrics = doc.Display.Metrics()
	host.Theme = th
	host.Resources = view.DirResources(resources)

	c, err := card.New(host, doc.Attributes)
	if err != nil {
		return nil, err
	}
	for i, node := range doc.Content {
		tv, err := contentView(host, node)
		if err != nil {
			return nil, fmt.Errorf("content[%d]: %w", i, err)
		}
		c.AddView(tv)
	}

	widthDp := opts.widthDp
	if widthDp <= 0 {
		widthDp = doc.Display.Width
	}
	if widthDp <= 0 {
		widthDp = defaultWidthDp
	}
	size := c.LayoutWidth(float64(host.DpToPx(widthDp)))
	return &built{doc: doc, host: host, card: c, size: size}, nil
}

func contentView(host *view.Host, node attrs.ContentNode) (*view.TextView, error) {
	tv := view.NewTextView(host)
	tv.SetText(node.Text)
	if node.Size > 0 {
		tv.SetTextSize(node.Size)
	}
	if node.Color != "" {
		color, err := graphics.ParseColor(node.Color)
		if err != nil {
			return nil, err
		}
		tv.SetTextColor(color)
	}
	return tv, nil
}
