package cmd

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const wifiDocument = `version: 1.0.0
display:
  density: 2
  width: 200
attributes:
  title: Wi-Fi
  summary: Connected\nStrong signal
  icon: "@drawable/wifi"
  recommended: true
  noIconBackground: false
content:
  - text: Details
    size: 12
    color: "#FF0000"
`

func writeDocument(t *testing.T, doc string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "wifi.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	icon := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range icon.Pix {
		icon.Pix[i] = 0xFF
	}
	f, err := os.Create(filepath.Join(dir, "wifi.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, icon); err != nil {
		t.Fatal(err)
	}
	return path
}

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func TestExecuteHelpListsCommands(t *testing.T) {
	out := captureStdout(t)
	if err := Execute(nil); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, want := range []string{"render", "inspect", "Usage:"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("help missing %q:\n%s", want, out)
		}
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	captureStdout(t)
	if err := Execute([]string{"paint"}); err == nil {
		t.Error("unknown command accepted")
	}
}

func TestRender(t *testing.T) {
	out := captureStdout(t)
	path := writeDocument(t, wifiDocument)
	output := filepath.Join(filepath.Dir(path), "card.png")

	if err := Execute([]string{"render", "-o", output, "--background", "#FFFFFF", path}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out.String(), "Rendered") {
		t.Errorf("output = %q", out)
	}

	f, err := os.Open(output)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 400 {
		t.Errorf("width = %d, want 400 (200dp at density 2)", b.Dx())
	}
	if b.Dy() <= 0 {
		t.Fatalf("height = %d", b.Dy())
	}
	// Corners are outside the rounded card and keep the background.
	if got := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("corner = %v, want the background", got)
	}
}

func TestRenderDefaultOutputAndBMP(t *testing.T) {
	captureStdout(t)
	path := writeDocument(t, wifiDocument)

	if err := Execute([]string{"render", path}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(strings.TrimSuffix(path, ".yaml") + ".png"); err != nil {
		t.Errorf("default output missing: %v", err)
	}

	bmpPath := filepath.Join(filepath.Dir(path), "card.bmp")
	if err := Execute([]string{"render", "-o", bmpPath, path}); err != nil {
		t.Fatalf("render bmp: %v", err)
	}
	data, err := os.ReadFile(bmpPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("BM")) {
		t.Error("output is not a BMP file")
	}
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	captureStdout(t)
	path := writeDocument(t, wifiDocument)
	if err := Execute([]string{"render", "-o", filepath.Join(filepath.Dir(path), "card.gif"), path}); err == nil {
		t.Error("gif output accepted")
	}
}

func TestRenderArgumentErrors(t *testing.T) {
	captureStdout(t)
	tests := []struct {
		name string
		args []string
	}{
		{"no document", []string{"render"}},
		{"missing document", []string{"render", filepath.Join(t.TempDir(), "none.yaml")}},
		{"bad flag", []string{"render", "--frobnicate", "x.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Execute(tt.args); err == nil {
				t.Error("Execute succeeded")
			}
		})
	}
}

func TestRenderBadAttributeFails(t *testing.T) {
	captureStdout(t)
	path := writeDocument(t, "version: 1.0.0\nattributes:\n  iconWidth: wide\n")
	err := Execute([]string{"render", path})
	if err == nil || !strings.Contains(err.Error(), "iconWidth") {
		t.Errorf("err = %v, want an iconWidth attribute error", err)
	}
}

func TestInspect(t *testing.T) {
	out := captureStdout(t)
	path := writeDocument(t, wifiDocument)

	if err := Execute([]string{"inspect", path}); err != nil {
		t.Fatalf("inspect: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"Card 400x",
		"root", "header", "iconSlot", "icon", "textStack", "title", "summary", "content",
		`"Wi-Fi"`, `"Details"`, `"Connected\nStrong signal"`,
		"recommended", "true",
		"both",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("inspect output missing %q:\n%s", want, got)
		}
	}
}

func TestInspectShowsHiddenNodes(t *testing.T) {
	out := captureStdout(t)
	path := writeDocument(t, "version: 1.0.0\nattributes:\n  noSummary: true\n  noIcon: true\n")

	if err := Execute([]string{"inspect", "--dark", path}); err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if !strings.Contains(out.String(), "gone") {
		t.Errorf("hidden nodes not marked:\n%s", out)
	}
}
