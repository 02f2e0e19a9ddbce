package sink

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/archdiagram/pkg/draw"
	"github.com/matzehuels/archdiagram/pkg/errors"
	"github.com/matzehuels/archdiagram/pkg/fonts"
	"github.com/matzehuels/archdiagram/pkg/palette"
	"github.com/matzehuels/archdiagram/pkg/scene"
)

func architecture(d draw.Drawer) error {
	return scene.Architecture(d, palette.Default())
}

func small(d draw.Drawer) error {
	draw.FilledBox(d, draw.Rect(10, 10, 60, 40), palette.MustHex("#4A90E2"))
	draw.DefaultArrow(d, draw.Pt(60, 25), draw.Pt(90, 25))
	d.Text("a < b & c", draw.Pt(35, 25), draw.Body, palette.MustHex("#333333"), draw.Middle)
	return d.Err()
}

func degenerate(d draw.Drawer) error {
	red := palette.MustHex("#ff0000")
	draw.FilledBox(d, draw.Rect(10, 10, 10, 50), red)
	draw.FilledBox(d, draw.Rect(10, 10, 50, 10), red)
	draw.FilledBox(d, draw.Rect(20, 20, 20, 20), red)
	draw.DefaultArrow(d, draw.Pt(5, 5), draw.Pt(5, 5))
	return d.Err()
}

func TestRenderPNGSize(t *testing.T) {
	data, err := RenderPNG(architecture)
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 1600 || cfg.Height != 1200 {
		t.Errorf("size = %dx%d, want 1600x1200", cfg.Width, cfg.Height)
	}
}

func TestRenderPNGDeterministic(t *testing.T) {
	a, err := RenderPNG(architecture)
	if err != nil {
		t.Fatal(err)
	}
	b, err := RenderPNG(architecture)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("two renders produced different bytes")
	}
}

func TestRenderPNGFallbackFont(t *testing.T) {
	fs := fonts.Load(filepath.Join(t.TempDir(), "missing.ttf"), fonts.DefaultSizes())
	if !fs.Fallback {
		t.Fatal("expected fallback font")
	}
	data, err := RenderPNG(architecture, WithFonts(fs))
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("decode: %v", err)
	}
}

func TestRenderPNGCanvasSize(t *testing.T) {
	data, err := RenderPNG(small, WithCanvasSize(100, 50))
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 100 || cfg.Height != 50 {
		t.Errorf("size = %dx%d, want 100x50", cfg.Width, cfg.Height)
	}

	if _, err := RenderPNG(small, WithCanvasSize(0, 50)); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("zero width: err = %v, want INVALID_INPUT", err)
	}
}

func TestDegenerateRect(t *testing.T) {
	for _, format := range []string{FormatPNG, FormatSVG, FormatJSON} {
		t.Run(format, func(t *testing.T) {
			if _, err := Render(format, degenerate, Options{Width: 100, Height: 100}); err != nil {
				t.Errorf("Render: %v", err)
			}
		})
	}
}

func TestComposeErrorWrapped(t *testing.T) {
	boom := stderrors.New("boom")
	fail := func(draw.Drawer) error { return boom }

	for _, format := range []string{FormatPNG, FormatSVG, FormatJSON} {
		t.Run(format, func(t *testing.T) {
			_, err := Render(format, fail, Options{})
			if !errors.Is(err, errors.ErrCodeRenderFailed) {
				t.Errorf("err = %v, want RENDER_FAILED", err)
			}
			if !stderrors.Is(err, boom) {
				t.Errorf("err = %v, want cause boom", err)
			}
		})
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render("gif", small, Options{})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want INVALID_FORMAT", err)
	}
}

func TestRenderSVG(t *testing.T) {
	data, err := RenderSVG(small, WithSVGSize(100, 50), WithFontFamily("monospace"))
	if err != nil {
		t.Fatal(err)
	}
	svg := string(data)

	for _, want := range []string{
		`viewBox="0 0 100 50"`,
		`font-family: monospace;`,
		`<rect x="10" y="10" width="50" height="30" fill="#4a90e2" stroke="#000000" stroke-width="2"/>`,
		`<line x1="60" y1="25" x2="90" y2="25" stroke="#333333" stroke-width="3"/>`,
		`<polygon points="80,20 90,25 80,30" fill="#333333"/>`,
		`text-anchor="middle"`,
		`font-size="22"`,
		`a &lt; b &amp; c`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}

	// call order: box, shaft, head, label
	order := []string{"<rect x=", "<line", "<polygon", "<text"}
	last := -1
	for _, tag := range order {
		i := strings.Index(svg, tag)
		if i <= last {
			t.Errorf("%s at %d, want after %d", tag, i, last)
		}
		last = i
	}
}

func TestRenderSVGLeftAnchor(t *testing.T) {
	data, err := RenderSVG(func(d draw.Drawer) error {
		d.Text("x", draw.Pt(1, 2), draw.Small, palette.MustHex("#000000"), draw.LeftMiddle)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `text-anchor="start"`) {
		t.Errorf("left-middle text should use text-anchor start:\n%s", data)
	}
}

func TestRenderJSON(t *testing.T) {
	fs := fonts.Embedded(fonts.DefaultSizes())
	data, err := RenderJSON(small, WithJSONFonts(fs, fonts.DefaultSizes()))
	if err != nil {
		t.Fatal(err)
	}

	var doc struct {
		Width    int  `json:"width"`
		Height   int  `json:"height"`
		Fallback bool `json:"font_fallback"`
		Ops      []Op `json:"ops"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Width != 1600 || doc.Height != 1200 {
		t.Errorf("size = %dx%d", doc.Width, doc.Height)
	}
	if !doc.Fallback {
		t.Error("font_fallback = false, want true")
	}

	ops := make([]string, len(doc.Ops))
	for i, op := range doc.Ops {
		ops[i] = op.Op
	}
	if got := strings.Join(ops, ","); got != "rect,arrow,text" {
		t.Errorf("ops = %s, want rect,arrow,text", got)
	}

	arrow := doc.Ops[1]
	want := [][2]float64{{80, 20}, {90, 25}, {80, 30}}
	if len(arrow.Head) != 3 {
		t.Fatalf("head = %v", arrow.Head)
	}
	for i := range want {
		if arrow.Head[i] != want[i] {
			t.Errorf("head[%d] = %v, want %v", i, arrow.Head[i], want[i])
		}
	}

	text := doc.Ops[2]
	if text.Text != "a < b & c" || text.Role != "text" || text.Anchor != "mm" {
		t.Errorf("text op = %+v", text)
	}
}

func TestRenderJSONArchitecture(t *testing.T) {
	data, err := RenderJSON(architecture)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Ops []Op `json:"ops"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	counts := map[string]int{}
	for _, op := range doc.Ops {
		counts[op.Op]++
	}
	if counts["rect"] != 10 || counts["arrow"] != 5 || counts["text"] != 68 {
		t.Errorf("counts = %v, want rect=10 arrow=5 text=68", counts)
	}
	if first := doc.Ops[0]; first.Op != "text" || first.Text != scene.ArchitectureTitle {
		t.Errorf("first op = %+v, want title text", first)
	}
}
