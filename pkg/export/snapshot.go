package export

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"git.sr.ht/~sbinet/gg"
	"github.com/ajstarks/svgo"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font/basicfont"

	"github.com/vanderheijden86/walkthrough/pkg/catalog"
	"github.com/vanderheijden86/walkthrough/pkg/mockup"
	"github.com/vanderheijden86/walkthrough/pkg/walkthrough"
)

// StepSnapshotOptions controls step snapshot export.
type StepSnapshotOptions struct {
	Path   string // Output path; format inferred from extension when Format empty
	Format string // "svg" or "png" (case-insensitive). If empty, inferred from Path.
	StepID int    // Step to draw; the walkthrough is replayed up to it
}

// SaveStepSnapshot renders a static picture of one step: progress rail,
// browser mockup and console.
func SaveStepSnapshot(opts StepSnapshotOptions) error {
	format := strings.ToLower(strings.TrimPrefix(opts.Format, "."))
	if format == "" {
		switch strings.ToLower(filepath.Ext(opts.Path)) {
		case ".svg":
			format = "svg"
		case ".png":
			format = "png"
		default:
			format = "svg"
			if opts.Path != "" && filepath.Ext(opts.Path) == "" {
				opts.Path = opts.Path + ".svg"
			}
		}
	}
	if format != "svg" && format != "png" {
		return fmt.Errorf("unsupported format %q (want svg or png)", format)
	}
	if opts.Path == "" {
		return fmt.Errorf("output path is required")
	}

	layout, err := buildLayout(opts.StepID)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}
	file, err := os.Create(opts.Path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch format {
	case "svg":
		return renderSVGToWriter(file, layout)
	default:
		return renderPNGToWriter(file, layout)
	}
}

// SaveAllStepSnapshots writes one snapshot per step into dir, named
// step-N.<format>, and returns the written paths.
func SaveAllStepSnapshots(dir, format string) ([]string, error) {
	if format == "" {
		format = "svg"
	}
	var paths []string
	for _, s := range catalog.Steps() {
		path := filepath.Join(dir, "step-"+strconv.Itoa(s.ID)+"."+format)
		if err := SaveStepSnapshot(StepSnapshotOptions{Path: path, Format: format, StepID: s.ID}); err != nil {
			return paths, fmt.Errorf("step %d: %w", s.ID, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteStepSVG writes the SVG snapshot of step id to w.
func WriteStepSVG(w io.Writer, id int) error {
	layout, err := buildLayout(id)
	if err != nil {
		return err
	}
	return renderSVGToWriter(w, layout)
}

// WriteStepPNG writes the PNG snapshot of step id to w.
func WriteStepPNG(w io.Writer, id int) error {
	layout, err := buildLayout(id)
	if err != nil {
		return err
	}
	return renderPNGToWriter(w, layout)
}

// --- layout computation ----------------------------------------------------

const (
	canvasWidth   = 720
	canvasPad     = 24
	railY         = 84
	markerRadius  = 14
	chromeHeight  = 40
	bodyHeight    = 260
	tileHeight    = 64
	tileGap       = 12
	endpointH     = 32
	consoleLineH  = 18
	consoleHeader = 36
	charWidth     = 7 // basicfont.Face7x13 advance; also the SVG monospace estimate
)

type box struct {
	X, Y, W, H int
}

type layoutMarker struct {
	ID   int
	X    int
	Done bool
}

type layoutResult struct {
	Width    int
	Height   int
	Step     catalog.Step
	Template mockup.Template
	Markers  []layoutMarker
	Frame    box
	URLBar   box
	Body     box
	Tiles    []box
	Rows     []box
	Console  box // Zero height when the step has no log
}

func buildLayout(id int) (layoutResult, error) {
	step, err := catalog.Lookup(id)
	if err != nil {
		return layoutResult{}, err
	}
	ids := make([]int, 0, id)
	for i := 1; i <= id; i++ {
		ids = append(ids, i)
	}
	st := walkthrough.Replay(catalog.Len(), ids...)

	l := layoutResult{Width: canvasWidth, Step: step, Template: mockup.For(step.Interface)}

	n := catalog.Len()
	span := canvasWidth - 2*canvasPad - 2*markerRadius
	for i := 1; i <= n; i++ {
		x := canvasPad + markerRadius
		if n > 1 {
			x += span * (i - 1) / (n - 1)
		}
		l.Markers = append(l.Markers, layoutMarker{ID: i, X: x, Done: st.IsCompleted(i)})
	}

	l.Frame = box{X: canvasPad, Y: railY + 2*markerRadius + 40, W: canvasWidth - 2*canvasPad}
	l.URLBar = box{X: l.Frame.X + 76, Y: l.Frame.Y + 8, W: l.Frame.W - 92, H: 24}
	l.Body = box{X: l.Frame.X, Y: l.Frame.Y + chromeHeight, W: l.Frame.W, H: bodyHeight}
	l.Frame.H = chromeHeight + bodyHeight

	inner := l.Body.W - 2*canvasPad
	switch l.Template.Layout {
	case mockup.LayoutTiles:
		cols := max(l.Template.Columns, 1)
		w := (inner - (cols-1)*tileGap) / cols
		for i := range l.Template.Tiles {
			row, col := i/cols, i%cols
			l.Tiles = append(l.Tiles, box{
				X: l.Body.X + canvasPad + col*(w+tileGap),
				Y: l.Body.Y + 110 + row*(tileHeight+tileGap),
				W: w,
				H: tileHeight,
			})
		}
	case mockup.LayoutEndpoints:
		for i := range l.Template.Endpoints {
			l.Rows = append(l.Rows, box{
				X: l.Body.X + canvasPad,
				Y: l.Body.Y + 110 + i*(endpointH+8),
				W: inner,
				H: endpointH,
			})
		}
	}

	l.Height = l.Frame.Y + l.Frame.H + canvasPad
	if step.HasTerminal() {
		lines := len(step.TerminalLines())
		l.Console = box{
			X: canvasPad,
			Y: l.Height,
			W: canvasWidth - 2*canvasPad,
			H: consoleHeader + lines*consoleLineH + 12,
		}
		l.Height = l.Console.Y + l.Console.H + canvasPad
	}
	return l, nil
}

// --- rendering ---------------------------------------------------------------

var (
	colorBackdrop   = color.RGBA{0xf9, 0xfa, 0xfb, 0xff}
	colorText       = color.RGBA{0x11, 0x18, 0x27, 0xff}
	colorSubtle     = color.RGBA{0x4b, 0x55, 0x63, 0xff}
	colorDone       = color.RGBA{0x25, 0x63, 0xeb, 0xff}
	colorPending    = color.RGBA{0xd1, 0xd5, 0xdb, 0xff}
	colorStroke     = color.RGBA{0xe5, 0xe7, 0xeb, 0xff}
	colorConsoleBG  = color.RGBA{0x11, 0x18, 0x27, 0xff}
	colorConsoleFG  = color.RGBA{0x4a, 0xde, 0x80, 0xff}
	colorConsoleDim = color.RGBA{0x9c, 0xa3, 0xaf, 0xff}
)

func renderSVGToWriter(w io.Writer, l layoutResult) error {
	canvas := svg.New(w)
	canvas.Start(l.Width, l.Height)
	canvas.Title(catalog.Title + " · " + l.Step.Title)
	canvas.Rect(0, 0, l.Width, l.Height, fmt.Sprintf("fill:%s", css(colorBackdrop)))

	canvas.Text(l.Width/2, 40, catalog.Title,
		fmt.Sprintf("fill:%s;font-size:20px;font-family:sans-serif;font-weight:bold;text-anchor:middle", css(colorText)))
	drawRailSVG(canvas, l)
	drawMockupSVG(canvas, l)
	if l.Console.H > 0 {
		drawConsoleSVG(canvas, l)
	}

	canvas.End()
	return nil
}

func drawRailSVG(canvas *svg.SVG, l layoutResult) {
	for i, m := range l.Markers {
		if i > 0 {
			prev := l.Markers[i-1]
			stroke := colorPending
			if m.Done {
				stroke = colorDone
			}
			canvas.Line(prev.X+markerRadius+4, railY, m.X-markerRadius-4, railY,
				fmt.Sprintf("stroke:%s;stroke-width:3", css(stroke)))
		}
	}
	for _, m := range l.Markers {
		fill, fg, label := colorPending, colorSubtle, strconv.Itoa(m.ID)
		if m.Done {
			fill, fg, label = colorDone, color.RGBA{0xff, 0xff, 0xff, 0xff}, "✓"
		}
		style := fmt.Sprintf("fill:%s", css(fill))
		if m.ID == l.Step.ID {
			style += fmt.Sprintf(";stroke:%s;stroke-width:3", css(colorText))
		}
		canvas.Circle(m.X, railY, markerRadius, style)
		canvas.Text(m.X, railY+5, label,
			fmt.Sprintf("fill:%s;font-size:14px;font-family:sans-serif;font-weight:bold;text-anchor:middle", css(fg)))
	}
	canvas.Text(l.Width/2, railY+markerRadius+26,
		fmt.Sprintf("Step %d of %d · %s", l.Step.ID, len(l.Markers), l.Step.Title),
		fmt.Sprintf("fill:%s;font-size:13px;font-family:sans-serif;text-anchor:middle", css(colorSubtle)))
}

func drawMockupSVG(canvas *svg.SVG, l layoutResult) {
	tpl := l.Template
	f := l.Frame

	canvas.Def()
	canvas.LinearGradient("body-bg", 0, 0, 100, 100, []svg.Offcolor{
		{Offset: 0, Color: tpl.BgFrom, Opacity: 1},
		{Offset: 100, Color: tpl.BgTo, Opacity: 1},
	})
	canvas.DefEnd()

	canvas.Roundrect(f.X, f.Y, f.W, f.H, 10, 10, fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", mockup.ChromeBg, css(colorStroke)))
	for i, c := range []string{mockup.DotRed, mockup.DotYellow, mockup.DotGreen} {
		canvas.Circle(f.X+20+i*18, f.Y+20, 6, "fill:"+c)
	}
	u := l.URLBar
	canvas.Roundrect(u.X, u.Y, u.W, u.H, 6, 6, "fill:"+mockup.URLBarBg)
	canvas.Text(u.X+10, u.Y+16, fitText(l.Step.DisplayURL(), u.W-20),
		fmt.Sprintf("fill:%s;font-size:12px;font-family:monospace", mockup.URLBarFg))

	b := l.Body
	canvas.Rect(b.X, b.Y, b.W, b.H, "fill:url(#body-bg)")
	cx := b.X + b.W/2
	canvas.Text(cx, b.Y+48, tpl.HeadingLine(),
		fmt.Sprintf("fill:%s;font-size:20px;font-family:sans-serif;font-weight:bold;text-anchor:middle", mockup.HeadingFg))
	canvas.Text(cx, b.Y+74, tpl.Subheading,
		fmt.Sprintf("fill:%s;font-size:13px;font-family:sans-serif;text-anchor:middle", mockup.SubtextFg))

	switch tpl.Layout {
	case mockup.LayoutHero:
		if tpl.Spinner {
			canvas.Circle(cx, b.Y+150, 18, fmt.Sprintf("fill:none;stroke:%s;stroke-width:4;stroke-dasharray:80 40", mockup.Spinner))
		}
	case mockup.LayoutTiles:
		label := mockup.HeadingFg
		if tpl.LabelColor != "" {
			label = tpl.LabelColor
		}
		value := mockup.MutedFg
		weight := "normal"
		if tpl.ValuesHighlighted() {
			value, weight = mockup.ValueFg, "bold"
		}
		for i, t := range tpl.Tiles {
			r := l.Tiles[i]
			canvas.Roundrect(r.X, r.Y, r.W, r.H, 8, 8, fmt.Sprintf("fill:%s;stroke:%s", mockup.CardBg, css(colorStroke)))
			tx := r.X + r.W/2
			top := r.Y + 24
			if t.Icon != "" {
				canvas.Text(tx, top, t.Icon, "font-size:16px;text-anchor:middle")
				top += 18
			}
			canvas.Text(tx, top, t.Label, fmt.Sprintf("fill:%s;font-size:13px;font-family:sans-serif;text-anchor:middle", label))
			if t.Value != "" {
				canvas.Text(tx, top+18, t.Value,
					fmt.Sprintf("fill:%s;font-size:13px;font-family:sans-serif;font-weight:%s;text-anchor:middle", value, weight))
			}
		}
	case mockup.LayoutEndpoints:
		for i, ep := range tpl.Endpoints {
			r := l.Rows[i]
			canvas.Roundrect(r.X, r.Y, r.W, r.H, 6, 6, fmt.Sprintf("fill:%s;stroke:%s", mockup.CardBg, css(colorStroke)))
			canvas.Text(r.X+12, r.Y+21, ep.Method, fmt.Sprintf("fill:%s;font-size:13px;font-family:monospace;font-weight:bold", ep.Color))
			canvas.Text(r.X+12+6*charWidth+4, r.Y+21, ep.Path, fmt.Sprintf("fill:%s;font-size:13px;font-family:monospace", mockup.HeadingFg))
		}
	}
}

func drawConsoleSVG(canvas *svg.SVG, l layoutResult) {
	c := l.Console
	canvas.Roundrect(c.X, c.Y, c.W, c.H, 8, 8, fmt.Sprintf("fill:%s", css(colorConsoleBG)))
	for i, d := range []string{mockup.DotRed, mockup.DotYellow, mockup.DotGreen} {
		canvas.Circle(c.X+18+i*16, c.Y+18, 5, "fill:"+d)
	}
	canvas.Text(c.X+76, c.Y+22, "System Console",
		fmt.Sprintf("fill:%s;font-size:12px;font-family:sans-serif", css(colorConsoleDim)))
	for i, line := range l.Step.TerminalLines() {
		canvas.Text(c.X+16, c.Y+consoleHeader+12+i*consoleLineH, line,
			fmt.Sprintf("fill:%s;font-size:13px;font-family:monospace;white-space:pre", css(colorConsoleFG)))
	}
}

func renderPNGToWriter(w io.Writer, l layoutResult) error {
	dc := gg.NewContext(l.Width, l.Height)
	dc.SetColor(colorBackdrop)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(colorText)
	dc.DrawStringAnchored(catalog.Title, float64(l.Width)/2, 40, 0.5, 0.5)

	// rail
	dc.SetLineWidth(3)
	for i := 1; i < len(l.Markers); i++ {
		prev, m := l.Markers[i-1], l.Markers[i]
		dc.SetColor(colorPending)
		if m.Done {
			dc.SetColor(colorDone)
		}
		dc.DrawLine(float64(prev.X+markerRadius+4), railY, float64(m.X-markerRadius-4), railY)
		dc.Stroke()
	}
	for _, m := range l.Markers {
		label := strconv.Itoa(m.ID)
		dc.SetColor(colorPending)
		if m.Done {
			dc.SetColor(colorDone)
			label = "v"
		}
		dc.DrawCircle(float64(m.X), railY, markerRadius)
		dc.Fill()
		if m.ID == l.Step.ID {
			dc.SetColor(colorText)
			dc.SetLineWidth(3)
			dc.DrawCircle(float64(m.X), railY, markerRadius)
			dc.Stroke()
		}
		dc.SetColor(color.White)
		if !m.Done {
			dc.SetColor(colorSubtle)
		}
		dc.DrawStringAnchored(label, float64(m.X), railY, 0.5, 0.5)
	}
	dc.SetColor(colorSubtle)
	dc.DrawStringAnchored(asciiOnly(fmt.Sprintf("Step %d of %d - %s", l.Step.ID, len(l.Markers), l.Step.Title)),
		float64(l.Width)/2, railY+markerRadius+22, 0.5, 0.5)

	drawMockupPNG(dc, l)
	if l.Console.H > 0 {
		drawConsolePNG(dc, l)
	}
	return dc.EncodePNG(w)
}

func drawMockupPNG(dc *gg.Context, l layoutResult) {
	tpl := l.Template
	f := l.Frame
	dc.SetColor(hexColor(mockup.ChromeBg))
	dc.DrawRoundedRectangle(float64(f.X), float64(f.Y), float64(f.W), float64(f.H), 10)
	dc.Fill()
	for i, c := range []string{mockup.DotRed, mockup.DotYellow, mockup.DotGreen} {
		dc.SetColor(hexColor(c))
		dc.DrawCircle(float64(f.X+20+i*18), float64(f.Y+20), 6)
		dc.Fill()
	}
	u := l.URLBar
	dc.SetColor(hexColor(mockup.URLBarBg))
	dc.DrawRoundedRectangle(float64(u.X), float64(u.Y), float64(u.W), float64(u.H), 6)
	dc.Fill()
	dc.SetColor(hexColor(mockup.URLBarFg))
	dc.DrawStringAnchored(fitText(l.Step.DisplayURL(), u.W-20), float64(u.X+10), float64(u.Y+u.H/2), 0, 0.5)

	b := l.Body
	dc.SetColor(hexColor(tpl.BgFrom))
	dc.DrawRectangle(float64(b.X), float64(b.Y), float64(b.W), float64(b.H))
	dc.Fill()

	cx := float64(b.X + b.W/2)
	dc.SetColor(hexColor(mockup.HeadingFg))
	dc.DrawStringAnchored(tpl.Heading, cx, float64(b.Y+48), 0.5, 0.5)
	dc.SetColor(hexColor(mockup.SubtextFg))
	dc.DrawStringAnchored(asciiOnly(tpl.Subheading), cx, float64(b.Y+72), 0.5, 0.5)

	switch tpl.Layout {
	case mockup.LayoutHero:
		if tpl.Spinner {
			dc.SetColor(hexColor(mockup.Spinner))
			dc.SetLineWidth(4)
			dc.DrawArc(cx, float64(b.Y+150), 18, 0, 4.5)
			dc.Stroke()
		}
	case mockup.LayoutTiles:
		label := mockup.HeadingFg
		if tpl.LabelColor != "" {
			label = tpl.LabelColor
		}
		value := mockup.MutedFg
		if tpl.ValuesHighlighted() {
			value = mockup.ValueFg
		}
		for i, t := range tpl.Tiles {
			r := l.Tiles[i]
			dc.SetColor(hexColor(mockup.CardBg))
			dc.DrawRoundedRectangle(float64(r.X), float64(r.Y), float64(r.W), float64(r.H), 8)
			dc.Fill()
			tx := float64(r.X + r.W/2)
			dc.SetColor(hexColor(label))
			dc.DrawStringAnchored(t.Label, tx, float64(r.Y+24), 0.5, 0.5)
			if t.Value != "" {
				dc.SetColor(hexColor(value))
				dc.DrawStringAnchored(t.Value, tx, float64(r.Y+42), 0.5, 0.5)
			}
		}
	case mockup.LayoutEndpoints:
		for i, ep := range tpl.Endpoints {
			r := l.Rows[i]
			dc.SetColor(hexColor(mockup.CardBg))
			dc.DrawRoundedRectangle(float64(r.X), float64(r.Y), float64(r.W), float64(r.H), 6)
			dc.Fill()
			dc.SetColor(hexColor(ep.Color))
			dc.DrawStringAnchored(ep.Method, float64(r.X+12), float64(r.Y+r.H/2), 0, 0.5)
			dc.SetColor(hexColor(mockup.HeadingFg))
			dc.DrawStringAnchored(ep.Path, float64(r.X+12+6*charWidth+4), float64(r.Y+r.H/2), 0, 0.5)
		}
	}
}

func drawConsolePNG(dc *gg.Context, l layoutResult) {
	c := l.Console
	dc.SetColor(colorConsoleBG)
	dc.DrawRoundedRectangle(float64(c.X), float64(c.Y), float64(c.W), float64(c.H), 8)
	dc.Fill()
	for i, d := range []string{mockup.DotRed, mockup.DotYellow, mockup.DotGreen} {
		dc.SetColor(hexColor(d))
		dc.DrawCircle(float64(c.X+18+i*16), float64(c.Y+18), 5)
		dc.Fill()
	}
	dc.SetColor(colorConsoleDim)
	dc.DrawStringAnchored("System Console", float64(c.X+76), float64(c.Y+18), 0, 0.5)
	dc.SetColor(colorConsoleFG)
	for i, line := range l.Step.TerminalLines() {
		dc.DrawStringAnchored(asciiOnly(line), float64(c.X+16), float64(c.Y+consoleHeader+8+i*consoleLineH), 0, 0.5)
	}
}

// --- helpers ---------------------------------------------------------------

// fitText truncates s so its monospace rendering fits in px pixels.
func fitText(s string, px int) string {
	cells := px / charWidth
	if runewidth.StringWidth(s) <= cells {
		return s
	}
	return runewidth.Truncate(s, cells, "…")
}

// asciiOnly drops runes the bitmap font cannot draw, along with the space
// that followed a dropped emoji.
func asciiOnly(s string) string {
	var b strings.Builder
	skipSpace := false
	for _, r := range s {
		switch {
		case r < 0x80:
			if skipSpace && r == ' ' {
				skipSpace = false
				continue
			}
			skipSpace = false
			b.WriteRune(r)
		default:
			skipSpace = b.Len() == 0 || strings.HasSuffix(b.String(), " ")
		}
	}
	return b.String()
}

func hexColor(hex string) color.RGBA {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return colorText
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return colorText
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}
}

func css(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
