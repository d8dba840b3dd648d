// Package raster implementa la exportación JPEG del recibo: dibuja el mismo
// modelo de documento que consumen la vista previa y el PDF sobre un lienzo
// RGBA y lo codifica como imagen. Tipografía Go (goregular/gobold) vía
// golang.org/x/image/font.
package raster

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"strings"

	// Formatos aceptados para decodificar el logo embebido.
	_ "image/gif"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/jhoicas/Recibos-api/internal/application/render"
	"github.com/jhoicas/Recibos-api/pkg/dataurl"
)

// Dimensiones del lienzo (px). El alto es generoso y al final se recorta a lo
// realmente dibujado; un recibo extremadamente largo se trunca en maxHeight.
const (
	pageWidth = 1240
	maxHeight = 6000
	margin    = 64
	logoMax   = 140

	jpegQuality = 90
)

var (
	colorInk   = color.RGBA{R: 17, G: 24, B: 39, A: 255}
	colorMuted = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	colorRule  = color.RGBA{R: 203, G: 213, B: 225, A: 255}
)

// Renderer implementa receipt.DocumentImageRenderer.
type Renderer struct {
	title   font.Face // títulos grandes (negocio, "Repair Invoice")
	section font.Face // títulos de sección
	label   font.Face // etiquetas en negrita
	value   font.Face // valores
	small   font.Face // referencias, disclaimer
}

// NewRenderer carga las tipografías embebidas. Falla solo si los TTF de la
// librería no parsean, lo que en la práctica no ocurre.
func NewRenderer() (*Renderer, error) {
	reg, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: parsear goregular: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: parsear gobold: %w", err)
	}

	face := func(f *opentype.Font, size float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{
			Size: size, DPI: 144, Hinting: font.HintingFull,
		})
	}

	r := &Renderer{}
	specs := []struct {
		dst  *font.Face
		src  *opentype.Font
		size float64
	}{
		{&r.title, bold, 16},
		{&r.section, bold, 12},
		{&r.label, bold, 9.5},
		{&r.value, reg, 9.5},
		{&r.small, reg, 8},
	}
	for _, sp := range specs {
		f, err := face(sp.src, sp.size)
		if err != nil {
			return nil, fmt.Errorf("raster: crear face: %w", err)
		}
		*sp.dst = f
	}
	return r, nil
}

// Render dibuja el documento y devuelve los bytes JPEG.
func (r *Renderer) Render(_ context.Context, d *render.Document) ([]byte, error) {
	c := newCanvas()

	r.drawHeader(c, d)
	c.rule(margin, pageWidth-margin)

	r.drawSection(c, "Customer Information", d.Customer)
	r.drawSection(c, "Repair Agent", d.Agent)

	for _, item := range d.Items {
		r.drawItem(c, item)
	}

	r.drawSection(c, "Labor & Diagnostic Fees", d.Labor)

	c.rule(margin, pageWidth-margin)
	r.drawTotals(c, d)
	r.drawDisclaimer(c, d)
	r.drawSignatures(c, d)

	return c.encode()
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (r *Renderer) drawHeader(c *canvas, d *render.Document) {
	top := c.y

	// Columna izquierda: logo + identidad del negocio.
	if logo := decodeLogo(d.Store.LogoDataURL); logo != nil {
		c.drawImage(logo, margin)
		c.advance(12)
	}
	c.text(r.title, margin, d.Store.Name, colorInk)
	for _, l := range d.Store.Lines {
		c.text(r.value, margin, l, colorMuted)
	}
	leftBottom := c.y

	// Columna derecha: título + referencias, alineados a la derecha.
	c.y = top
	c.textRight(r.title, pageWidth-margin, d.Title, colorInk)
	c.advance(4)
	for _, ref := range d.Refs {
		c.textRight(r.small, pageWidth-margin, ref.Label+" "+ref.Value, colorMuted)
	}

	if leftBottom > c.y {
		c.y = leftBottom
	}
	c.advance(16)
}

func (r *Renderer) drawSection(c *canvas, title string, fields []render.Field) {
	c.advance(10)
	c.text(r.section, margin, title, colorInk)
	c.advance(4)
	for _, f := range fields {
		r.drawField(c, f)
	}
}

// drawField etiqueta en columna fija + valor envuelto a lo ancho restante.
func (r *Renderer) drawField(c *canvas, f render.Field) {
	const valueX = margin + 220
	labelY := c.y
	c.text(r.label, margin, f.Label, colorInk)
	fieldBottom := c.y

	c.y = labelY
	for _, line := range wrapText(r.value, f.Value, pageWidth-margin-valueX) {
		c.text(r.value, valueX, line, colorInk)
	}
	if fieldBottom > c.y {
		c.y = fieldBottom
	}
}

func (r *Renderer) drawItem(c *canvas, item render.ItemBlock) {
	r.drawSection(c, item.Title, item.Fields)

	if len(item.Parts) == 0 {
		return
	}

	// Tabla de repuestos: nombre | INR | USD.
	const (
		colINR = pageWidth - margin - 220
		colUSD = pageWidth - margin
	)
	c.advance(6)
	rowY := c.y
	c.text(r.label, margin, item.PartsHeader[0], colorInk)
	headerBottom := c.y
	c.y = rowY
	c.textRight(r.label, colINR, item.PartsHeader[1], colorInk)
	c.y = rowY
	c.textRight(r.label, colUSD, item.PartsHeader[2], colorInk)
	c.y = headerBottom
	c.rule(margin, pageWidth-margin)

	for _, p := range item.Parts {
		rowY = c.y
		c.text(r.value, margin, p[0], colorInk)
		rowBottom := c.y
		c.y = rowY
		c.textRight(r.value, colINR, p[1], colorInk)
		c.y = rowY
		c.textRight(r.value, colUSD, p[2], colorInk)
		c.y = rowBottom
	}
}

func (r *Renderer) drawTotals(c *canvas, d *render.Document) {
	c.advance(8)
	totals := fmt.Sprintf("Total (INR): %s    Total (USD): %s", d.TotalINR, d.TotalUSD)
	c.textRight(r.section, pageWidth-margin, totals, colorInk)
	c.advance(8)
}

func (r *Renderer) drawDisclaimer(c *canvas, d *render.Document) {
	c.advance(10)
	c.text(r.section, margin, d.DisclaimerTitle, colorInk)
	c.advance(4)
	for _, p := range d.Disclaimer {
		for _, line := range wrapText(r.small, p, pageWidth-2*margin) {
			c.text(r.small, margin, line, colorMuted)
		}
		c.advance(3)
	}
}

func (r *Renderer) drawSignatures(c *canvas, d *render.Document) {
	c.advance(56)
	const sigWidth = 380
	leftX := margin
	rightX := pageWidth - margin - sigWidth

	c.hline(leftX, leftX+sigWidth, colorInk)
	c.hline(rightX, rightX+sigWidth, colorInk)
	c.advance(10)

	y := c.y
	c.textCenter(r.value, leftX+sigWidth/2, d.Signatures[0], colorMuted)
	c.y = y
	c.textCenter(r.value, rightX+sigWidth/2, d.Signatures[1], colorMuted)
	c.advance(6)
}

// ── Lienzo ────────────────────────────────────────────────────────────────────

type canvas struct {
	img *image.RGBA
	y   int
}

func newCanvas() *canvas {
	img := image.NewRGBA(image.Rect(0, 0, pageWidth, maxHeight))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &canvas{img: img, y: margin}
}

func (c *canvas) advance(px int) { c.y += px }

// text dibuja una línea y avanza el cursor una altura de línea.
func (c *canvas) text(face font.Face, x int, s string, col color.Color) {
	c.drawAt(face, x, s, col)
	c.y += lineHeight(face)
}

// textRight dibuja alineado a la derecha del límite x.
func (c *canvas) textRight(face font.Face, right int, s string, col color.Color) {
	w := font.MeasureString(face, s).Ceil()
	c.drawAt(face, right-w, s, col)
	c.y += lineHeight(face)
}

// textCenter dibuja centrado en x.
func (c *canvas) textCenter(face font.Face, center int, s string, col color.Color) {
	w := font.MeasureString(face, s).Ceil()
	c.drawAt(face, center-w/2, s, col)
	c.y += lineHeight(face)
}

func (c *canvas) drawAt(face font.Face, x int, s string, col color.Color) {
	baseline := c.y + face.Metrics().Ascent.Ceil()
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

// rule línea separadora gris con aire arriba y abajo.
func (c *canvas) rule(x0, x1 int) {
	c.advance(8)
	c.hline(x0, x1, colorRule)
	c.advance(8)
}

func (c *canvas) hline(x0, x1 int, col color.Color) {
	draw.Draw(c.img, image.Rect(x0, c.y, x1, c.y+2), image.NewUniform(col), image.Point{}, draw.Src)
	c.y += 2
}

// drawImage dibuja una imagen reescalada a logoMax de lado mayor.
func (c *canvas) drawImage(src image.Image, x int) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return
	}
	scale := float64(logoMax) / float64(max(w, h))
	if scale > 1 {
		scale = 1
	}
	dw, dh := int(float64(w)*scale), int(float64(h)*scale)
	dst := image.Rect(x, c.y, x+dw, c.y+dh)
	xdraw.ApproxBiLinear.Scale(c.img, dst, src, b, xdraw.Over, nil)
	c.y += dh
}

// encode recorta el lienzo a lo dibujado y codifica JPEG.
func (c *canvas) encode() ([]byte, error) {
	bottom := c.y + margin
	if bottom > maxHeight {
		bottom = maxHeight
	}
	out := c.img.SubImage(image.Rect(0, 0, pageWidth, bottom))

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("raster: codificar jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func decodeLogo(logoURL string) image.Image {
	if logoURL == "" {
		return nil
	}
	_, data, err := dataurl.Decode(logoURL)
	if err != nil {
		return nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	return img
}

func lineHeight(face font.Face) int {
	m := face.Metrics()
	return (m.Ascent + m.Descent).Ceil() + 4
}

// wrapText parte s en líneas que no excedan maxWidth al dibujarse con face.
// Una palabra más larga que el ancho va sola en su línea (se recorta al
// dibujar, no se parte).
func wrapText(face font.Face, s string, maxWidth int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		candidate := current + " " + w
		if font.MeasureString(face, candidate).Ceil() > maxWidth {
			lines = append(lines, current)
			current = w
			continue
		}
		current = candidate
	}
	return append(lines, current)
}
