// Package signature renders freehand guardian signatures onto a raster
// surface and exports them as embeddable PNG data URIs.
package signature

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"strings"
)

type State int

const (
	Idle State = iota
	Drawing
	HasSignature
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	case HasSignature:
		return "has_signature"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

const (
	lineWidth     = 2.5
	dataURIPrefix = "data:image/png;base64,"
)

// Matches the slate ink color used on the form.
var strokeColor = color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff}

// Pad is the signature surface. Pointer events are serialized by the
// input device, so Pad needs no locking; one Pad belongs to one form
// session.
type Pad struct {
	state         State
	img           *image.RGBA
	width, height int
	lastX, lastY  float64
}

func NewPad(width, height int) *Pad {
	return &Pad{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
	}
}

func (p *Pad) State() State { return p.state }

// Begin starts a stroke at the pointer position.
func (p *Pad) Begin(x, y float64) {
	p.state = Drawing
	p.lastX, p.lastY = x, y
	p.dot(x, y)
}

// Move extends the current stroke. Ignored outside of Drawing.
func (p *Pad) Move(x, y float64) {
	if p.state != Drawing {
		return
	}
	p.segment(p.lastX, p.lastY, x, y)
	p.lastX, p.lastY = x, y
}

// End finishes the stroke and returns the exported payload to push into
// the form. Calling End while not drawing returns the current export.
func (p *Pad) End() string {
	if p.state == Drawing {
		p.state = HasSignature
	}
	return p.Export()
}

// Clear erases the whole surface and returns the empty payload the form
// should store.
func (p *Pad) Clear() string {
	p.img = image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	p.state = Idle
	return ""
}

// Export encodes the raster as a PNG data URI. The encoding is lossless
// so the signature redisplays at original resolution.
func (p *Pad) Export() string {
	var buf bytes.Buffer
	if err := png.Encode(&buf, p.img); err != nil {
		return ""
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes())
}

// Load replaces the surface with a previously exported payload and
// enters HasSignature, matching re-entry into a session that already
// carries a signature. An empty payload clears the pad instead.
func (p *Pad) Load(dataURI string) error {
	if dataURI == "" {
		p.Clear()
		return nil
	}
	img, err := DecodeDataURI(dataURI)
	if err != nil {
		return err
	}
	p.img = image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	draw.Draw(p.img, img.Bounds(), img, image.Point{}, draw.Over)
	p.state = HasSignature
	return nil
}

// DecodeDataURI decodes a PNG data URI produced by Export.
func DecodeDataURI(dataURI string) (image.Image, error) {
	raw, ok := strings.CutPrefix(dataURI, dataURIPrefix)
	if !ok {
		return nil, errors.New("not a PNG data URI")
	}
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding signature payload: %w", err)
	}
	img, err := png.Decode(bytes.NewReader(decoded))
	if err != nil {
		return nil, fmt.Errorf("decoding signature image: %w", err)
	}
	return img, nil
}

// segment paints a stroke segment by stamping round dots along it,
// which gives the rounded caps and joins of the original pen.
func (p *Pad) segment(x0, y0, x1, y1 float64) {
	dist := math.Hypot(x1-x0, y1-y0)
	steps := int(dist) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p.dot(x0+(x1-x0)*t, y0+(y1-y0)*t)
	}
}

func (p *Pad) dot(cx, cy float64) {
	r := lineWidth / 2
	for y := int(math.Floor(cy - r)); y <= int(math.Ceil(cy+r)); y++ {
		for x := int(math.Floor(cx - r)); x <= int(math.Ceil(cx+r)); x++ {
			if x < 0 || y < 0 || x >= p.width || y >= p.height {
				continue
			}
			if math.Hypot(float64(x)-cx, float64(y)-cy) <= r {
				p.img.SetRGBA(x, y, strokeColor)
			}
		}
	}
}
