package pdf2image

import (
	"fmt"
	"strconv"
)

// Backend selects which poppler rendering tool produces page images.
type Backend int

const (
	// PDFToPPM renders with pdftoppm, the default backend.
	PDFToPPM Backend = iota
	// PDFToCairo renders with pdftocairo. It produces the same raster
	// formats but uses the cairo rasterizer, which handles some
	// documents (notably ones with transparency groups) better.
	PDFToCairo
)

// Format is the raster format the rendering tool is asked to emit.
type Format int

const (
	// JPEG output. The default.
	JPEG Format = iota
	// PNG output.
	PNG
	// TIFF output.
	TIFF
)

// flag returns the poppler CLI flag selecting this format.
func (f Format) flag() string {
	switch f {
	case PNG:
		return "-png"
	case TIFF:
		return "-tiff"
	default:
		return "-jpeg"
	}
}

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case TIFF:
		return "tiff"
	default:
		return "jpeg"
	}
}

// RenderOptions controls how pages are rendered to images.
//
// Build one with [NewRenderOptions]; conflicting options are rejected
// there, before any external process is spawned. A nil *RenderOptions is
// valid everywhere one is accepted and means all defaults: pdftoppm,
// JPEG, the tool's own resolution, no crop, no password.
type RenderOptions struct {
	dpi           int
	dpiX, dpiY    int
	scaleTo       int
	scaleToX      int
	scaleToY      int
	crop          *cropBox
	userPassword  string
	ownerPassword string
	backend       Backend
	format        Format
}

type cropBox struct {
	x, y, w, h int
}

// RenderOption configures a [RenderOptions] under construction.
type RenderOption func(*RenderOptions)

// WithDPI sets a uniform rendering resolution in dots per inch.
func WithDPI(dpi int) RenderOption {
	return func(o *RenderOptions) { o.dpi = dpi }
}

// WithDPIXY sets independent horizontal and vertical resolutions.
func WithDPIXY(x, y int) RenderOption {
	return func(o *RenderOptions) { o.dpiX, o.dpiY = x, y }
}

// WithScaleToMax scales the longer side of each page to px pixels,
// preserving the aspect ratio.
func WithScaleToMax(px int) RenderOption {
	return func(o *RenderOptions) { o.scaleTo = px }
}

// WithScaleTo scales pages to exactly width x height pixels.
func WithScaleTo(width, height int) RenderOption {
	return func(o *RenderOptions) { o.scaleToX, o.scaleToY = width, height }
}

// WithCrop renders only the w x h pixel rectangle whose top-left corner
// is at (x, y).
func WithCrop(x, y, w, h int) RenderOption {
	return func(o *RenderOptions) { o.crop = &cropBox{x: x, y: y, w: w, h: h} }
}

// WithUserPassword supplies the document's user password.
func WithUserPassword(pw string) RenderOption {
	return func(o *RenderOptions) { o.userPassword = pw }
}

// WithOwnerPassword supplies the document's owner password.
func WithOwnerPassword(pw string) RenderOption {
	return func(o *RenderOptions) { o.ownerPassword = pw }
}

// WithBackend selects the rendering tool.
func WithBackend(b Backend) RenderOption {
	return func(o *RenderOptions) { o.backend = b }
}

// WithFormat selects the raster format the tool emits and the decoder
// expects.
func WithFormat(f Format) RenderOption {
	return func(o *RenderOptions) { o.format = f }
}

// NewRenderOptions builds a validated, immutable RenderOptions.
//
// It returns [ErrInvalidConfiguration] when options conflict or carry
// impossible values: uniform and per-axis DPI together, scale-to-max and
// scale-to-dimensions together, non-positive resolutions or scale
// targets, or a degenerate crop rectangle.
func NewRenderOptions(opts ...RenderOption) (*RenderOptions, error) {
	o := &RenderOptions{}
	for _, opt := range opts {
		opt(o)
	}

	if o.dpi != 0 && (o.dpiX != 0 || o.dpiY != 0) {
		return nil, fmt.Errorf("%w: uniform and per-axis DPI are mutually exclusive", ErrInvalidConfiguration)
	}
	if o.dpi < 0 || o.dpiX < 0 || o.dpiY < 0 {
		return nil, fmt.Errorf("%w: DPI must be positive", ErrInvalidConfiguration)
	}
	if (o.dpiX == 0) != (o.dpiY == 0) {
		return nil, fmt.Errorf("%w: per-axis DPI requires both axes", ErrInvalidConfiguration)
	}
	if o.scaleTo != 0 && (o.scaleToX != 0 || o.scaleToY != 0) {
		return nil, fmt.Errorf("%w: scale-to-max and scale-to-dimensions are mutually exclusive", ErrInvalidConfiguration)
	}
	if o.scaleTo < 0 || o.scaleToX < 0 || o.scaleToY < 0 {
		return nil, fmt.Errorf("%w: scale target must be positive", ErrInvalidConfiguration)
	}
	if (o.scaleToX == 0) != (o.scaleToY == 0) {
		return nil, fmt.Errorf("%w: scale-to-dimensions requires both width and height", ErrInvalidConfiguration)
	}
	if o.crop != nil && (o.crop.w <= 0 || o.crop.h <= 0) {
		return nil, fmt.Errorf("%w: crop rectangle must have positive dimensions", ErrInvalidConfiguration)
	}
	return o, nil
}

// hasPassword reports whether any password was supplied.
func (o *RenderOptions) hasPassword() bool {
	return o != nil && (o.userPassword != "" || o.ownerPassword != "")
}

// effectiveFormat returns the raster format, defaulting for a nil receiver.
func (o *RenderOptions) effectiveFormat() Format {
	if o == nil {
		return JPEG
	}
	return o.format
}

// tool returns the name of the backend executable.
func (o *RenderOptions) tool() string {
	if o != nil && o.backend == PDFToCairo {
		return "pdftocairo"
	}
	return "pdftoppm"
}

// baseArgs returns the leading arguments for the backend. pdftocairo
// takes explicit "-" markers for stdin and stdout; pdftoppm streams
// through pipes without them.
func (o *RenderOptions) baseArgs() []string {
	if o != nil && o.backend == PDFToCairo {
		return []string{"-", "-", o.effectiveFormat().flag(), "-singlefile"}
	}
	return []string{o.effectiveFormat().flag(), "-singlefile"}
}

// cliArgs serializes the recognized knobs into poppler CLI flags.
func (o *RenderOptions) cliArgs() []string {
	if o == nil {
		return nil
	}
	var args []string
	if o.dpi != 0 {
		args = append(args, "-r", strconv.Itoa(o.dpi))
	}
	if o.dpiX != 0 {
		args = append(args, "-rx", strconv.Itoa(o.dpiX), "-ry", strconv.Itoa(o.dpiY))
	}
	if o.scaleTo != 0 {
		args = append(args, "-scale-to", strconv.Itoa(o.scaleTo))
	}
	if o.scaleToX != 0 {
		args = append(args, "-scale-to-x", strconv.Itoa(o.scaleToX), "-scale-to-y", strconv.Itoa(o.scaleToY))
	}
	if o.crop != nil {
		args = append(args,
			"-x", strconv.Itoa(o.crop.x),
			"-y", strconv.Itoa(o.crop.y),
			"-W", strconv.Itoa(o.crop.w),
			"-H", strconv.Itoa(o.crop.h),
		)
	}
	if o.userPassword != "" {
		args = append(args, "-upw", o.userPassword)
	}
	if o.ownerPassword != "" {
		args = append(args, "-opw", o.ownerPassword)
	}
	return args
}
