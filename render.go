package pdf2image

import (
	"context"
	"fmt"
	"image"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// RenderPage renders a single page to an image.
//
// The page number is passed to the tool as-is: no bounds check against
// info.PageCount is performed on this fast path, so callers are
// responsible for requesting a page that exists.
func (c *Converter) RenderPage(ctx context.Context, data []byte, info DocumentInfo, page int, opts *RenderOptions) (image.Image, error) {
	if info.Encrypted && !opts.hasPassword() {
		return nil, ErrNoPasswordForEncryptedPDF
	}
	return c.renderPage(ctx, data, page, opts)
}

// RenderPages renders the selected pages to images, one invocation of the
// rendering tool per page.
//
// Invocations run concurrently, bounded by [WithMaxParallel]. The result
// slice matches the resolved selector position for position regardless of
// completion order. If any page fails to render or decode, the whole call
// fails and no images are returned; sibling invocations already in flight
// are left to finish and their output is discarded.
func (c *Converter) RenderPages(ctx context.Context, data []byte, info DocumentInfo, pages Pages, opts *RenderOptions) ([]image.Image, error) {
	if info.Encrypted && !opts.hasPassword() {
		return nil, ErrNoPasswordForEncryptedPDF
	}

	list := pages.resolve(info.PageCount)
	images := make([]image.Image, len(list))

	var g errgroup.Group
	g.SetLimit(c.cfg.maxParallel)
	for i, page := range list {
		i, page := i, page
		g.Go(func() error {
			img, err := c.renderPage(ctx, data, page, opts)
			if err != nil {
				return err
			}
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}

// RenderPage renders a single page using the default converter.
func RenderPage(ctx context.Context, data []byte, info DocumentInfo, page int, opts *RenderOptions) (image.Image, error) {
	return defaultConverter.RenderPage(ctx, data, info, page, opts)
}

// RenderPages renders the selected pages using the default converter.
func RenderPages(ctx context.Context, data []byte, info DocumentInfo, pages Pages, opts *RenderOptions) ([]image.Image, error) {
	return defaultConverter.RenderPages(ctx, data, info, pages, opts)
}

// renderPage drives one tool invocation for one page and decodes its
// stdout.
func (c *Converter) renderPage(ctx context.Context, data []byte, page int, opts *RenderOptions) (image.Image, error) {
	args := opts.baseArgs()
	args = append(args, "-f", strconv.Itoa(page), "-l", strconv.Itoa(page))
	args = append(args, opts.cliArgs()...)

	out, err := c.cfg.runner.Run(ctx, c.cfg.resolve(opts.tool()), args, data)
	if err != nil {
		return nil, err
	}

	img, err := decodeImage(out, opts.effectiveFormat())
	if err != nil {
		return nil, fmt.Errorf("%w: page %d: %v", ErrDecode, page, err)
	}
	return img, nil
}
