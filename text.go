package pdf2image

import (
	"context"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// TextOptions controls pdftotext invocations. A nil *TextOptions is valid
// and means defaults: reading-order output, no password.
type TextOptions struct {
	// UserPassword is the document's user password, required when the
	// document is encrypted.
	UserPassword string

	// OwnerPassword is the document's owner password. Either password
	// satisfies the encryption precondition.
	OwnerPassword string

	// Layout asks pdftotext to maintain the physical layout of the page
	// instead of emitting text in reading order.
	Layout bool
}

func (o *TextOptions) hasPassword() bool {
	return o != nil && (o.UserPassword != "" || o.OwnerPassword != "")
}

func (o *TextOptions) cliArgs() []string {
	if o == nil {
		return nil
	}
	var args []string
	if o.Layout {
		args = append(args, "-layout")
	}
	if o.UserPassword != "" {
		args = append(args, "-upw", o.UserPassword)
	}
	if o.OwnerPassword != "" {
		args = append(args, "-opw", o.OwnerPassword)
	}
	return args
}

// ExtractPageText extracts the text of a single page.
//
// Like [Converter.RenderPage], the page number is not bounds-checked
// against info.PageCount.
func (c *Converter) ExtractPageText(ctx context.Context, data []byte, info DocumentInfo, page int, opts *TextOptions) (string, error) {
	if info.Encrypted && !opts.hasPassword() {
		return "", ErrNoPasswordForEncryptedPDF
	}
	return c.extractText(ctx, data, page, opts)
}

// ExtractTextPages extracts text for the selected pages, one pdftotext
// invocation per page, in selector order. Concurrency, ordering, and
// failure behavior match [Converter.RenderPages].
func (c *Converter) ExtractTextPages(ctx context.Context, data []byte, info DocumentInfo, pages Pages, opts *TextOptions) ([]string, error) {
	if info.Encrypted && !opts.hasPassword() {
		return nil, ErrNoPasswordForEncryptedPDF
	}

	list := pages.resolve(info.PageCount)
	texts := make([]string, len(list))

	var g errgroup.Group
	g.SetLimit(c.cfg.maxParallel)
	for i, page := range list {
		i, page := i, page
		g.Go(func() error {
			text, err := c.extractText(ctx, data, page, opts)
			if err != nil {
				return err
			}
			texts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return texts, nil
}

// ExtractText extracts the text of the whole document in a single
// pdftotext invocation, which is considerably cheaper than extracting
// page by page and concatenating.
func (c *Converter) ExtractText(ctx context.Context, data []byte, info DocumentInfo, opts *TextOptions) (string, error) {
	if info.Encrypted && !opts.hasPassword() {
		return "", ErrNoPasswordForEncryptedPDF
	}
	return c.extractText(ctx, data, 0, opts)
}

// ExtractPageText extracts one page's text using the default converter.
func ExtractPageText(ctx context.Context, data []byte, info DocumentInfo, page int, opts *TextOptions) (string, error) {
	return defaultConverter.ExtractPageText(ctx, data, info, page, opts)
}

// ExtractTextPages extracts the selected pages' text using the default
// converter.
func ExtractTextPages(ctx context.Context, data []byte, info DocumentInfo, pages Pages, opts *TextOptions) ([]string, error) {
	return defaultConverter.ExtractTextPages(ctx, data, info, pages, opts)
}

// ExtractText extracts the whole document's text using the default
// converter.
func ExtractText(ctx context.Context, data []byte, info DocumentInfo, opts *TextOptions) (string, error) {
	return defaultConverter.ExtractText(ctx, data, info, opts)
}

// extractText runs pdftotext over the document. A page of 0 means the
// whole document (no page-range flags).
func (c *Converter) extractText(ctx context.Context, data []byte, page int, opts *TextOptions) (string, error) {
	var args []string
	if page > 0 {
		args = append(args, "-f", strconv.Itoa(page), "-l", strconv.Itoa(page))
	}
	args = append(args, opts.cliArgs()...)
	args = append(args, "-", "-")

	out, err := c.cfg.runner.Run(ctx, c.cfg.resolve("pdftotext"), args, data)
	if err != nil {
		return "", err
	}
	// Tool output is not guaranteed to be well-formed UTF-8; replace
	// invalid sequences rather than failing.
	return strings.ToValidUTF8(string(out), "�"), nil
}
