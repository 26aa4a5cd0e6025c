// Package pdf2image converts PDF documents to page images and extracted
// text by driving the poppler command-line tools. Document bytes are
// piped through each tool's stdin and the result is captured from its
// stdout; no temporary files are written and the library never parses
// PDF structure itself.
//
// pdfinfo, pdftoppm, pdftocairo, and pdftotext must be installed. They
// are found on the executable search path by default; set the
// PDF2IMAGE_POPPLER_PATH environment variable or use [WithPopplerPath]
// to point at a specific directory.
//
// # Rendering pages
//
// Query the document first, then render:
//
//	data, _ := os.ReadFile("report.pdf")
//
//	info, err := pdf2image.Info(ctx, data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	opts, err := pdf2image.NewRenderOptions(pdf2image.WithDPI(150))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	images, err := pdf2image.RenderPages(ctx, data, info, pdf2image.All(), opts)
//
// Pages are selected with [All], [Range], or [Specific]; page numbers are
// 1-based. Results come back in selector order even though pages render
// concurrently. A multi-page call is all-or-nothing: one failing page
// fails the call.
//
// Encrypted documents (info.Encrypted) require [WithUserPassword] or
// [WithOwnerPassword]; without one, rendering fails with
// [ErrNoPasswordForEncryptedPDF] before any tool is spawned.
//
// # Extracting text
//
//	text, err := pdf2image.ExtractText(ctx, data, info, nil)
//	pages, err := pdf2image.ExtractTextPages(ctx, data, info, pdf2image.Range(1, 5), nil)
//
// For repeated conversions with shared settings, create a [Converter]:
//
//	c := pdf2image.NewConverter(pdf2image.WithMaxParallel(4))
//	images, err := c.RenderPages(ctx, data, info, pdf2image.Specific(2, 5, 3), opts)
package pdf2image
