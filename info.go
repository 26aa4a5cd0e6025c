package pdf2image

import (
	"context"
	"strconv"
	"strings"
)

// DocumentInfo is the metadata pdfinfo reports for one document.
type DocumentInfo struct {
	// PageCount is the number of pages in the document.
	PageCount int
	// Encrypted reports whether the document is password protected.
	// Rendering or extracting text from an encrypted document requires a
	// password in the options.
	Encrypted bool
}

// Info runs pdfinfo over the document bytes and returns its page count
// and encryption status.
func (c *Converter) Info(ctx context.Context, data []byte) (DocumentInfo, error) {
	out, err := c.cfg.runner.Run(ctx, c.cfg.resolve("pdfinfo"), []string{"-"}, data)
	if err != nil {
		return DocumentInfo{}, err
	}
	return parseInfo(out)
}

// Info runs pdfinfo using the default converter.
func Info(ctx context.Context, data []byte) (DocumentInfo, error) {
	return defaultConverter.Info(ctx, data)
}

// parseInfo recovers the page count and encryption flag from pdfinfo's
// newline-delimited report. The labels may appear in either order; only
// the first occurrence of each is used.
func parseInfo(out []byte) (DocumentInfo, error) {
	var (
		info          DocumentInfo
		havePages     bool
		haveEncrypted bool
	)
	for _, line := range strings.Split(string(out), "\n") {
		switch {
		case !havePages && strings.HasPrefix(line, "Pages:"):
			n, err := parsePageCount(line)
			if err != nil {
				return DocumentInfo{}, err
			}
			info.PageCount = n
			havePages = true

		case !haveEncrypted && strings.HasPrefix(line, "Encrypted:"):
			enc, err := parseEncrypted(line)
			if err != nil {
				return DocumentInfo{}, err
			}
			info.Encrypted = enc
			haveEncrypted = true
		}
	}
	if !havePages {
		return DocumentInfo{}, ErrPageCount
	}
	if !haveEncrypted {
		return DocumentInfo{}, ErrEncryptionStatus
	}
	return info, nil
}

func parsePageCount(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, ErrPageCount
	}
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil || n < 0 {
		return 0, ErrPageCount
	}
	return n, nil
}

func parseEncrypted(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return false, ErrEncryptionStatus
	}
	switch fields[len(fields)-1] {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}
	return false, ErrEncryptionStatus
}
