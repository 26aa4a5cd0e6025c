package pdf2image

import "errors"

// Sentinel errors returned by the library. Use [errors.Is] to distinguish
// bad input or configuration from tool-execution and tool-output failures.
var (
	// ErrNoPasswordForEncryptedPDF is returned when a document reports
	// itself as encrypted and no password was supplied in the options.
	ErrNoPasswordForEncryptedPDF = errors.New("pdf2image: document is encrypted and no password was supplied")

	// ErrPageCount is returned when the pdfinfo output contains no
	// parsable "Pages:" line.
	ErrPageCount = errors.New("pdf2image: unable to extract page count")

	// ErrEncryptionStatus is returned when the pdfinfo output contains no
	// parsable "Encrypted:" line.
	ErrEncryptionStatus = errors.New("pdf2image: unable to extract encryption status")

	// ErrInvalidConfiguration is returned by [NewRenderOptions] when the
	// supplied options conflict, for example two scale modes at once.
	ErrInvalidConfiguration = errors.New("pdf2image: invalid render configuration")

	// ErrDecode is returned when a rendering tool's output is not a valid
	// image in the requested format. This usually means the tool failed
	// and wrote partial or empty output.
	ErrDecode = errors.New("pdf2image: unable to decode rendered page")
)
