package pdf2image

import "runtime"

// converterConfig holds internal configuration for a Converter.
type converterConfig struct {
	runner      Runner
	resolve     ExecutableResolver
	maxParallel int
}

func defaultConfig() converterConfig {
	return converterConfig{
		runner:      execRunner{},
		resolve:     defaultResolver,
		maxParallel: runtime.GOMAXPROCS(0),
	}
}

// Option configures a [Converter].
type Option func(*converterConfig)

// WithRunner replaces the process runner. Intended for tests, which can
// substitute a deterministic fake instead of spawning real tools.
func WithRunner(r Runner) Option {
	return func(c *converterConfig) {
		c.runner = r
	}
}

// WithExecutableResolver replaces the function mapping tool names to
// executable paths.
func WithExecutableResolver(f ExecutableResolver) Option {
	return func(c *converterConfig) {
		c.resolve = f
	}
}

// WithPopplerPath locates the poppler executables in dir instead of the
// default search path and the PDF2IMAGE_POPPLER_PATH environment variable.
func WithPopplerPath(dir string) Option {
	return func(c *converterConfig) {
		c.resolve = dirResolver(dir)
	}
}

// WithMaxParallel bounds how many external processes a multi-page call
// runs at once. Defaults to the number of available CPUs. Values below 1
// are treated as 1.
func WithMaxParallel(n int) Option {
	return func(c *converterConfig) {
		if n < 1 {
			n = 1
		}
		c.maxParallel = n
	}
}

// Converter converts PDF documents to page images and extracted text by
// driving the poppler command-line tools (pdfinfo, pdftoppm, pdftocairo,
// pdftotext) over stdin/stdout pipes.
//
// A Converter holds no per-document state and is safe for concurrent use.
type Converter struct {
	cfg converterConfig
}

// NewConverter creates a Converter with the given options.
func NewConverter(opts ...Option) *Converter {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Converter{cfg: cfg}
}

// defaultConverter backs the package-level convenience functions.
var defaultConverter = NewConverter()
