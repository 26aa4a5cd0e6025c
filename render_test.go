package pdf2image

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"reflect"
	"testing"
	"time"
)

// pagePNG encodes a 1x1 PNG whose red channel carries the page number,
// so a decoded result can be traced back to the page that produced it.
func pagePNG(t *testing.T, page int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: uint8(page), A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	return buf.Bytes()
}

// pageOf recovers the page number embedded by pagePNG.
func pageOf(t *testing.T, img image.Image) int {
	t.Helper()
	c := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
	return int(c.R)
}

// pngRunner serves pagePNG fixtures keyed by the -f argument, optionally
// delaying each page to scramble completion order.
func pngRunner(t *testing.T, delays map[int]time.Duration) *fakeRunner {
	t.Helper()
	return &fakeRunner{
		handler: func(_ string, args []string, _ []byte) ([]byte, error) {
			page := pageFromArgs(args)
			if d, ok := delays[page]; ok {
				time.Sleep(d)
			}
			return pagePNG(t, page), nil
		},
	}
}

func pngOptions(t *testing.T, extra ...RenderOption) *RenderOptions {
	t.Helper()
	opts, err := NewRenderOptions(append([]RenderOption{WithFormat(PNG)}, extra...)...)
	if err != nil {
		t.Fatalf("NewRenderOptions: %v", err)
	}
	return opts
}

func TestRenderPage(t *testing.T) {
	runner := pngRunner(t, nil)
	c := NewConverter(WithRunner(runner))
	info := DocumentInfo{PageCount: 5}

	img, err := c.RenderPage(context.Background(), samplePDF, info, 3, pngOptions(t))
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if got := pageOf(t, img); got != 3 {
		t.Errorf("rendered page %d, want 3", got)
	}
	if runner.spawnCount() != 1 {
		t.Errorf("spawn count = %d, want 1", runner.spawnCount())
	}
}

func TestRenderPage_ArgumentAssembly(t *testing.T) {
	runner := pngRunner(t, nil)
	c := NewConverter(WithRunner(runner))
	opts := pngOptions(t, WithDPI(150), WithUserPassword("pw"))

	if _, err := c.RenderPage(context.Background(), samplePDF, DocumentInfo{PageCount: 9}, 7, opts); err != nil {
		t.Fatalf("RenderPage: %v", err)
	}

	call := runner.calls[0]
	if call.exe != "pdftoppm" {
		t.Errorf("exe = %q, want pdftoppm", call.exe)
	}
	want := []string{"-png", "-singlefile", "-f", "7", "-l", "7", "-r", "150", "-upw", "pw"}
	if !reflect.DeepEqual(call.args, want) {
		t.Errorf("args = %v, want %v", call.args, want)
	}
	if !bytes.Equal(call.stdin, samplePDF) {
		t.Error("document bytes were not passed through to the tool's stdin")
	}
}

func TestRenderPage_CairoArgumentAssembly(t *testing.T) {
	runner := pngRunner(t, nil)
	c := NewConverter(WithRunner(runner))
	opts := pngOptions(t, WithBackend(PDFToCairo))

	if _, err := c.RenderPage(context.Background(), samplePDF, DocumentInfo{PageCount: 2}, 2, opts); err != nil {
		t.Fatalf("RenderPage: %v", err)
	}

	call := runner.calls[0]
	if call.exe != "pdftocairo" {
		t.Errorf("exe = %q, want pdftocairo", call.exe)
	}
	want := []string{"-", "-", "-png", "-singlefile", "-f", "2", "-l", "2"}
	if !reflect.DeepEqual(call.args, want) {
		t.Errorf("args = %v, want %v", call.args, want)
	}
}

func TestRenderPages_OrderPreservedUnderScrambledCompletion(t *testing.T) {
	// Page 2 finishes last, page 5 first; the output must still be
	// positionally 2, 5, 3.
	runner := pngRunner(t, map[int]time.Duration{
		2: 40 * time.Millisecond,
		3: 20 * time.Millisecond,
		5: 0,
	})
	c := NewConverter(WithRunner(runner), WithMaxParallel(3))
	info := DocumentInfo{PageCount: 5}

	images, err := c.RenderPages(context.Background(), samplePDF, info, Specific(2, 5, 3), pngOptions(t))
	if err != nil {
		t.Fatalf("RenderPages: %v", err)
	}
	if len(images) != 3 {
		t.Fatalf("got %d images, want 3", len(images))
	}
	for i, wantPage := range []int{2, 5, 3} {
		if got := pageOf(t, images[i]); got != wantPage {
			t.Errorf("images[%d] is page %d, want %d", i, got, wantPage)
		}
	}
}

func TestRenderPages_RangeSelector(t *testing.T) {
	runner := pngRunner(t, nil)
	c := NewConverter(WithRunner(runner))
	info := DocumentInfo{PageCount: 5}

	images, err := c.RenderPages(context.Background(), samplePDF, info, Range(4, 9), pngOptions(t))
	if err != nil {
		t.Fatalf("RenderPages: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("got %d images, want 2 (range clipped to 4-5)", len(images))
	}
	for i, wantPage := range []int{4, 5} {
		if got := pageOf(t, images[i]); got != wantPage {
			t.Errorf("images[%d] is page %d, want %d", i, got, wantPage)
		}
	}
}

func TestRenderPages_EmptySelector(t *testing.T) {
	runner := pngRunner(t, nil)
	c := NewConverter(WithRunner(runner))
	info := DocumentInfo{PageCount: 5}

	images, err := c.RenderPages(context.Background(), samplePDF, info, Range(9, 12), pngOptions(t))
	if err != nil {
		t.Fatalf("RenderPages: %v", err)
	}
	if len(images) != 0 {
		t.Errorf("got %d images, want 0", len(images))
	}
	if runner.spawnCount() != 0 {
		t.Errorf("spawn count = %d, want 0", runner.spawnCount())
	}
}

func TestRenderPages_EncryptedWithoutPassword(t *testing.T) {
	runner := pngRunner(t, nil)
	c := NewConverter(WithRunner(runner))
	info := DocumentInfo{PageCount: 5, Encrypted: true}

	_, err := c.RenderPages(context.Background(), samplePDF, info, All(), pngOptions(t))
	if !errors.Is(err, ErrNoPasswordForEncryptedPDF) {
		t.Fatalf("err = %v, want ErrNoPasswordForEncryptedPDF", err)
	}
	if runner.spawnCount() != 0 {
		t.Errorf("spawn count = %d, want 0 (fail-fast before spawning)", runner.spawnCount())
	}
}

func TestRenderPages_EncryptedWithPassword(t *testing.T) {
	runner := pngRunner(t, nil)
	c := NewConverter(WithRunner(runner))
	info := DocumentInfo{PageCount: 2, Encrypted: true}

	images, err := c.RenderPages(context.Background(), samplePDF, info, All(),
		pngOptions(t, WithOwnerPassword("admin")))
	if err != nil {
		t.Fatalf("RenderPages: %v", err)
	}
	if len(images) != 2 {
		t.Errorf("got %d images, want 2", len(images))
	}
}

func TestRenderPages_DecodeFailureFailsWholeCall(t *testing.T) {
	runner := &fakeRunner{
		handler: func(_ string, args []string, _ []byte) ([]byte, error) {
			if pageFromArgs(args) == 3 {
				return []byte("not an image"), nil
			}
			return pagePNG(t, pageFromArgs(args)), nil
		},
	}
	c := NewConverter(WithRunner(runner))
	info := DocumentInfo{PageCount: 5}

	images, err := c.RenderPages(context.Background(), samplePDF, info, Range(1, 5), pngOptions(t))
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("err = %v, want ErrDecode", err)
	}
	if images != nil {
		t.Errorf("got %d partial images, want none", len(images))
	}
}

func TestRenderPages_RunnerFailureFailsWholeCall(t *testing.T) {
	spawnErr := errors.New("spawn blew up")
	runner := &fakeRunner{
		handler: func(_ string, args []string, _ []byte) ([]byte, error) {
			if pageFromArgs(args) == 2 {
				return nil, spawnErr
			}
			return pagePNG(t, pageFromArgs(args)), nil
		},
	}
	c := NewConverter(WithRunner(runner))
	info := DocumentInfo{PageCount: 3}

	_, err := c.RenderPages(context.Background(), samplePDF, info, All(), pngOptions(t))
	if !errors.Is(err, spawnErr) {
		t.Fatalf("err = %v, want the runner's error", err)
	}
	if errors.Is(err, ErrDecode) {
		t.Error("runner failure misreported as a decode failure")
	}
}

func TestRenderPages_DuplicatePagesRenderedTwice(t *testing.T) {
	runner := pngRunner(t, nil)
	c := NewConverter(WithRunner(runner))
	info := DocumentInfo{PageCount: 5}

	images, err := c.RenderPages(context.Background(), samplePDF, info, Specific(3, 1, 3), pngOptions(t))
	if err != nil {
		t.Fatalf("RenderPages: %v", err)
	}
	if len(images) != 3 {
		t.Fatalf("got %d images, want 3", len(images))
	}
	if runner.spawnCount() != 3 {
		t.Errorf("spawn count = %d, want 3 (duplicates not deduplicated)", runner.spawnCount())
	}
	for i, wantPage := range []int{3, 1, 3} {
		if got := pageOf(t, images[i]); got != wantPage {
			t.Errorf("images[%d] is page %d, want %d", i, got, wantPage)
		}
	}
}

func TestRenderPages_TIFFDecoding(t *testing.T) {
	// decodeImage must honor the explicit format tag: PNG bytes are not
	// acceptable TIFF output even though they are a valid image.
	runner := pngRunner(t, nil)
	c := NewConverter(WithRunner(runner))
	info := DocumentInfo{PageCount: 1}

	_, err := c.RenderPages(context.Background(), samplePDF, info, All(), pngOptions(t, WithFormat(TIFF)))
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("err = %v, want ErrDecode for mismatched format", err)
	}
}
