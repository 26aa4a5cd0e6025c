package pdf2image

import (
	"context"
	"strconv"
	"sync"
)

// samplePDF stands in for document bytes; the fake runner never parses it.
var samplePDF = []byte("%PDF-1.4 fake content for testing")

// fakeRunner is a deterministic Runner substitute. Every call is
// recorded; output comes from the handler function.
type fakeRunner struct {
	mu    sync.Mutex
	calls []fakeCall

	handler func(exe string, args []string, stdin []byte) ([]byte, error)
}

type fakeCall struct {
	exe   string
	args  []string
	stdin []byte
}

func (f *fakeRunner) Run(_ context.Context, exe string, args []string, stdin []byte) ([]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, fakeCall{exe: exe, args: args, stdin: stdin})
	f.mu.Unlock()
	return f.handler(exe, args, stdin)
}

// spawnCount returns how many processes would have been spawned.
func (f *fakeRunner) spawnCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// pageFromArgs extracts the page number following the -f flag, or 0 when
// no page range was passed.
func pageFromArgs(args []string) int {
	for i, a := range args {
		if a == "-f" && i+1 < len(args) {
			n, _ := strconv.Atoi(args[i+1])
			return n
		}
	}
	return 0
}
