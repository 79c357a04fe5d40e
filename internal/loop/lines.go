package loop

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// MaxLineLength is the longest line the loop will run. Longer lines are
// skipped and reported with ErrLineTooLong.
const MaxLineLength = 1024 * 1024

// ErrLineTooLong is reported for a line longer than MaxLineLength.
var ErrLineTooLong = errors.New("line too long")

type lineResult struct {
	text    string
	tooLong bool
	err     error
}

// lineReader splits input on '\n' like bufio.ScanLines, but a line over
// the limit is drained and flagged instead of ending the read.
type lineReader struct {
	r   *bufio.Reader
	max int
}

func newLineReader(r io.Reader, max int) *lineReader {
	return &lineReader{r: bufio.NewReaderSize(r, 64*1024), max: max}
}

// next returns the following line without its "\n" or "\r\n". It returns
// io.EOF once the input is exhausted.
func (lr *lineReader) next() lineResult {
	var buf []byte
	tooLong := false
	for {
		chunk, err := lr.r.ReadSlice('\n')
		if !tooLong {
			if len(buf)+len(chunk) > lr.max+len("\r\n") {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}

		switch {
		case err == bufio.ErrBufferFull:
			continue
		case err == io.EOF:
			if len(buf) == 0 && !tooLong {
				return lineResult{err: io.EOF}
			}
		case err != nil:
			return lineResult{err: err}
		}

		buf = bytes.TrimSuffix(buf, []byte("\n"))
		buf = bytes.TrimSuffix(buf, []byte("\r"))
		return lineResult{text: string(buf), tooLong: tooLong}
	}
}

// nextContext reads one line, giving up when ctx is done. The read keeps
// running in its goroutine until the reader returns; only one read is in
// flight at a time, so no input is consumed ahead of the loop.
func (lr *lineReader) nextContext(done <-chan struct{}) (lineResult, bool) {
	ch := make(chan lineResult, 1)
	go func() {
		ch <- lr.next()
	}()

	select {
	case <-done:
		return lineResult{}, false
	case res := <-ch:
		return res, true
	}
}
