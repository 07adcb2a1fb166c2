// SPDX-License-Identifier: Unlicense OR MIT

package log

/*
#cgo LDFLAGS: -llog

#include <stdlib.h>
#include <android/log.h>
*/
import "C"

import (
	"io"
	"sync"
	"unsafe"
)

var (
	logcatOnce sync.Once
	logcat     *logcatWriter
)

// Output returns the logcat writer. Android's logcat already includes
// timestamps.
func Output() io.Writer {
	logcatOnce.Do(func() {
		logcat = newLogcatWriter(Tag)
	})
	return logcat
}

type logcatWriter struct {
	mu   sync.Mutex
	tag  *C.char
	line lineSplitter
	// The buffer to pass to C, including the terminating '\0'.
	buf [maxLine + 1]byte
}

func newLogcatWriter(tag string) *logcatWriter {
	w := &logcatWriter{tag: C.CString(tag)}
	w.line.emit = w.writeLine
	return w
}

func (w *logcatWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.line.Write(p)
}

func (w *logcatWriter) writeLine(line []byte) {
	n := copy(w.buf[:maxLine], line)
	w.buf[n] = 0
	C.__android_log_write(C.ANDROID_LOG_INFO, w.tag, (*C.char)(unsafe.Pointer(&w.buf[0])))
}
