// SPDX-License-Identifier: Unlicense OR MIT

package log

import "bytes"

// 1024 is the truncation limit from android/log.h, including the '\0'.
const maxLine = 1023

// lineSplitter buffers writes and emits one complete line at a time,
// without the trailing newline. Lines longer than maxLine are truncated.
type lineSplitter struct {
	pending []byte
	emit    func(line []byte)
}

func (s *lineSplitter) Write(p []byte) (int, error) {
	s.pending = append(s.pending, p...)
	for {
		i := bytes.IndexByte(s.pending, '\n')
		if i < 0 {
			break
		}
		line := s.pending[:i]
		if len(line) > maxLine {
			line = line[:maxLine]
		}
		s.emit(line)
		s.pending = s.pending[i+1:]
	}
	if len(s.pending) == 0 {
		s.pending = nil
	}
	return len(p), nil
}
