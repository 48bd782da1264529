package protocol

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// NewDecoder creates a decoder reading lines terminated by LF or CRLF.
// Blank lines are skipped. A final line which is not terminated is still
// decoded before io.EOF is returned.
func NewDecoder(reader io.Reader, opts ...Option) Decoder {
	rv := &decoder{
		reader:  bufio.NewReader(reader),
		options: newOptions(opts),
	}
	return rv
}

type decoder struct {
	reader  *bufio.Reader
	options options
}

func (d *decoder) Decode() (Message, error) {
	for {
		line, err := d.readLine()
		if err != nil {
			return Message{}, err
		}
		msg := DecodeBytesWith(d.options.codec, line)
		if msg.Command == "" && msg.Prefix == "" {
			continue
		}
		d.options.logger.Logf("received %d bytes", len(line))
		return msg, nil
	}
}

// readLine returns the next line including its terminator. If the line
// exceeds the limit the rest of it is discarded and ErrLineTooLong is
// returned so that the next call starts with the following line.
func (d *decoder) readLine() ([]byte, error) {
	var line []byte
	for {
		chunk, err := d.reader.ReadSlice('\n')
		line = append(line, chunk...)

		if d.exceedsLimit(line) {
			length := len(line)
			if err == bufio.ErrBufferFull {
				n, discardErr := d.discardLine()
				length += n
				if discardErr != nil && discardErr != io.EOF {
					return nil, discardErr
				}
			}
			return nil, errors.Wrapf(ErrLineTooLong, "read %d bytes, the limit is %d", length, d.options.maxLineLength)
		}

		switch {
		case err == bufio.ErrBufferFull:
			continue
		case err == io.EOF && len(line) > 0:
			return line, nil
		default:
			return line, err
		}
	}
}

func (d *decoder) exceedsLimit(line []byte) bool {
	return d.options.maxLineLength > 0 && len(line) > d.options.maxLineLength
}

// discardLine skips everything up to and including the next LF.
func (d *decoder) discardLine() (int, error) {
	n := 0
	for {
		chunk, err := d.reader.ReadSlice('\n')
		n += len(chunk)
		if err != bufio.ErrBufferFull {
			return n, err
		}
	}
}
