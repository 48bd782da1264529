package protocol

import "io"

func NewEncoder(writer io.Writer, opts ...Option) Encoder {
	rv := &encoder{
		writer:  writer,
		options: newOptions(opts),
	}
	return rv
}

type encoder struct {
	writer  io.Writer
	options options
}

func (e *encoder) Encode(r Request) error {
	frame, err := EncodeWith(e.options.codec, r)
	if err != nil {
		return err
	}
	if _, err := e.writer.Write(frame); err != nil {
		return err
	}
	e.options.logger.Logf("written %d bytes", len(frame))
	return nil
}
