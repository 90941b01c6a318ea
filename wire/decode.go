package wire

import "fmt"

// Decode parses buf as one complete discovery message. buf must hold the
// whole plaintext message; there is no partial or streaming decode. On
// error, no Message is returned.
func (c *Codec) Decode(buf []byte) (Message, error) {
	if len(buf) == 0 {
		return Message{}, ErrEmptyBody
	}

	kind := Kind(buf[0])
	if !kind.valid() {
		return Message{}, fmt.Errorf("%w: %d", ErrInvalidKindTag, buf[0])
	}

	r, err := newListReader(buf[1:])
	if err != nil {
		return Message{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	reqID, err := readReqID(&r)
	if err != nil {
		return Message{}, fmt.Errorf("%w: %v", ErrInvalidReqID, err)
	}

	msg := Message{Kind: kind, ReqID: reqID}

	switch strategies[kind] {
	case structural:
		rec := newRecord[kind]()
		n, err := r.remaining()
		if err != nil {
			return Message{}, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
		}
		if n != rec.numFields() {
			return Message{}, fmt.Errorf("%w: %s field count %d, want %d",
				ErrInvalidMessage, kind, n, rec.numFields())
		}
		if err := rec.readFields(&r); err != nil {
			return Message{}, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
		}
		msg.Body = rec
	case embedded:
		blob, err := r.bytes()
		if err != nil {
			return Message{}, &ContentError{Kind: kind, Err: err}
		}
		if r.more() {
			return Message{}, &ContentError{Kind: kind, Err: errTrailingItems}
		}
		body, err := c.decodeContent(kind, blob)
		if err != nil {
			return Message{}, &ContentError{Kind: kind, Err: err}
		}
		msg.Body = body
	case inert:
		// Payload shape for these kinds is not final in the protocol
		// document. Whatever follows the request id is accepted
		// unexamined.
	}

	return msg, nil
}

func (c *Codec) decodeContent(kind Kind, blob []byte) (Body, error) {
	if c.content == nil {
		return nil, errNoContentCodec
	}
	return c.content.Decode(kind, blob)
}
