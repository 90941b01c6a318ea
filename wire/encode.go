package wire

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
)

// Encode produces the wire bytes for body, addressed by reqID. The
// request id is appended as given; only decode enforces the 8-byte bound.
//
// Encode fails only on misuse (nil body, a body for a kind that has no
// encodable payload). A content codec failure does not fail the call: the
// embedded payload degrades to an empty byte string and the error is
// logged, so a structurally valid message still goes out.
func (c *Codec) Encode(reqID ReqID, body Body) ([]byte, error) {
	if body == nil {
		return nil, fmt.Errorf("wire: encode: nil body")
	}
	kind := body.Kind()
	if !kind.valid() {
		return nil, fmt.Errorf("wire: encode: invalid kind %s", kind)
	}

	var rec record
	if strategies[kind] == structural {
		var ok bool
		if rec, ok = body.(record); !ok {
			return nil, fmt.Errorf("wire: encode: %T is not the %s record", body, kind)
		}
	}

	slots := 2
	if rec != nil {
		slots = 1 + rec.numFields()
	}
	w := itemWriter{items: make([]rlp.RawValue, 0, slots)}
	appendReqID(&w, reqID)

	switch strategies[kind] {
	case structural:
		rec.appendFields(&w)
	case embedded:
		blob, err := c.encodeContent(body)
		if err != nil {
			c.log.Warn().Err(err).Stringer("kind", kind).
				Msg("content encode failed, sending empty payload")
			blob = nil
		}
		w.bytes(blob)
	case inert:
		return nil, fmt.Errorf("wire: encode: %s has no encodable payload", kind)
	}

	list := w.seal()
	buf := make([]byte, 0, 1+len(list))
	buf = append(buf, byte(kind))
	return append(buf, list...), nil
}

func (c *Codec) encodeContent(body Body) ([]byte, error) {
	if c.content == nil {
		return nil, errNoContentCodec
	}
	return c.content.Encode(body)
}
