package wire

import (
	"encoding/hex"
	"math"
	"net"

	"github.com/ethereum/go-ethereum/rlp"
)

// MaxReqIDLen bounds a request id on receipt. Encode appends whatever it
// is given; the bound is enforced when decoding.
const MaxReqIDLen = 8

// ReqID is the correlation token the caller uses to match a response to
// its request. It carries no meaning beyond byte equality.
type ReqID []byte

// NodeID locates a peer in the discovery keyspace as a 32-byte big-endian
// unsigned integer.
type NodeID [32]byte

func (id NodeID) String() string { return hex.EncodeToString(id[:]) }

// itemWriter collects encoded elements until seal wraps them in one RLP
// list. The rlp byte-string and list encoders cannot fail for the inputs
// used here, so their errors are discarded.
type itemWriter struct {
	items []rlp.RawValue
}

func (w *itemWriter) bytes(b []byte) {
	enc, _ := rlp.EncodeToBytes(b)
	w.items = append(w.items, enc)
}

func (w *itemWriter) uint(v uint64) {
	enc, _ := rlp.EncodeToBytes(v)
	w.items = append(w.items, enc)
}

func (w *itemWriter) list(sub itemWriter) {
	enc, _ := rlp.EncodeToBytes(sub.items)
	w.items = append(w.items, enc)
}

func (w *itemWriter) seal() []byte {
	enc, _ := rlp.EncodeToBytes(w.items)
	return enc
}

// itemReader walks the elements of an RLP list left to right.
type itemReader struct {
	rest []byte
}

// newListReader reads the header of the outer list. Bytes following the
// list are ignored, matching reader-style consumption.
func newListReader(buf []byte) (itemReader, error) {
	content, _, err := rlp.SplitList(buf)
	if err != nil {
		return itemReader{}, err
	}
	return itemReader{rest: content}, nil
}

func (r *itemReader) more() bool { return len(r.rest) > 0 }

// remaining counts the well-formed elements left in the list.
func (r *itemReader) remaining() (int, error) {
	return rlp.CountValues(r.rest)
}

func (r *itemReader) bytes() ([]byte, error) {
	content, rest, err := rlp.SplitString(r.rest)
	if err != nil {
		return nil, err
	}
	r.rest = rest
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

func (r *itemReader) uint64() (uint64, error) {
	v, rest, err := rlp.SplitUint64(r.rest)
	if err != nil {
		return 0, err
	}
	r.rest = rest
	return v, nil
}

func (r *itemReader) uint32() (uint32, error) {
	v, err := r.uint64()
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		return 0, errUintOverflow
	}
	return uint32(v), nil
}

func (r *itemReader) uint16() (uint16, error) {
	v, err := r.uint64()
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint16 {
		return 0, errUintOverflow
	}
	return uint16(v), nil
}

func (r *itemReader) enterList() (itemReader, error) {
	content, rest, err := rlp.SplitList(r.rest)
	if err != nil {
		return itemReader{}, err
	}
	r.rest = rest
	return itemReader{rest: content}, nil
}

func appendReqID(w *itemWriter, id ReqID) { w.bytes(id) }

func readReqID(r *itemReader) (ReqID, error) {
	b, err := r.bytes()
	if err != nil {
		return nil, err
	}
	if len(b) > MaxReqIDLen {
		return nil, errReqIDTooLong
	}
	return ReqID(b), nil
}

func appendNodeID(w *itemWriter, id NodeID) { w.bytes(id[:]) }

func readNodeID(r *itemReader) (NodeID, error) {
	b, err := r.bytes()
	if err != nil {
		return NodeID{}, err
	}
	var id NodeID
	if len(b) != len(id) {
		return NodeID{}, errNodeIDLength
	}
	copy(id[:], b)
	return id, nil
}

// appendIP writes the 4 or 16 raw address bytes. No family marker goes on
// the wire; the variant is recovered from the byte length alone.
func appendIP(w *itemWriter, ip net.IP) {
	if v4 := ip.To4(); v4 != nil {
		w.bytes(v4)
		return
	}
	w.bytes(ip.To16())
}

func readIP(r *itemReader) (net.IP, error) {
	b, err := r.bytes()
	if err != nil {
		return nil, err
	}
	switch len(b) {
	case net.IPv4len, net.IPv6len:
		return net.IP(b), nil
	default:
		return nil, errAddressLength
	}
}
