package wire

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// stubBody stands in for a content-codec payload.
type stubBody struct {
	kind Kind
	data []byte
}

func (b *stubBody) Kind() Kind { return b.kind }

// stubContent is a scripted ContentCodec.
type stubContent struct {
	encodeErr error
	decodeErr error

	lastKind Kind
	lastBlob []byte
}

func (s *stubContent) Encode(body Body) ([]byte, error) {
	if s.encodeErr != nil {
		return nil, s.encodeErr
	}
	return body.(*stubBody).data, nil
}

func (s *stubContent) Decode(kind Kind, blob []byte) (Body, error) {
	s.lastKind = kind
	s.lastBlob = blob
	if s.decodeErr != nil {
		return nil, s.decodeErr
	}
	return &stubBody{kind: kind, data: blob}, nil
}

func TestEmbeddedRoundTrip(t *testing.T) {
	stub := &stubContent{}
	codec := New(WithContentCodec(stub))

	body := &stubBody{kind: KindAddProvider, data: []byte("provider-record")}
	buf, err := codec.Encode(ReqID{0x01, 0x02}, body)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	msg, err := codec.Decode(buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg.Kind != KindAddProvider {
		t.Fatalf("kind mismatch: %s", msg.Kind)
	}
	if stub.lastKind != KindAddProvider {
		t.Fatalf("content codec saw kind %s", stub.lastKind)
	}
	if !bytes.Equal(msg.Body.(*stubBody).data, body.data) {
		t.Fatalf("payload mismatch: %x", msg.Body.(*stubBody).data)
	}
}

func TestEmbeddedDecodeFailure(t *testing.T) {
	fail := errors.New("bad envelope")
	codec := New(WithContentCodec(&stubContent{decodeErr: fail}))

	buf := frame(t, byte(KindProviders), []byte{0x01}, []byte("blob"))
	_, err := codec.Decode(buf)

	var cerr *ContentError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ContentError, got %v", err)
	}
	if cerr.Kind != KindProviders || !errors.Is(err, fail) {
		t.Fatalf("wrong content error: %v", err)
	}
	if !strings.Contains(err.Error(), "unable to decode providers message") {
		t.Fatalf("unexpected error text: %q", err.Error())
	}
}

func TestEmbeddedEncodeDegradesOnFailure(t *testing.T) {
	codec := New(WithContentCodec(&stubContent{encodeErr: errors.New("no key")}))

	buf, err := codec.Encode(ReqID{0x01}, &stubBody{kind: KindGetProviders})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// The message still goes out, payload slot holding an empty string.
	want := frame(t, byte(KindGetProviders), []byte{0x01}, []byte{})
	if !bytes.Equal(buf, want) {
		t.Fatalf("degraded encoding mismatch: got %x, want %x", buf, want)
	}
}

func TestEmbeddedWithoutContentCodec(t *testing.T) {
	codec := New()

	buf, err := codec.Encode(ReqID{0x01}, &stubBody{kind: KindAddProvider, data: []byte("x")})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := codec.Decode(buf); !errors.Is(err, errNoContentCodec) {
		t.Fatalf("expected errNoContentCodec, got %v", err)
	}
}

func TestEmbeddedRejectsExtraElements(t *testing.T) {
	codec := New(WithContentCodec(&stubContent{}))
	buf := frame(t, byte(KindAddProvider), []byte{0x01}, []byte("blob"), []byte("extra"))
	_, err := codec.Decode(buf)
	var cerr *ContentError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ContentError, got %v", err)
	}
}
