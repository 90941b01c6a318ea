package providers

import (
	"crypto/ed25519"
	"errors"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/yyoncho/discwire/wire"
)

var (
	ErrUnsigned     = errors.New("providers: record is not signed")
	ErrBadSignature = errors.New("providers: signature verification failed")
)

// ProviderRecord advertises that a peer serves the content addressed by a
// key in the DHT keyspace.
type ProviderRecord struct {
	Peer  wire.NodeID
	Addrs []string
	SeqNo uint64
}

// SignedProviderRecord wraps a ProviderRecord in a signature envelope.
// The signature covers the RLP encoding of the inner record.
type SignedProviderRecord struct {
	Record    ProviderRecord
	PublicKey []byte
	Signature []byte
}

// Sign produces the signed envelope for rec.
func Sign(rec ProviderRecord, key ed25519.PrivateKey) (SignedProviderRecord, error) {
	enc, err := rlp.EncodeToBytes(&rec)
	if err != nil {
		return SignedProviderRecord{}, err
	}
	pub, ok := key.Public().(ed25519.PublicKey)
	if !ok {
		return SignedProviderRecord{}, ErrUnsigned
	}
	return SignedProviderRecord{
		Record:    rec,
		PublicKey: append([]byte(nil), pub...),
		Signature: ed25519.Sign(key, enc),
	}, nil
}

// Verify checks the envelope signature against the embedded record.
func (s *SignedProviderRecord) Verify() error {
	if err := s.wellFormed(); err != nil {
		return err
	}
	enc, err := rlp.EncodeToBytes(&s.Record)
	if err != nil {
		return err
	}
	if !ed25519.Verify(ed25519.PublicKey(s.PublicKey), enc, s.Signature) {
		return ErrBadSignature
	}
	return nil
}

func (s *SignedProviderRecord) wellFormed() error {
	if len(s.PublicKey) != ed25519.PublicKeySize || len(s.Signature) != ed25519.SignatureSize {
		return ErrUnsigned
	}
	return nil
}
