package providers

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/yyoncho/discwire/wire"
)

// AddProviderContent announces a new provider for a content key.
type AddProviderContent struct {
	Key    wire.NodeID
	Record SignedProviderRecord
}

func (*AddProviderContent) Kind() wire.Kind { return wire.KindAddProvider }

// GetProvidersContent asks for the known providers of a content key.
type GetProvidersContent struct {
	Key wire.NodeID
}

func (*GetProvidersContent) Kind() wire.Kind { return wire.KindGetProviders }

// ProvidersContent answers a GetProviders query with one batch of signed
// provider records.
type ProvidersContent struct {
	Total   uint32
	Records []SignedProviderRecord
}

func (*ProvidersContent) Kind() wire.Kind { return wire.KindProviders }

// Codec implements wire.ContentCodec. Encode refuses unsigned records;
// decode verifies every envelope signature before handing the payload
// back.
type Codec struct{}

func (Codec) Encode(body wire.Body) ([]byte, error) {
	switch p := body.(type) {
	case *AddProviderContent:
		if err := p.Record.wellFormed(); err != nil {
			return nil, err
		}
		return rlp.EncodeToBytes(p)
	case *GetProvidersContent:
		return rlp.EncodeToBytes(p)
	case *ProvidersContent:
		for i := range p.Records {
			if err := p.Records[i].wellFormed(); err != nil {
				return nil, err
			}
		}
		return rlp.EncodeToBytes(p)
	default:
		return nil, fmt.Errorf("providers: codec does not own %T", body)
	}
}

func (Codec) Decode(kind wire.Kind, blob []byte) (wire.Body, error) {
	switch kind {
	case wire.KindAddProvider:
		p := new(AddProviderContent)
		if err := rlp.DecodeBytes(blob, p); err != nil {
			return nil, err
		}
		if err := p.Record.Verify(); err != nil {
			return nil, err
		}
		return p, nil
	case wire.KindGetProviders:
		p := new(GetProvidersContent)
		if err := rlp.DecodeBytes(blob, p); err != nil {
			return nil, err
		}
		return p, nil
	case wire.KindProviders:
		p := new(ProvidersContent)
		if err := rlp.DecodeBytes(blob, p); err != nil {
			return nil, err
		}
		for i := range p.Records {
			if err := p.Records[i].Verify(); err != nil {
				return nil, err
			}
		}
		return p, nil
	default:
		return nil, fmt.Errorf("providers: codec does not own kind %s", kind)
	}
}
