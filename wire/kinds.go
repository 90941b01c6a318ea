package wire

import "fmt"

// Kind identifies a discovery message. It is the first byte of every
// encoded message.
type Kind byte

const (
	KindUnused Kind = iota
	KindPing
	KindPong
	KindFindNode
	KindFindNodeFast
	KindNodes
	KindTalkReq
	KindTalkResp
	KindAddProvider
	KindGetProviders
	KindProviders
	KindRegTopic
	KindTicket
	KindRegConfirmation
	KindTopicQuery

	kindMax = KindTopicQuery
)

var kindNames = [kindMax + 1]string{
	"unused",
	"ping",
	"pong",
	"findNode",
	"findNodeFast",
	"nodes",
	"talkReq",
	"talkResp",
	"addProvider",
	"getProviders",
	"providers",
	"regTopic",
	"ticket",
	"regConfirmation",
	"topicQuery",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", byte(k))
}

// valid reports whether k is an acceptable inbound tag. KindUnused is a
// reserved ordinal and never valid on the wire.
func (k Kind) valid() bool {
	return k > KindUnused && k <= kindMax
}

// strategy selects how a kind's payload is laid out after the request id.
type strategy uint8

const (
	// structural: one list element per declared record field, in order.
	structural strategy = iota
	// embedded: a single opaque element owned by the content codec.
	embedded
	// inert: payload bytes may be present but are never interpreted. The
	// protocol marks these payloads as provisional, so a receiver must
	// recognize the kind without depending on payload shape.
	inert
)

var strategies = [kindMax + 1]strategy{
	KindPing:            structural,
	KindPong:            structural,
	KindFindNode:        structural,
	KindFindNodeFast:    structural,
	KindNodes:           structural,
	KindTalkReq:         structural,
	KindTalkResp:        structural,
	KindAddProvider:     embedded,
	KindGetProviders:    embedded,
	KindProviders:       embedded,
	KindRegTopic:        inert,
	KindTicket:          inert,
	KindRegConfirmation: inert,
	KindTopicQuery:      inert,
}
