package wire

import "net"

// Body is one kind-specific payload arm of a Message. The structural
// bodies live in this package; the embedded bodies for the provider kinds
// are owned by the content codec. The inert kinds have no body at all.
type Body interface {
	Kind() Kind
}

// Message is one fully decoded wire message. Body is nil for the inert
// kinds.
type Message struct {
	Kind  Kind
	ReqID ReqID
	Body  Body
}

// record is implemented by the structural bodies. Wire field order is the
// interoperability contract: appendFields and readFields must visit the
// fields in declaration order.
type record interface {
	Body
	numFields() int
	appendFields(w *itemWriter)
	readFields(r *itemReader) error
}

var newRecord = [kindMax + 1]func() record{
	KindPing:         func() record { return new(Ping) },
	KindPong:         func() record { return new(Pong) },
	KindFindNode:     func() record { return new(FindNode) },
	KindFindNodeFast: func() record { return new(FindNodeFast) },
	KindNodes:        func() record { return new(Nodes) },
	KindTalkReq:      func() record { return new(TalkReq) },
	KindTalkResp:     func() record { return new(TalkResp) },
}

// Ping probes a peer for liveness and advertises the sender's current
// record sequence number.
type Ping struct {
	ENRSeq uint64
}

func (*Ping) Kind() Kind     { return KindPing }
func (*Ping) numFields() int { return 1 }

func (p *Ping) appendFields(w *itemWriter) {
	w.uint(p.ENRSeq)
}

func (p *Ping) readFields(r *itemReader) error {
	var err error
	p.ENRSeq, err = r.uint64()
	return err
}

// Pong answers a Ping and reflects the observed source endpoint back to
// the asker.
type Pong struct {
	ENRSeq uint64
	ToIP   net.IP
	ToPort uint16
}

func (*Pong) Kind() Kind     { return KindPong }
func (*Pong) numFields() int { return 3 }

func (p *Pong) appendFields(w *itemWriter) {
	w.uint(p.ENRSeq)
	appendIP(w, p.ToIP)
	w.uint(uint64(p.ToPort))
}

func (p *Pong) readFields(r *itemReader) error {
	var err error
	if p.ENRSeq, err = r.uint64(); err != nil {
		return err
	}
	if p.ToIP, err = readIP(r); err != nil {
		return err
	}
	p.ToPort, err = r.uint16()
	return err
}

// FindNode asks for peers at the given keyspace log-distances from the
// recipient.
type FindNode struct {
	Distances []uint16
}

func (*FindNode) Kind() Kind     { return KindFindNode }
func (*FindNode) numFields() int { return 1 }

func (m *FindNode) appendFields(w *itemWriter) {
	var sub itemWriter
	for _, d := range m.Distances {
		sub.uint(uint64(d))
	}
	w.list(sub)
}

func (m *FindNode) readFields(r *itemReader) error {
	sub, err := r.enterList()
	if err != nil {
		return err
	}
	for sub.more() {
		d, err := sub.uint16()
		if err != nil {
			return err
		}
		m.Distances = append(m.Distances, d)
	}
	return nil
}

// FindNodeFast asks directly for the peers closest to a target id.
type FindNodeFast struct {
	Target NodeID
}

func (*FindNodeFast) Kind() Kind     { return KindFindNodeFast }
func (*FindNodeFast) numFields() int { return 1 }

func (m *FindNodeFast) appendFields(w *itemWriter) {
	appendNodeID(w, m.Target)
}

func (m *FindNodeFast) readFields(r *itemReader) error {
	var err error
	m.Target, err = readNodeID(r)
	return err
}

// Nodes carries one batch of node records answering a FindNode or
// FindNodeFast. Total is the number of batches in the full response; each
// record is an opaque signed node record blob.
type Nodes struct {
	Total   uint32
	Records [][]byte
}

func (*Nodes) Kind() Kind     { return KindNodes }
func (*Nodes) numFields() int { return 2 }

func (m *Nodes) appendFields(w *itemWriter) {
	w.uint(uint64(m.Total))
	var sub itemWriter
	for _, rec := range m.Records {
		sub.bytes(rec)
	}
	w.list(sub)
}

func (m *Nodes) readFields(r *itemReader) error {
	var err error
	if m.Total, err = r.uint32(); err != nil {
		return err
	}
	sub, err := r.enterList()
	if err != nil {
		return err
	}
	for sub.more() {
		rec, err := sub.bytes()
		if err != nil {
			return err
		}
		m.Records = append(m.Records, rec)
	}
	return nil
}

// TalkReq carries an application-protocol request tunnelled through the
// discovery session.
type TalkReq struct {
	Protocol []byte
	Request  []byte
}

func (*TalkReq) Kind() Kind     { return KindTalkReq }
func (*TalkReq) numFields() int { return 2 }

func (m *TalkReq) appendFields(w *itemWriter) {
	w.bytes(m.Protocol)
	w.bytes(m.Request)
}

func (m *TalkReq) readFields(r *itemReader) error {
	var err error
	if m.Protocol, err = r.bytes(); err != nil {
		return err
	}
	m.Request, err = r.bytes()
	return err
}

// TalkResp answers a TalkReq.
type TalkResp struct {
	Response []byte
}

func (*TalkResp) Kind() Kind     { return KindTalkResp }
func (*TalkResp) numFields() int { return 1 }

func (m *TalkResp) appendFields(w *itemWriter) {
	w.bytes(m.Response)
}

func (m *TalkResp) readFields(r *itemReader) error {
	var err error
	m.Response, err = r.bytes()
	return err
}
