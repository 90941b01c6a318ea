// Package wire owns the message codec for the discovery protocol.
//
// Ownership boundary:
// - the kind tag and per-kind encoding strategy
// - scalar encoding for request ids, node ids and addresses
// - per-record field visits over the RLP container
// - the Encode/Decode entry points
//
// Session encryption, routing decisions and request/response correlation
// belong to the surrounding node process. The provider payload encoding
// belongs to the content codec passed in via WithContentCodec.
package wire
