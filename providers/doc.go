// Package providers implements the content codec for the provider
// advertisement messages (addProvider, getProviders, providers).
//
// Provider records travel as one opaque blob inside the outer message
// list. This package owns that blob: an RLP-encoded payload whose records
// are wrapped in an ed25519 signature envelope, verified on decode.
package providers
