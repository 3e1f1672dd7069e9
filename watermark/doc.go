// SPDX-License-Identifier: EPL-2.0

// Package watermark implements the spread-spectrum audio watermark codec:
// deterministic keyed PN carrier generation, adaptive additive embedding,
// and correlation-based extraction.
//
// The codec is deliberately narrow. It knows nothing about payload framing,
// error correction, synchronization preambles, or voting across repeated
// transmissions of the payload — see the sibling payload package for that.
// watermark only guarantees: given the same (secret, position, block
// length), the carrier it generates is bit-exact, and given the same
// (secret, samples, payload, block length) the embed result is bit-exact.
//
// # Pipeline
//
// Embedding and extraction share a CarrierBank generated once per call:
//
//	bank, err := watermark.NewCarrierBank(secret, payloadLen, hopSize*4)
//	out, err := watermark.Embed(samples, payload, bank, opts)
//	result, err := watermark.Extract(samples, bank, opts)
//
// Both Embed and Extract additionally accept the secret directly via
// EmbedWithSecret/ExtractWithSecret, which build the CarrierBank
// internally — use the explicit CarrierBank form when embedding and then
// immediately extracting in the same process, to avoid regenerating
// carriers twice.
package watermark
