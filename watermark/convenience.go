// SPDX-License-Identifier: EPL-2.0

package watermark

// EmbedWithSecret builds a CarrierBank sized to len(payload) and embeds
// payload into samplesLR in one call. Prefer building a CarrierBank
// explicitly and reusing it across calls (e.g. embed then immediately
// extract in the same process) to avoid regenerating identical carriers.
func EmbedWithSecret(samplesLR []float32, payload []byte, secret []byte, opts Options) ([]float32, error) {
	bank, err := NewCarrierBank(secret, len(payload), opts.blockLen())
	if err != nil {
		return nil, err
	}
	return Embed(samplesLR, payload, bank, opts)
}

// ExtractWithSecret builds a CarrierBank of payloadLen carriers and
// extracts correlations from samplesLR in one call.
func ExtractWithSecret(samplesLR []float32, secret []byte, payloadLen int, opts Options) (Result, error) {
	bank, err := NewCarrierBank(secret, payloadLen, opts.blockLen())
	if err != nil {
		return Result{}, err
	}
	return Extract(samplesLR, bank, opts)
}
