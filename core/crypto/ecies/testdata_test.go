package ecies

import (
	"encoding/hex"
	"testing"
)

// Interop vectors
const (
	colendiPrivateKey = "7a7480972a756b1f117faadd23f9af00bdb309d3553e47b3b5d7f2756df620b3"
	colendiPublicKey  = "04327453891187123d8a122c47ac5a98ff9a1cbc0dd28ce6fae2183a51a7b8aeaaea8b75c7ac46fbc2434c0fe8b8fecb5fee1be8b52bff3072046fe26ca3652279"

	blockstackPrivateKey = "a5c61c6ca7b3e7e55edee68566aeab22e4da26baa285c7bd10e8d2218aa3b229"
	blockstackPublicKey  = "027d28f9951ce46538951e3697c62588a87f1f1f295de4a14fdd4c780fc52cfe69"
	blockstackPlaintext  = "all work and no play makes jack a dull boy"
	blockstackSecret     = "dd585e51548fea14df7114ea366ffd1372abdf8cf6c771da2ff0285522951001"
	blockstackEncKey     = "a32fb7bbf65d0a6f6c2d05c49cc5e477b8616b517562f1494f16a106190c74e4"
	blockstackMACKey     = "dcbb3058a9fb295b181f483dc32962949551e648125f351eafdffd053ed2761f"

	curveOrderHex = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
)

func blockstackEnvelope() *Envelope {
	return &Envelope{
		EphemeralPublicKey: "02df2bc402b134631b2afaa31316392e3ded63728cd588e4f8bc152b39f8a6deb4",
		IV:                 "f0f56df1978d5c5d65e8e5b3ff8ad1fc",
		MAC:                "4210125fb1c7f9c47a8e4ab7995980e4eeebbccbd6fe888beec809062e1b33da",
		Ciphertext:         "c77fded9b2013ed08409b5f6a69f53e78d4ef0ec1cca6380d6b0aa8bd927c454135dd1a5c54adc0f3e0aa9748fec3fb5",
		WasString:          true,
	}
}

func mustHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

func mustKeyPair(t testing.TB) *PrivateKey {
	t.Helper()
	priv, err := Curve().GenerateKeyPair(nil)
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}
	return priv
}

// countingReader yields a deterministic byte stream.
type countingReader struct{ next byte }

func (r *countingReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.next
		r.next++
	}
	return len(p), nil
}
