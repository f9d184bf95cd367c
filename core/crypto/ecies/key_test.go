package ecies

import (
	"strings"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	kerrors "github.com/kochabx/ecies/errors"
)

// TestParsePrivateKeyHex tests derivation of the known public keys
func TestParsePrivateKeyHex(t *testing.T) {
	tests := []struct {
		name       string
		priv       string
		pub        string
		compressed bool
	}{
		{"colendi", colendiPrivateKey, colendiPublicKey, false},
		{"blockstack", blockstackPrivateKey, blockstackPublicKey, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			priv, err := ParsePrivateKeyHex(tt.priv)
			if err != nil {
				t.Fatalf("ParsePrivateKeyHex: %v", err)
			}
			defer priv.Destroy()

			if got := priv.Public().Hex(tt.compressed); got != tt.pub {
				t.Errorf("public key = %s, want %s", got, tt.pub)
			}
			if got := priv.Hex(); got != tt.priv {
				t.Errorf("Hex = %s, want %s", got, tt.priv)
			}
		})
	}
}

// TestParsePrivateKeyHexLenient tests the accepted non-canonical encodings
func TestParsePrivateKeyHexLenient(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"odd length", "1", "0000000000000000000000000000000000000000000000000000000000000001"},
		{"short", "0abc", "0000000000000000000000000000000000000000000000000000000000000abc"},
		{"leading zero byte", "00" + colendiPrivateKey, colendiPrivateKey},
		{"uppercase", strings.ToUpper(blockstackPrivateKey), blockstackPrivateKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			priv, err := ParsePrivateKeyHex(tt.input)
			if err != nil {
				t.Fatalf("ParsePrivateKeyHex(%q): %v", tt.input, err)
			}
			if got := priv.Hex(); got != tt.want {
				t.Errorf("Hex = %s, want %s", got, tt.want)
			}
		})
	}
}

// TestParsePrivateKeyHexInvalid tests scalar range checks
func TestParsePrivateKeyHexInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"not hex", "zz", ErrDecoding},
		{"empty", "", ErrInvalidPrivateKey},
		{"zero", "00", ErrInvalidPrivateKey},
		{"order", curveOrderHex, ErrInvalidPrivateKey},
		{"above order", "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", ErrInvalidPrivateKey},
		{"too long", "01" + colendiPrivateKey, ErrInvalidPrivateKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePrivateKeyHex(tt.input)
			if !kerrors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

// TestParsePublicKeyHexInvalid tests error classification for public keys
func TestParsePublicKeyHexInvalid(t *testing.T) {
	if _, err := ParsePublicKeyHex("xyz"); !kerrors.Is(err, ErrDecoding) {
		t.Errorf("non-hex error = %v, want ErrDecoding", err)
	}
	if _, err := ParsePublicKeyHex("0211"); !kerrors.Is(err, ErrInvalidPublicKey) {
		t.Errorf("short point error = %v, want ErrInvalidPublicKey", err)
	}
}

// TestKeyEquality tests key equality checking
func TestKeyEquality(t *testing.T) {
	key1 := mustKeyPair(t)
	defer key1.Destroy()
	key2 := mustKeyPair(t)
	defer key2.Destroy()

	if !key1.Equals(key1) {
		t.Error("Key should equal itself")
	}
	if key1.Equals(key2) {
		t.Error("Different keys should not be equal")
	}
	if key1.Equals(nil) {
		t.Error("Key should not equal nil")
	}

	pub1, pub2 := key1.Public(), key2.Public()
	if !pub1.Equals(pub1) {
		t.Error("Public key should equal itself")
	}
	if pub1.Equals(pub2) {
		t.Error("Different public keys should not be equal")
	}
	if pub1.Equals(nil) {
		t.Error("Public key should not equal nil")
	}
}

// TestKeyDestroy tests that a destroyed key is unusable
func TestKeyDestroy(t *testing.T) {
	priv := mustKeyPair(t)
	pub := priv.Public()

	priv.Destroy()
	priv.Destroy()

	if priv.Bytes() != nil {
		t.Error("Bytes should be nil after Destroy")
	}
	if _, err := Agree(priv, pub); !kerrors.Is(err, ErrInvalidPrivateKey) {
		t.Errorf("Agree after Destroy = %v, want ErrInvalidPrivateKey", err)
	}
}

// TestImportECDSA tests interop with decred key types
func TestImportECDSA(t *testing.T) {
	dk, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		t.Fatal(err)
	}

	priv, err := ImportECDSA(dk)
	if err != nil {
		t.Fatalf("ImportECDSA: %v", err)
	}
	dk.Zero()
	if priv.Bytes() == nil || priv.Hex() == strings.Repeat("0", 64) {
		t.Fatal("imported key must not share storage with the source")
	}

	pub, err := ImportECDSAPublic(priv.Public().key)
	if err != nil {
		t.Fatalf("ImportECDSAPublic: %v", err)
	}
	if !pub.Equals(priv.Public()) {
		t.Error("imported public key differs")
	}

	if _, err := ImportECDSA(nil); !kerrors.Is(err, ErrInvalidPrivateKey) {
		t.Errorf("ImportECDSA(nil) = %v", err)
	}
	if _, err := ImportECDSAPublic(nil); !kerrors.Is(err, ErrInvalidPublicKey) {
		t.Errorf("ImportECDSAPublic(nil) = %v", err)
	}
}
