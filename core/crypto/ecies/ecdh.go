package ecies

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Agree performs ECDH and returns the affine X coordinate of priv·pub as an
// unsigned integer. The result is symmetric: Agree(a, bG) == Agree(b, aG).
func Agree(priv *PrivateKey, pub *PublicKey) (*big.Int, error) {
	if priv == nil || priv.key == nil {
		return nil, ErrInvalidPrivateKey.WithCausef("private key is nil or destroyed")
	}
	if pub == nil || pub.key == nil {
		return nil, ErrInvalidPublicKey.WithCausef("public key is nil")
	}

	var point, shared secp256k1.JacobianPoint
	pub.key.AsJacobian(&point)
	secp256k1.ScalarMultNonConst(&priv.key.Key, &point, &shared)

	if (shared.X.IsZero() && shared.Y.IsZero()) || shared.Z.IsZero() {
		return nil, ErrInvalidPublicKey.WithCausef("shared point is the identity")
	}
	shared.ToAffine()

	x := shared.X.Bytes()
	defer clear(x[:])
	return new(big.Int).SetBytes(x[:]), nil
}
