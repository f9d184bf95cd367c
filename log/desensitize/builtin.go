package desensitize

// Redaction markers
const (
	Redacted = "[REDACTED]"
	Masked   = "******"
)

var (
	// HexScalarRule hides bare 32-byte hex values such as private keys,
	// shared secrets and derived keys.
	HexScalarRule = MustNewContentRule("hex_scalar", `\b[0-9a-fA-F]{64}\b`, Redacted)

	PrivateKeyRule    = MustNewFieldRule("private_key", "private_key", Masked)
	SharedSecretRule  = MustNewFieldRule("shared_secret", "shared_secret", Masked)
	EncryptionKeyRule = MustNewFieldRule("enc_key", "enc_key", Masked)
	MACKeyRule        = MustNewFieldRule("mac_key", "mac_key", Masked)
	SecretRule        = MustNewFieldRule("secret", "secret", Masked)
)

// BuiltinRules returns the key material rules, field rules first.
func BuiltinRules() []Rule {
	return []Rule{
		PrivateKeyRule,
		SharedSecretRule,
		EncryptionKeyRule,
		MACKeyRule,
		SecretRule,
		HexScalarRule,
	}
}
