package helpers

import (
	"crypto/sha256"
	"encoding/hex"
)

func HexOfHashOfEndpointIdentifier(method string, path string) string {
	hash := sha256.New()
	hash.Reset()
	hash.Write([]byte(method))
	hash.Write([]byte(path))

	return hex.EncodeToString(hash.Sum(nil))
}
