package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// HashFiles fingerprints the concatenated contents of paths, in order.
func HashFiles(paths ...string) (string, error) {
	h := sha256.New()
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return "", err
		}
		_, err = io.Copy(h, f)
		f.Close()
		if err != nil {
			return "", err
		}
		// separator keeps ("ab","c") distinct from ("a","bc")
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
