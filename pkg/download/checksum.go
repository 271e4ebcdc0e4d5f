package download

import (
	"fmt"
	"strings"
)

// ParseChecksum splits an "algo:hex" pin. A bare hex value is taken as sha256.
func ParseChecksum(pin string) (algo, hash string, err error) {
	pin = strings.TrimSpace(pin)
	if pin == "" {
		return "", "", fmt.Errorf("empty checksum")
	}
	algo, hash, found := strings.Cut(pin, ":")
	if !found {
		algo, hash = "sha256", pin
	}
	algo = strings.ToLower(strings.TrimSpace(algo))
	hash = strings.ToLower(strings.TrimSpace(hash))
	if algo == "" || hash == "" {
		return "", "", fmt.Errorf("invalid checksum %q (expected <algo>:<hex>)", pin)
	}
	for _, r := range hash {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return "", "", fmt.Errorf("invalid checksum %q: not hex", pin)
		}
	}
	return algo, hash, nil
}
