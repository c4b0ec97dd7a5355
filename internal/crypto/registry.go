package crypto

import (
	"strings"

	"github.com/pkg/errors"

	"securedb/internal/domain"
)

// ByName returns the cipher registered under name. An empty name selects Legacy.
func ByName(name string) (domain.Cipher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", LegacyAlgorithm, "legacy":
		return Legacy{}, nil
	case SealedAlgorithm, "sealed":
		return Sealed{}, nil
	default:
		return nil, errors.Errorf("unknown cipher %q (supported: %s, %s)", name, LegacyAlgorithm, SealedAlgorithm)
	}
}
