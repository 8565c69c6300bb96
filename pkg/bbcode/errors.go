package bbcode

import (
	"errors"

	"github.com/samber/oops"
)

var (
	// ErrLimitExceeded is returned by Engine.Process when the input nests
	// deeper or contains more tags than the engine allows.
	ErrLimitExceeded = errors.New("bbcode: processing limit exceeded")

	// ErrInvalidRegistry is returned by New and Registry.Validate for
	// misconfigured tag definitions.
	ErrInvalidRegistry = errors.New("bbcode: invalid tag registry")
)

// Error codes attached to oops errors returned by this package.
const (
	CodeLimitExceeded   = "BBCODE_LIMIT_EXCEEDED"
	CodeRegistryInvalid = "BBCODE_REGISTRY_INVALID"
)

func limitError(limit string, max, pos int) error {
	return oops.Code(CodeLimitExceeded).
		With("limit", limit).
		With("max", max).
		With("position", pos).
		Wrapf(ErrLimitExceeded, "%s exceeds %d", limit, max)
}

func registryError(err error) error {
	return oops.Code(CodeRegistryInvalid).Wrap(err)
}
