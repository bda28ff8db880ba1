package validate

import (
	"os"

	"go.uber.org/zap"
)

// PathValidator checks filesystem paths.
type PathValidator struct {
	logger *zap.Logger
}

var _ Validator = PathValidator{}

func NewPathValidator(opts ...Option) PathValidator {
	o := newOptions(opts...)
	return PathValidator{logger: o.logger}
}

func (v PathValidator) Exists(path string) bool {
	if _, err := os.Stat(path); err != nil {
		v.logger.Debug("path probe failed", zap.String("path", path), zap.Error(err))
		return false
	}
	return true
}

// Validate currently has nothing deeper to check than presence.
func (v PathValidator) Validate(path string) bool {
	return v.Exists(path)
}
