package recordform

import (
	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-recordform/pkg/metadata"
	"github.com/goliatone/go-recordform/pkg/uiconfig"
)

// Option configures a FormView.
type Option func(*FormView)

// WithLogger overrides the logger used for degraded operations and metadata
// lookup failures. Defaults to logrus.StandardLogger().
func WithLogger(logger *logrus.Logger) Option {
	return func(v *FormView) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithResolver supplies the schema-metadata resolver used to fetch full
// declared types for ENUM/SET columns. Without one, choice columns degrade
// to plain text entries.
func WithResolver(resolver metadata.Resolver) Option {
	return func(v *FormView) {
		v.resolver = resolver
	}
}

// WithOverrides applies per-column display overrides.
func WithOverrides(cfg *uiconfig.Config) Option {
	return func(v *FormView) {
		v.overrides = cfg
	}
}
