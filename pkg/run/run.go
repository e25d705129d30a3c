// Package run exposes the identifier engine under the RUN name (Rol Único
// Nacional, the civil identity number). RUN and RUT share the same shape and
// checksum, so every value here is bound to its counterpart in package rut.
package run

import "rutcheck/pkg/rut"

type (
	ID          = rut.ID
	Outcome     = rut.Outcome
	Policy      = rut.Policy
	Option      = rut.Option
	FormatError = rut.FormatError
)

var ErrInvalidFormat = rut.ErrInvalidFormat

var (
	Clean                  = rut.Clean
	CheckCharacter         = rut.CheckCharacter
	Parse                  = rut.Parse
	Validate               = rut.Validate
	Format                 = rut.Format
	FormatCompact          = rut.FormatCompact
	ValidateBatch          = rut.ValidateBatch
	GenerateRandom         = rut.GenerateRandom
	GenerateRandomBetween  = rut.GenerateRandomBetween
	IsLikelyOrganizational = rut.IsLikelyOrganizational
	DefaultPolicy          = rut.DefaultPolicy
	WithRange              = rut.WithRange
	WithPolicy             = rut.WithPolicy
)
