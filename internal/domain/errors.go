package domain

import "errors"

var (
	ErrInvalidExpression = errors.New("invalid dice expression")
	ErrInvalidArgument   = errors.New("missing required argument")
	ErrNoCharacter       = errors.New("character not found")
	ErrNoCharacters      = errors.New("no characters exist")
	ErrCombatActive      = errors.New("combat already in progress")
	ErrCombatNotActive   = errors.New("no combat in progress")
	ErrSecretNotFound    = errors.New("secret not found")
)
