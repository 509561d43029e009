package effectmodel

import "errors"

type EffectEnum string

const (
	EffectLog EffectEnum = "cauchy_ive_go_effect_enum_log"
)

var ErrNoEffectHandler = errors.New("no effect handler registered for this effect")
