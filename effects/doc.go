// Package effects delegates side effects to handlers bound to a context.
//
// The density code in this module is pure. Whatever is not pure, logging
// first of all, is performed through a handler registered on the
// context.Context with WithXxxEffectHandler and reached with XxxEffect.
// Code that receives a context without a handler still runs; the effect is
// reported as unhandled instead.
//
// Example:
//
//	ctx, end := log.WithZapEffectHandler(ctx, 16, logger)
//	defer end()
//
//	log.Effect(ctx, log.LogInfo, "evaluated", map[string]interface{}{"n": len(xs)})
package effects
