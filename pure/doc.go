// Package pure memoizes pure functions of float64 arguments.
//
// Tableize asks one question before it saves any work:
//
//	→ "Is this function really pure?"
//
// If it is, its results can be kept in a table indexed by its arguments,
// the way a mathematical function is a table of values.
//
// Features:
//   - TableizeF1 to TableizeF3: generic memoizers for one to three float64 arguments.
//   - Keys are IEEE-754 bit patterns with every NaN folded into one key, so a
//     NaN argument is cached instead of growing the table on each call.
//   - Bounded table, sharded by xxhash, with two-generation rotation per shard.
//   - Safe for concurrent use.
//
// WARNING: Do not use Tableize on impure functions (e.g., those depending on time, I/O, etc).
package pure
