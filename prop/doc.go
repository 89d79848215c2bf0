// Package prop defines Value, the tagged sum type stored in every property
// history and static property slot: {Str, I64, U64, F64, Bool}.
package prop
