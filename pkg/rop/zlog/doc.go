// Package zlog writes rop containers to a zerolog logger. The containers
// never log on their own; call these helpers where a trace is wanted.
//
// The logger is taken from the context (zerolog.Ctx) and the event levels
// from WithLevels, debug for successes and error for failures by default.
package zlog
