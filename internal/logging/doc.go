// Package logging provides the CLI's leveled, colored logger. Info and
// debug lines are gated behind the verbose/debug flags; warnings and
// errors always print to stderr. Secret material is never logged.
package logging
