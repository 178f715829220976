// Package usersetting builds and executes the insert statements that seed the
// user_setting table.
//
// A setting is written in one of two row shapes. The simple shape populates
// key, defaultValue and valueType only and relies on the column defaults of the
// table for everything else. The full shape is used as soon as a user value or
// any platform specific default is given and populates all seven columns.
//
// Statements never interpolate values. Every value is passed as a bound
// argument and only identifiers are rendered into the SQL text.
//
// The package does not own a connection or a transaction. Callers hand in an
// Executor which is usually backed by a gorm transaction.
package usersetting
