package logger

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrAppNameIsEmpty is returned by Init without log.appname.
	ErrAppNameIsEmpty = errors.New("log.appname is required to tag seeder log lines")

	// ErrServiceNameIsEmpty is returned by Init without log.servicename.
	ErrServiceNameIsEmpty = errors.New("log.servicename is required for the log statement counter")
)

// ErrorHandler reports log events that could not be written, e.g. a full disk
// behind a rolling log file.
func ErrorHandler(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "settings-seeder: dropped log event: %v\n", err)
}
