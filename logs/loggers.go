// Package logs holds the module's named loggers. Library code returns errors
// rather than logging them; these are for failures that have no caller to
// return to.
package logs

import (
	"log"
	"os"
)

var Error = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Llongfile)
