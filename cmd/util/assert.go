package util

import (
	"fmt"
	"log"
)

func Warnf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

func Warning(err error, v ...interface{}) bool {
	if err != nil {
		if len(v) == 0 {
			Warnf("WARNING: %s.", err)
		} else {
			format := v[0].(string)
			v = v[1:]
			Warnf("%s: %s.", fmt.Sprintf(format, v...), err)
		}
		return true
	}
	return false
}

// Verbosef is like Warnf, but only prints when -verbose is set. No newline
// is added, so it can be used to overwrite a line.
func Verbosef(format string, v ...interface{}) {
	if FlagVerbose {
		fmt.Fprintf(log.Writer(), format, v...)
	}
}

func Fatalf(format string, v ...interface{}) {
	log.Fatalf(format, v...)
}

func Assert(err error, v ...interface{}) {
	if err != nil {
		if len(v) == 0 {
			Fatalf("ERROR: %s.", err)
		} else {
			format := v[0].(string)
			v = v[1:]
			Fatalf("%s: %s.", fmt.Sprintf(format, v...), err)
		}
	}
}

func AssertNArg(n int) {
	if NArg() != n {
		Usage()
	}
}

func AssertLeastNArg(n int) {
	if NArg() < n {
		Usage()
	}
}
