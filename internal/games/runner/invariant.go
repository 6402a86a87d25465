package runner

import "fmt"

// invariant reports whether a contract holds. When it does not, strict
// builds panic and regular builds return false so the caller can clamp.
func invariant(ok bool, format string, args ...any) bool {
	if ok {
		return true
	}
	if strictInvariants {
		panic(fmt.Sprintf("runner: "+format, args...))
	}
	return false
}
