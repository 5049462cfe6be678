package util

import (
	"flag"
	"strconv"
)

// Flag registers value under every one of names in fs and returns it.
func Flag[T flag.Value](fs *flag.FlagSet, value T, usage string, names ...string) T {
	for _, name := range names {
		fs.Var(value, name, usage)
	}
	return value
}

// OptionalFloat is a float flag that remembers whether it was ever
// given on the command line.
type OptionalFloat struct {
	V  float64
	Ok bool
}

func (f *OptionalFloat) String() string {
	if (f == nil) || !f.Ok {
		return ""
	}
	return strconv.FormatFloat(f.V, 'g', -1, 64)
}

func (f *OptionalFloat) Set(v string) error {
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return err
	}
	f.V, f.Ok = n, true
	return nil
}
