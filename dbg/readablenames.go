package dbg

import (
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for pointers, so that frontier pieces and steppers can be told
// apart in debug output. Names are handed out lazily and never released, which
// only matters while debugging.

var names = map[interface{}]string{}

func init() {
	// Names depend on the order of demand, so make them vary between runs to
	// avoid implying that a name identifies the same object across runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}
	if name, ok := names[obj]; ok {
		return name
	}
	words := strings.Split(petname.Generate(2, "-"), "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	name := strings.Join(words, "")
	names[obj] = name
	return name
}
