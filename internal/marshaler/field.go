package marshaler

import (
	"reflect"
	"strings"
	"sync"
)

// field represents a cached struct field.
type field struct {
	name      string
	idx       int
	omitEmpty bool
	comment   string
}

// fieldCache caches the ordered field list for a given struct type.
var fieldCache sync.Map

// cachedFields uses reflection to parse a struct's tags and build a cache
// of its fields in declaration order. It skips unexported fields and fields
// tagged with `yaml:"-"`.
func cachedFields(t reflect.Type) []field {
	if f, ok := fieldCache.Load(t); ok {
		return f.([]field)
	}

	fields := make([]field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		tag := sf.Tag.Get("yaml")
		if tag == "-" {
			continue
		}

		f := field{idx: i, comment: sf.Tag.Get("comment")}
		name, opts, _ := strings.Cut(tag, ",")
		if name != "" {
			f.name = name
		} else {
			f.name = sf.Name
		}

		for opts != "" {
			var opt string
			opt, opts, _ = strings.Cut(opts, ",")
			if strings.TrimSpace(opt) == "omitempty" {
				f.omitEmpty = true
			}
		}
		fields = append(fields, f)
	}

	f, _ := fieldCache.LoadOrStore(t, fields)
	return f.([]field)
}
