package configtest

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"go.uber.org/multierr"
)

var durationType = reflect.TypeOf(time.Duration(0))

// CheckYAMLTags reports every config field that would be written out even when empty,
// by its dotted yaml path. Booleans and fields tagged `config:"allowempty"` are exempt.
func CheckYAMLTags(config any) error {
	w := &tagWalker{seen: make(map[reflect.Type]struct{})}
	w.walk(reflect.TypeOf(config), "")
	return w.errs
}

type tagWalker struct {
	seen map[reflect.Type]struct{}
	errs error
}

func (w *tagWalker) walk(t reflect.Type, path string) {
	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice || t.Kind() == reflect.Array || t.Kind() == reflect.Map {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || t == durationType {
		return
	}
	if _, ok := w.seen[t]; ok {
		return
	}
	w.seen[t] = struct{}{}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		opts := strings.Split(field.Tag.Get("yaml"), ",")
		name := opts[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = strings.ToLower(field.Name)
		}

		fieldPath := name
		if slices.Contains(opts, "inline") {
			fieldPath = path
		} else if path != "" {
			fieldPath = path + "." + name
		}

		exempt := field.Type.Kind() == reflect.Bool || field.Tag.Get("config") == "allowempty"
		if !exempt && !slices.Contains(opts, "omitempty") && !slices.Contains(opts, "inline") {
			w.errs = multierr.Append(w.errs, fmt.Errorf("%s (%s.%s) missing omitempty tag", fieldPath, t.Name(), field.Name))
		}

		w.walk(field.Type, fieldPath)
	}
}
