package storage

import (
	"encoding/json"
	"errors"
	"reflect"
)

func decodeInto(text string, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.New("destination must be a non-nil pointer")
	}

	fresh := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal([]byte(text), fresh.Interface()); err != nil {
		return err
	}
	rv.Elem().Set(fresh.Elem())
	return nil
}
