package common

import (
	"fmt"
	"reflect"
)

// TupleToSlice flattens a decoded tuple value into its fields in
// declaration order. The abi decoder materializes tuples as anonymous
// structs, which is what this expects; passing anything else errors.
func TupleToSlice(tuple interface{}) ([]interface{}, error) {
	v := reflect.ValueOf(tuple)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected a decoded tuple, got %T", tuple)
	}
	fields := make([]interface{}, 0, v.NumField())
	for i := 0; i < v.NumField(); i++ {
		fields = append(fields, v.Field(i).Interface())
	}
	return fields, nil
}
