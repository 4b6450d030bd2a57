package stockroom

import (
	"fmt"
	"reflect"
)

type WorldLockedError struct{}

func (e WorldLockedError) Error() string {
	return "world is currently locked for iteration"
}

type TooManyComponentTypesError struct {
	Type reflect.Type
}

func (e TooManyComponentTypesError) Error() string {
	return fmt.Sprintf("cannot register component type %v: limit of %d distinct types reached", e.Type, MaxComponents)
}

type ResourceAbsentError struct {
	Type reflect.Type
}

func (e ResourceAbsentError) Error() string {
	return fmt.Sprintf("no resource of type %v is installed", e.Type)
}
