package configs

import (
	"errors"
)

// First decodes the value at path from the first file defining it, or
// returns def when no file does. Other errors panic.
func First[T any](loader Loader, path string, def T) T {
	value := def
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return def
		}
		panic(err)
	}
	return value
}
