package core

import "fmt"

// ConfigurationError reports a size or parameter precondition that failed while
// building a map, frame buffer or renderer.
type ConfigurationError struct {
	What string
	Want any
	Got  any
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: want %v, got %v", e.What, e.Want, e.Got)
}
