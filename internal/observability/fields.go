package observability

import (
	"time"

	"go.uber.org/zap"
)

// String constructs a string field.
func String(key, value string) zap.Field {
	return zap.String(key, value)
}

// Int constructs an int field.
func Int(key string, value int) zap.Field {
	return zap.Int(key, value)
}

// Ints constructs a field holding a slice of ints.
func Ints(key string, values []int) zap.Field {
	return zap.Ints(key, values)
}

// Float64 constructs a float64 field.
func Float64(key string, value float64) zap.Field {
	return zap.Float64(key, value)
}

// Bool constructs a bool field.
func Bool(key string, value bool) zap.Field {
	return zap.Bool(key, value)
}

// Duration constructs a duration field.
func Duration(key string, value time.Duration) zap.Field {
	return zap.Duration(key, value)
}

// Error constructs an error field under the "error" key.
func Error(err error) zap.Field {
	return zap.Error(err)
}
