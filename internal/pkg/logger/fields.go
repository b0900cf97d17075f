package logger

import "time"

// Field carries a single structured logging key/value pair.
// Abstracting the underlying framework keeps client code free of
// direct logrus imports.
type Field struct {
	Key   string
	Value interface{}
}

// String constructs a field that carries a string value
func String(key, val string) Field {
	return Field{Key: key, Value: val}
}

// Err constructs a field that carries an error
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// ErrorField constructs a field that carries an error (alias for Err)
func ErrorField(err error) Field {
	return Err(err)
}

// Int constructs a field that carries an int value
func Int(key string, val int) Field {
	return Field{Key: key, Value: val}
}

// Int64 constructs a field that carries an int64 value
func Int64(key string, val int64) Field {
	return Field{Key: key, Value: val}
}

// Float64 constructs a field that carries a float64 value
func Float64(key string, val float64) Field {
	return Field{Key: key, Value: val}
}

// Bool constructs a field that carries a boolean value
func Bool(key string, val bool) Field {
	return Field{Key: key, Value: val}
}

// Any constructs a field that carries an arbitrary value
func Any(key string, val interface{}) Field {
	return Field{Key: key, Value: val}
}

// Duration constructs a field that carries a time.Duration value
func Duration(key string, val time.Duration) Field {
	return Field{Key: key, Value: val}
}
