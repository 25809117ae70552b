package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

func Error(err error) Field {
	return Field{Key: "error", Value: err}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

func Component(name string) Field {
	return String("component", name)
}

func Operation(op string) Field {
	return String("operation", op)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}

func Path(p string) Field {
	return String("path", p)
}

// Domain fields

// Entity names the logical key of a topology entity
func Entity(id string) Field {
	return String("entity", id)
}

func Kind(kind string) Field {
	return String("kind", kind)
}

func Triples(n int) Field {
	return Int("triples", n)
}

func Violations(n int) Field {
	return Int("violations", n)
}

// Source labels an input document (file name or "packaged")
func Source(name string) Field {
	return String("source", name)
}

func RunID(id string) Field {
	return String("run_id", id)
}
