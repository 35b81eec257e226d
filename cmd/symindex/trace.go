package main

import (
	"io"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// tracer traces with key 'symindex'.
func tracer() tracing.Trace {
	return tracing.Select("symindex")
}

// selector hands out one Go-logger backed tracer per key, all sharing a
// level and an output.
type selector struct {
	mu      sync.Mutex
	level   tracing.TraceLevel
	out     io.Writer
	tracers map[string]tracing.Trace
}

func newSelector(level tracing.TraceLevel, out io.Writer) *selector {
	return &selector{level: level, out: out, tracers: make(map[string]tracing.Trace)}
}

func (s *selector) Select(key string) tracing.Trace {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tracers[key]; ok {
		return t
	}
	t := gologadapter.New()
	t.SetOutput(s.out)
	t.SetTraceLevel(s.level)
	s.tracers[key] = t
	return t
}
