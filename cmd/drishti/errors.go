// cmd/drishti/errors.go
package main

import (
	"fmt"
	"sync"
	"time"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeFeed     ErrorType = "feed"
	ErrorTypeResolver ErrorType = "resolver"
	ErrorTypeAI       ErrorType = "ai"
	ErrorTypeConfig   ErrorType = "config"
	ErrorTypeAPI      ErrorType = "api"
	ErrorTypeInternal ErrorType = "internal"
)

// ErrorEvent represents a recorded error event
type ErrorEvent struct {
	Type      ErrorType `json:"type"`
	Message   string    `json:"message"`
	Component string    `json:"component"`
	Time      time.Time `json:"time"`
}

// ErrorBuffer keeps the most recent error events, newest first
type ErrorBuffer struct {
	events []*ErrorEvent
	max    int
	mutex  sync.RWMutex
}

var errorBuffer *ErrorBuffer

// InitErrorSystem sets up the global error buffer
func InitErrorSystem(size int) {
	errorBuffer = NewErrorBuffer(size)
}

// NewErrorBuffer creates an error buffer holding at most max events
func NewErrorBuffer(max int) *ErrorBuffer {
	return &ErrorBuffer{max: max}
}

// Add records an event, evicting the oldest when full
func (b *ErrorBuffer) Add(event *ErrorEvent) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.events = append([]*ErrorEvent{event}, b.events...)
	if len(b.events) > b.max {
		b.events = b.events[:b.max]
	}
}

// GetRecent returns up to count most recent events
func (b *ErrorBuffer) GetRecent(count int) []*ErrorEvent {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	if count > len(b.events) {
		count = len(b.events)
	}
	out := make([]*ErrorEvent, count)
	copy(out, b.events[:count])
	return out
}

// HandleError logs an error and records it in the global buffer.
// All pipeline failures flow through here and degrade to fallbacks;
// nothing past this point propagates to the HTTP layer.
func HandleError(errType ErrorType, component string, err error) {
	if err == nil {
		return
	}

	Logger().Error("%s: %v", component, err)
	stats.IncrementErrors()

	if errorBuffer != nil {
		errorBuffer.Add(&ErrorEvent{
			Type:      errType,
			Message:   err.Error(),
			Component: component,
			Time:      time.Now(),
		})
	}
}

// RecoverFromPanic converts a panic into a recorded error event
func RecoverFromPanic(component string) {
	if r := recover(); r != nil {
		HandleError(ErrorTypeInternal, component, fmt.Errorf("panic: %v", r))
	}
}
