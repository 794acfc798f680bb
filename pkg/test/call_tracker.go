package test

import (
	"fmt"
	"sync"
)

// CallTracker records method invocations and their arguments
type CallTracker struct {
	mu    sync.RWMutex
	calls map[string][]string
}

func NewCallTracker() *CallTracker {
	return &CallTracker{calls: make(map[string][]string)}
}

// Record stores one call of method; args are kept in their %v form.
func (ct *CallTracker) Record(method string, args ...any) {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	ct.calls[method] = append(ct.calls[method], fmt.Sprint(args...))
}

func (ct *CallTracker) Called(method string) int {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	return len(ct.calls[method])
}

func (ct *CallTracker) CalledOnce(method string) bool {
	return ct.Called(method) == 1
}

// Args returns the recorded arguments of every call to method, oldest first.
func (ct *CallTracker) Args(method string) []string {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	return append([]string(nil), ct.calls[method]...)
}
