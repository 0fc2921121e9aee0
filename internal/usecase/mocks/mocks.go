package mocks

import (
	"context"
	"sync"
)

// MockGateway is a mock implementation of usecase.Gateway. Without a
// Func override, calls succeed and leave out untouched.
type MockGateway struct {
	mu    sync.Mutex
	calls []Call

	GetFunc    func(ctx context.Context, path string, out any) error
	PostFunc   func(ctx context.Context, path string, body, out any) error
	PutFunc    func(ctx context.Context, path string, body, out any) error
	DeleteFunc func(ctx context.Context, path string) error
}

// Call records one dispatched request.
type Call struct {
	Method string
	Path   string
	Body   any
}

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

// Calls returns the recorded requests in dispatch order.
func (m *MockGateway) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

func (m *MockGateway) record(method, path string, body any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{Method: method, Path: path, Body: body})
}

func (m *MockGateway) Get(ctx context.Context, path string, out any) error {
	m.record("GET", path, nil)
	if m.GetFunc != nil {
		return m.GetFunc(ctx, path, out)
	}
	return nil
}

func (m *MockGateway) Post(ctx context.Context, path string, body, out any) error {
	m.record("POST", path, body)
	if m.PostFunc != nil {
		return m.PostFunc(ctx, path, body, out)
	}
	return nil
}

func (m *MockGateway) Put(ctx context.Context, path string, body, out any) error {
	m.record("PUT", path, body)
	if m.PutFunc != nil {
		return m.PutFunc(ctx, path, body, out)
	}
	return nil
}

func (m *MockGateway) Delete(ctx context.Context, path string) error {
	m.record("DELETE", path, nil)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, path)
	}
	return nil
}
