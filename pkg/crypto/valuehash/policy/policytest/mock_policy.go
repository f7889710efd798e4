// Package policytest provides a hand-written go.uber.org/mock-style
// mock of policy.Policy, for tests that need to assert exactly which
// hashing operations valuehash performs rather than their numeric
// results.
package policytest

import (
	"reflect"

	"sethash.dev/pkg/crypto/valuehash/policy"

	"go.uber.org/mock/gomock"
)

// MockPolicy is a mock of the policy.Policy interface.
type MockPolicy struct {
	ctrl     *gomock.Controller
	recorder *MockPolicyMockRecorder
}

// MockPolicyMockRecorder is the mock recorder for MockPolicy.
type MockPolicyMockRecorder struct {
	mock *MockPolicy
}

// NewMockPolicy creates a new mock instance.
func NewMockPolicy(ctrl *gomock.Controller) *MockPolicy {
	mock := &MockPolicy{ctrl: ctrl}
	mock.recorder = &MockPolicyMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPolicy) EXPECT() *MockPolicyMockRecorder {
	return m.recorder
}

var _ policy.Policy = (*MockPolicy)(nil)

func (m *MockPolicy) Name() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Name")
	return ret[0].(string)
}

func (mr *MockPolicyMockRecorder) Name() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Name", reflect.TypeOf((*MockPolicy)(nil).Name))
}

func (m *MockPolicy) HashBytes(data []byte) uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HashBytes", data)
	return ret[0].(uint64)
}

func (mr *MockPolicyMockRecorder) HashBytes(data any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HashBytes", reflect.TypeOf((*MockPolicy)(nil).HashBytes), data)
}

func (m *MockPolicy) HashUint64(v uint64) uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HashUint64", v)
	return ret[0].(uint64)
}

func (mr *MockPolicyMockRecorder) HashUint64(v any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HashUint64", reflect.TypeOf((*MockPolicy)(nil).HashUint64), v)
}

func (m *MockPolicy) Combine(state, next uint64) uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Combine", state, next)
	return ret[0].(uint64)
}

func (mr *MockPolicyMockRecorder) Combine(state, next any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Combine", reflect.TypeOf((*MockPolicy)(nil).Combine), state, next)
}

func (m *MockPolicy) InvertibleCombine(a, b uint64) uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InvertibleCombine", a, b)
	return ret[0].(uint64)
}

func (mr *MockPolicyMockRecorder) InvertibleCombine(a, b any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InvertibleCombine", reflect.TypeOf((*MockPolicy)(nil).InvertibleCombine), a, b)
}

func (m *MockPolicy) ErrorValue() uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ErrorValue")
	return ret[0].(uint64)
}

func (mr *MockPolicyMockRecorder) ErrorValue() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ErrorValue", reflect.TypeOf((*MockPolicy)(nil).ErrorValue))
}
