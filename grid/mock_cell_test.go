package grid

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// MockCell is a mock of Cell interface.
type MockCell struct {
	ctrl     *gomock.Controller
	recorder *MockCellMockRecorder
}

// MockCellMockRecorder is the mock recorder for MockCell.
type MockCellMockRecorder struct {
	mock *MockCell
}

// NewMockCell creates a new mock instance.
func NewMockCell(ctrl *gomock.Controller) *MockCell {
	mock := &MockCell{ctrl: ctrl}
	mock.recorder = &MockCellMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCell) EXPECT() *MockCellMockRecorder {
	return m.recorder
}

// ID mocks base method.
func (m *MockCell) ID() ID {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ID")
	ret0, _ := ret[0].(ID)
	return ret0
}

// ID indicates an expected call of ID.
func (mr *MockCellMockRecorder) ID() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ID", reflect.TypeOf((*MockCell)(nil).ID))
}

// View mocks base method.
func (m *MockCell) View() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "View")
	ret0, _ := ret[0].(string)
	return ret0
}

// View indicates an expected call of View.
func (mr *MockCellMockRecorder) View() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "View", reflect.TypeOf((*MockCell)(nil).View))
}
