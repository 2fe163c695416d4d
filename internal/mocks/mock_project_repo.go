package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"feedback-main/internal/project"
)

// MockProjectRepo мок для project.ProjectRepo
type MockProjectRepo struct {
	ctrl     *gomock.Controller
	recorder *MockProjectRepoMockRecorder
}

func NewMockProjectRepo(ctrl *gomock.Controller) *MockProjectRepo {
	mock := &MockProjectRepo{ctrl: ctrl}
	mock.recorder = &MockProjectRepoMockRecorder{mock}
	return mock
}

func (m *MockProjectRepo) EXPECT() *MockProjectRepoMockRecorder {
	return m.recorder
}

func (m *MockProjectRepo) Create(
	ctx context.Context,
	name string,
	allowedOrigins []string,
	themeConfig map[string]string,
) (*project.Project, string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, name, allowedOrigins, themeConfig)
	ret0, _ := ret[0].(*project.Project)
	ret1, _ := ret[1].(string)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

func (m *MockProjectRepo) GetByID(ctx context.Context, id string) (*project.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*project.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (m *MockProjectRepo) GetByPublicKey(ctx context.Context, publicKey string) (*project.Project, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByPublicKey", ctx, publicKey)
	ret0, _ := ret[0].(*project.Project)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (m *MockProjectRepo) Delete(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

type MockProjectRepoMockRecorder struct {
	mock *MockProjectRepo
}

func (mr *MockProjectRepoMockRecorder) Create(ctx, name, allowedOrigins, themeConfig interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"Create",
		reflect.TypeOf((*MockProjectRepo)(nil).Create),
		ctx, name, allowedOrigins, themeConfig,
	)
}

func (mr *MockProjectRepoMockRecorder) GetByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"GetByID",
		reflect.TypeOf((*MockProjectRepo)(nil).GetByID),
		ctx, id,
	)
}

func (mr *MockProjectRepoMockRecorder) GetByPublicKey(ctx, publicKey interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"GetByPublicKey",
		reflect.TypeOf((*MockProjectRepo)(nil).GetByPublicKey),
		ctx, publicKey,
	)
}

func (mr *MockProjectRepoMockRecorder) Delete(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"Delete",
		reflect.TypeOf((*MockProjectRepo)(nil).Delete),
		ctx, id,
	)
}
