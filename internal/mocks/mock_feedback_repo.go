package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"feedback-main/internal/feedback"
)

// MockFeedbackRepo мок для feedback.FeedbackRepo
type MockFeedbackRepo struct {
	ctrl     *gomock.Controller
	recorder *MockFeedbackRepoMockRecorder
}

func NewMockFeedbackRepo(ctrl *gomock.Controller) *MockFeedbackRepo {
	mock := &MockFeedbackRepo{ctrl: ctrl}
	mock.recorder = &MockFeedbackRepoMockRecorder{mock}
	return mock
}

func (m *MockFeedbackRepo) EXPECT() *MockFeedbackRepoMockRecorder {
	return m.recorder
}

func (m *MockFeedbackRepo) Create(ctx context.Context, fb *feedback.Feedback) (*feedback.Feedback, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, fb)
	ret0, _ := ret[0].(*feedback.Feedback)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (m *MockFeedbackRepo) GetByProjectID(ctx context.Context, projectID string) ([]*feedback.Feedback, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByProjectID", ctx, projectID)
	ret0, _ := ret[0].([]*feedback.Feedback)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

type MockFeedbackRepoMockRecorder struct {
	mock *MockFeedbackRepo
}

func (mr *MockFeedbackRepoMockRecorder) Create(ctx, fb interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"Create",
		reflect.TypeOf((*MockFeedbackRepo)(nil).Create),
		ctx, fb,
	)
}

func (mr *MockFeedbackRepoMockRecorder) GetByProjectID(ctx, projectID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(
		mr.mock,
		"GetByProjectID",
		reflect.TypeOf((*MockFeedbackRepo)(nil).GetByProjectID),
		ctx, projectID,
	)
}
