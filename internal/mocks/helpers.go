package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockEmailSenderForTest creates a new mock EmailSender for testing
func NewMockEmailSenderForTest(t *testing.T) *MockEmailSender {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockEmailSender(ctrl)
}
