package testutils

import (
	"context"

	"github.com/anjiri1684/tutor_booking/notifications"
	"github.com/stretchr/testify/mock"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) BookingCreated(ctx context.Context, n notifications.BookingNotice) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotifier) RequestCreated(ctx context.Context, n notifications.RequestNotice) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotifier) Digest(ctx context.Context, d notifications.DigestNotice) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
