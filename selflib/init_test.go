package selflib_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type ProviderMock struct {
	mock.Mock
}

func (m *ProviderMock) Lookup(ctx context.Context) (string, error) {
	args := m.Called(ctx)

	return args.String(0), args.Error(1)
}

func (m *ProviderMock) Name() string {
	return m.Called().String(0)
}

type LoggerMock struct {
	mock.Mock
}

func (m *LoggerMock) LookupError(name, next string, err error) {
	m.Called(name, next, err)
}

func (m *LoggerMock) ResolveError(err error) {
	m.Called(err)
}

func waitForDeadline(args mock.Arguments) {
	<-args.Get(0).(context.Context).Done()
}
