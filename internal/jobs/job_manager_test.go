package jobs_test

import (
	"errors"
	"testing"

	"fulfillment/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJob struct {
	mock.Mock
}

func (m *MockJob) Name() string {
	return m.Called().String(0)
}

func (m *MockJob) Start() error {
	return m.Called().Error(0)
}

func (m *MockJob) Stop() {
	m.Called()
}

func TestJobManager_StartAllAndStopAllInReverse(t *testing.T) {
	first, second := new(MockJob), new(MockJob)
	first.On("Start").Return(nil).Once()
	second.On("Start").Return(nil).Once()
	stopSecond := second.On("Stop").Once()
	first.On("Stop").Once().NotBefore(stopSecond)

	manager := jobs.NewJobManager(first, second)
	require.NoError(t, manager.StartAll())
	manager.StopAll()

	first.AssertExpectations(t)
	second.AssertExpectations(t)
}

func TestJobManager_StartFailureStopsStartedJobs(t *testing.T) {
	first, second, third := new(MockJob), new(MockJob), new(MockJob)
	first.On("Start").Return(nil).Once()
	first.On("Stop").Once()
	second.On("Start").Return(errors.New("bad schedule")).Once()
	second.On("Name").Return("broken")

	err := jobs.NewJobManager(first, second, third).StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start broken job")
	first.AssertExpectations(t)
	second.AssertNotCalled(t, "Stop")
	third.AssertNotCalled(t, "Start")
}
