package downloading

import (
	"context"
	"testing"

	criteodomain "github.com/mara/criteo-performance-downloader/infrastructure/integrator/criteo/domain"
	"github.com/mara/criteo-performance-downloader/infrastructure/integrator/criteo/mocks"
	"github.com/mara/criteo-performance-downloader/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testJob() reportJob {
	return reportJob{
		ID: "12345",
		Window: domain.DateWindow{
			Start: date(2023, 1, 1),
			End:   date(2023, 3, 31),
		},
	}
}

func TestAwaitCompletion(t *testing.T) {
	tests := []struct {
		name     string
		attempts int
		setup    func(client *mocks.MockClient)
		wantErr  error
	}{
		{
			name:     "completes within the retry budget",
			attempts: 5,
			setup: func(client *mocks.MockClient) {
				gomock.InOrder(
					client.EXPECT().GetJobStatus("12345").Return(criteodomain.JobStatusPending, nil),
					client.EXPECT().GetJobStatus("12345").Return(criteodomain.JobStatusPending, nil),
					client.EXPECT().GetJobStatus("12345").Return(criteodomain.JobStatusCompleted, nil),
				)
			},
		},
		{
			name:     "still pending after the budget fails the job",
			attempts: 3,
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetJobStatus("12345").Return(criteodomain.JobStatusPending, nil).Times(3)
			},
			wantErr: ErrJobNotReady,
		},
		{
			name:     "unknown status fails immediately without more polls",
			attempts: 5,
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetJobStatus("12345").Return("Error", nil)
			},
			wantErr: ErrUnknownJobStatus,
		},
		{
			name:     "transport error is retried within the same budget",
			attempts: 2,
			setup: func(client *mocks.MockClient) {
				gomock.InOrder(
					client.EXPECT().GetJobStatus("12345").Return("", errors.New("connection reset")),
					client.EXPECT().GetJobStatus("12345").Return(criteodomain.JobStatusCompleted, nil),
				)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			err := awaitCompletion(context.Background(), client, testJob(), tt.attempts, 0)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAwaitCompletionTransportErrorOnLastAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().GetJobStatus("12345").Return("", errors.New("connection reset")).Times(2)

	err := awaitCompletion(context.Background(), client, testJob(), 2, 0)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrJobNotReady)
}

func TestScheduleJobsSubmitsOneJobPerWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	windows := ChunkDateRange(date(2023, 1, 1), date(2023, 6, 30))
	require.Len(t, windows, 2)

	client := mocks.NewMockClient(ctrl)
	gomock.InOrder(
		client.EXPECT().ScheduleReportJob(criteodomain.NewCampaignReportRequest("2023-01-01", "2023-03-31")).Return("1", nil),
		client.EXPECT().ScheduleReportJob(criteodomain.NewCampaignReportRequest("2023-04-01", "2023-06-29")).Return("2", nil),
	)

	jobs, err := scheduleJobs(client, windows)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "1", jobs[0].ID)
	assert.Equal(t, windows[0], jobs[0].Window)
	assert.Equal(t, "2", jobs[1].ID)
	assert.Equal(t, windows[1], jobs[1].Window)
}

func TestScheduleJobsSurfacesSubmissionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().ScheduleReportJob(gomock.Any()).Return("", errors.New("service unavailable"))

	jobs, err := scheduleJobs(client, ChunkDateRange(date(2023, 1, 1), date(2023, 2, 1)))
	assert.Error(t, err)
	assert.Nil(t, jobs)
}
