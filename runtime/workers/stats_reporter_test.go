package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"confgw/domain"
	"confgw/mocks"
)

func TestStatsReporter_PollsAndStops(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockStatsSource(ctrl)
	source.EXPECT().
		Snapshot().
		Return(domain.Stats{Rooms: 1, TrackedSessions: 2}).
		MinTimes(2)

	reporter := NewStatsReporter(slog.Default(), source, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err := reporter.Run(ctx)
	req.ErrorIs(err, context.DeadlineExceeded)
}
