package subm_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"
	"github.com/praksis-io/backend/srvcerror"
	"github.com/praksis-io/backend/subm"
)

func newSrvcFixture(t *testing.T) (*subm.SubmSrvc, *fixture) {
	t.Helper()
	f := newFixture(t)
	return subm.NewSubmSrvc(f.repo, f.curric, f.userSrvc), f
}

func createAttempt(t *testing.T, srvc *subm.SubmSrvc, f *fixture, code, path string) *subm.Submission {
	t.Helper()
	result, err := srvc.CreateAttempt(context.Background(), subm.CreateAttemptParams{
		Author: f.author.UUID,
		Code:   code,
		Path:   path,
	})
	require.NoError(t, err)
	return result.Submission
}

func TestCreateAttemptReportsDuplicate(t *testing.T) {
	srvc, f := newSrvcFixture(t)
	ctx := context.Background()

	first, err := srvc.CreateAttempt(ctx, subm.CreateAttemptParams{
		Author: f.author.UUID,
		Code:   "CODE",
		Path:   "two/two.rb",
	})
	require.NoError(t, err)
	assert.False(t, first.Duplicate)

	second, err := srvc.CreateAttempt(ctx, subm.CreateAttemptParams{
		Author: f.author.UUID,
		Code:   "CODE\n",
		Path:   "two/two.rb",
	})
	require.NoError(t, err)
	assert.True(t, second.Duplicate)
	assert.Equal(t, first.Submission.UUID, second.Submission.UUID)
}

func TestHibernateAndCompleteTransitions(t *testing.T) {
	srvc, f := newSrvcFixture(t)
	ctx := context.Background()

	created := createAttempt(t, srvc, f, "CODE", "two/two.rb")

	require.NoError(t, srvc.Hibernate(ctx, created.UUID))
	got, err := srvc.GetSubm(ctx, created.UUID)
	require.NoError(t, err)
	assert.Equal(t, subm.StateHibernating, got.State)

	require.NoError(t, srvc.Complete(ctx, created.UUID))
	got, err = srvc.GetSubm(ctx, created.UUID)
	require.NoError(t, err)
	assert.Equal(t, subm.StateCompleted, got.State)
}

func TestTransitionRejectedForSupersededSubmission(t *testing.T) {
	srvc, f := newSrvcFixture(t)
	ctx := context.Background()

	first := createAttempt(t, srvc, f, "CODE 1", "two/two.rb")
	createAttempt(t, srvc, f, "CODE 2", "two/two.rb")

	err := srvc.Hibernate(ctx, first.UUID)
	require.Error(t, err)
	assert.True(t, srvcerror.IsCode(err, subm.ErrCodeInvalidStateTransition))
}

func TestMuteAndUnmute(t *testing.T) {
	srvc, f := newSrvcFixture(t)
	ctx := context.Background()
	viewer := uuid.New()

	created := createAttempt(t, srvc, f, "CODE", "two/two.rb")

	require.NoError(t, srvc.Mute(ctx, created.UUID, viewer))
	got, err := srvc.GetSubm(ctx, created.UUID)
	require.NoError(t, err)
	assert.True(t, got.IsMutedBy(viewer))

	require.NoError(t, srvc.Unmute(ctx, created.UUID, viewer))
	got, err = srvc.GetSubm(ctx, created.UUID)
	require.NoError(t, err)
	assert.False(t, got.IsMutedBy(viewer))
}

func TestConcurrentMutesKeepBothEntries(t *testing.T) {
	srvc, f := newSrvcFixture(t)
	ctx := context.Background()
	tom := uuid.New()
	jerry := uuid.New()

	created := createAttempt(t, srvc, f, "CODE", "two/two.rb")

	var wg sync.WaitGroup
	for _, viewer := range []uuid.UUID{tom, jerry} {
		wg.Add(1)
		go func(by uuid.UUID) {
			defer wg.Done()
			assert.NoError(t, srvc.Mute(ctx, created.UUID, by))
		}(viewer)
	}
	wg.Wait()

	got, err := srvc.GetSubm(ctx, created.UUID)
	require.NoError(t, err)
	assert.True(t, got.IsMutedBy(tom))
	assert.True(t, got.IsMutedBy(jerry))
}

func TestHasSubmission(t *testing.T) {
	srvc, f := newSrvcFixture(t)
	ctx := context.Background()

	has, err := srvc.HasSubmission(ctx, f.author.UUID, "ruby", "two")
	require.NoError(t, err)
	assert.False(t, has)

	createAttempt(t, srvc, f, "CODE", "two/two.rb")

	has, err = srvc.HasSubmission(ctx, f.author.UUID, "ruby", "two")
	require.NoError(t, err)
	assert.True(t, has)
}

func TestGetSubmNotFound(t *testing.T) {
	srvc, _ := newSrvcFixture(t)

	_, err := srvc.GetSubm(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, srvcerror.IsCode(err, subm.ErrCodeSubmissionNotFound))
}

func TestOversizedSubmissionRejected(t *testing.T) {
	srvc, f := newSrvcFixture(t)

	huge := make([]byte, 64*1024+1)
	for i := range huge {
		huge[i] = 'a'
	}

	_, err := srvc.CreateAttempt(context.Background(), subm.CreateAttemptParams{
		Author: f.author.UUID,
		Code:   string(huge),
		Path:   "two/two.rb",
	})
	require.Error(t, err)
	assert.True(t, srvcerror.IsCode(err, subm.ErrCodeSubmissionTooLong))
}
