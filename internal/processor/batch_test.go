package processor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/feedbacklens/classifier/internal/classifier"
	"github.com/feedbacklens/classifier/internal/domain"
	"github.com/feedbacklens/classifier/internal/lexicon"
	"github.com/feedbacklens/classifier/internal/logging"
	"github.com/feedbacklens/classifier/internal/processor"
	"github.com/feedbacklens/classifier/internal/testhelpers"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newClassifier(t *testing.T) *classifier.Classifier {
	t.Helper()
	c, err := classifier.New(lexicon.New(), nil, classifier.Config{}, logging.NewNop(), nil)
	require.NoError(t, err)
	return c
}

func TestBatchProcessor_Process(t *testing.T) {
	bp := processor.NewBatchProcessor(newClassifier(t), nil, 4, logging.NewNop())

	items := []processor.Item{
		{FeedbackText: "excellent, outstanding, impressive work", Domain: "science"},
		{FeedbackText: "weak, poor, lacking, inadequate performance", Domain: "arts"},
		{FeedbackText: "", Domain: "law"},
		{FeedbackText: "Good communication but struggles with deadlines", Domain: "engineering"},
	}

	results := bp.Process(context.Background(), items)

	require.Len(t, results, len(items))
	for i, r := range results {
		require.NotNil(t, r, "slot %d", i)
		assert.Equal(t, items[i].FeedbackText, r.Item.FeedbackText, "input order preserved")
		require.NotNil(t, r.Result)
		assert.True(t, domain.IsValidLabel(r.Result.Label))
	}

	assert.Equal(t, domain.LabelPositive, results[0].Result.Label)
	assert.Equal(t, domain.LabelNegative, results[1].Result.Label)
	assert.Equal(t, domain.MethodEmptyText, results[2].Result.Method)
	assert.Equal(t, domain.MethodBalancedStructure, results[3].Result.Method)
}

func TestBatchProcessor_EmptyBatch(t *testing.T) {
	bp := processor.NewBatchProcessor(newClassifier(t), nil, 2, logging.NewNop())

	results := bp.Process(context.Background(), nil)
	assert.Empty(t, results)
}

func TestBatchProcessor_LargeBatchMoreWorkersThanItems(t *testing.T) {
	bp := processor.NewBatchProcessor(newClassifier(t), nil, 50, logging.NewNop())

	results := bp.Process(context.Background(), []processor.Item{
		{FeedbackText: "average, typical, satisfactory effort"},
	})

	require.Len(t, results, 1)
	assert.Equal(t, domain.MethodKeywordBackupNeutral, results[0].Result.Method)
}

func TestBatchProcessor_DefaultConcurrency(t *testing.T) {
	bp := processor.NewBatchProcessor(newClassifier(t), nil, 0, logging.NewNop())
	assert.Equal(t, 10, bp.Concurrency())
}

func TestBatchProcessor_CancelledContext(t *testing.T) {
	bp := processor.NewBatchProcessor(newClassifier(t), nil, 1, logging.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := make([]processor.Item, 20)
	for i := range items {
		items[i] = processor.Item{FeedbackText: "some text"}
	}

	results := bp.Process(ctx, items)

	// The result slice keeps its full length; slots the workers never
	// reached stay nil.
	assert.Len(t, results, len(items))
}

func TestBatchProcessor_ModelPathRateLimited(t *testing.T) {
	model := testhelpers.NewStubModel(domain.RawLabelPositive, 0.9)
	cls, err := classifier.New(lexicon.New(), model, classifier.Config{}, logging.NewNop(), nil)
	require.NoError(t, err)

	limiter := processor.NewRateLimiter(1000, 1000, logging.NewNop())
	bp := processor.NewBatchProcessor(cls, limiter, 4, logging.NewNop())

	items := []processor.Item{
		{FeedbackText: "I enjoyed the course"},
		{FeedbackText: "The material made sense to me"},
		{FeedbackText: "Lectures were easy to follow"},
	}

	results := bp.Process(context.Background(), items)

	require.Len(t, results, 3)
	for _, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, domain.MethodTransformerPrimary, r.Result.Method)
		assert.Equal(t, domain.LabelPositive, r.Result.Label)
	}
	assert.Equal(t, 3, model.CallCount())
}

func TestRateLimiter_Allow(t *testing.T) {
	rl := processor.NewRateLimiter(1, 1, logging.NewNop())

	assert.True(t, rl.Allow())
	assert.False(t, rl.Allow(), "burst of one exhausted")
}

func TestRateLimiter_WaitCancelled(t *testing.T) {
	rl := processor.NewRateLimiter(1, 1, logging.NewNop())
	require.True(t, rl.Allow())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, rl.Wait(ctx))
}

func TestRateLimiter_Defaults(t *testing.T) {
	rl := processor.NewRateLimiter(0, 0, logging.NewNop())
	assert.True(t, rl.Allow())
}
