package finbert

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/backends"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner 在 Forward 中写入固定的原始 logits，与真实流水线的输出布局一致
type fakeRunner struct {
	logits []float32
	err    error
	inputs [][]string
}

func (f *fakeRunner) Preprocess(batch *backends.PipelineBatch, inputs []string) error {
	f.inputs = append(f.inputs, inputs)
	return nil
}

func (f *fakeRunner) Forward(batch *backends.PipelineBatch) error {
	if f.err != nil {
		return f.err
	}
	batch.OutputValues = []any{[][]float32{f.logits}}
	return nil
}

func TestLabelOrder(t *testing.T) {
	order, err := labelOrder(map[int]string{0: "Negative", 1: "NEUTRAL", 2: " positive "})
	require.NoError(t, err)
	assert.Equal(t, [3]int{2, 0, 1}, order)

	_, err = labelOrder(map[int]string{0: "positive", 1: "LABEL_1", 2: "neutral"})
	assert.ErrorIs(t, err, ErrLabelMissing)
}

func TestOrderLogits_PassesRawValues(t *testing.T) {
	got, err := orderLogits([]float32{-1.75, -1, 3.25}, [3]int{2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3.25, -1.75, -1}, got)

	_, err = orderLogits([]float32{1, 2}, [3]int{2, 0, 1})
	assert.Error(t, err)
}

func TestScorer_NotLoaded(t *testing.T) {
	s := NewScorer(Config{})
	assert.False(t, s.Ready())
	assert.Equal(t, DefaultHFRepo, s.Name())

	_, err := s.Score(context.Background(), "text")
	assert.ErrorIs(t, err, ErrNotLoaded)
	assert.NoError(t, s.Close())
}

func TestScorer_ScoreReturnsRawLogits(t *testing.T) {
	fr := &fakeRunner{logits: []float32{-1.75, -1, 3.25}}
	s := NewScorer(Config{HFRepo: "local/finbert", ModelPath: t.TempDir()})
	s.build = func(string) (*model, error) {
		return &model{runner: fr, order: [3]int{2, 0, 1}}, nil
	}

	require.NoError(t, s.Load(context.Background()))
	require.True(t, s.Ready())

	got, err := s.Score(context.Background(), "Bank faces default")
	require.NoError(t, err)
	// 不做 softmax 或 log 变换，只按标签重排
	assert.Equal(t, []float64{3.25, -1.75, -1}, got)
	assert.Equal(t, [][]string{{"Bank faces default"}}, fr.inputs)

	fr.err = errors.New("boom")
	_, err = s.Score(context.Background(), "x")
	assert.ErrorContains(t, err, "inference failed")

	require.NoError(t, s.Close())
	assert.False(t, s.Ready())
	assert.ErrorIs(t, s.Load(context.Background()), ErrClosed)
}

func TestScorer_CanceledContext(t *testing.T) {
	s := NewScorer(Config{})
	s.current.Store(&model{runner: &fakeRunner{}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Score(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScorer_NotBlockedWhileDownloading(t *testing.T) {
	started, release := make(chan struct{}), make(chan struct{})
	defer close(release)

	s := NewScorer(Config{ModelPath: filepath.Join(t.TempDir(), "finbert")})
	s.download = func(repo, dest string, opts hugot.DownloadOptions) (string, error) {
		close(started)
		<-release
		return "", errors.New("offline")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	loadErr := make(chan error, 1)
	go func() { loadErr <- s.Load(ctx) }()
	<-started

	checked := make(chan error, 1)
	go func() {
		if s.Ready() {
			checked <- errors.New("ready during download")
			return
		}
		_, err := s.Score(context.Background(), "x")
		checked <- err
	}()
	select {
	case err := <-checked:
		assert.ErrorIs(t, err, ErrNotLoaded)
	case <-time.After(time.Second):
		t.Fatal("Ready/Score blocked while the model is downloading")
	}

	cancel()
	select {
	case err := <-loadErr:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Load did not return after cancel")
	}
	assert.False(t, s.Ready())
	assert.NoError(t, s.Close())
}
