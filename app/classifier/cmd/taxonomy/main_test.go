package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/fin_radar/app/classifier/pkg/taxonomy"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMapCmd(t *testing.T) {
	t.Run("worked example", func(t *testing.T) {
		out, err := run(t, "map", "--logits", "2,-1,0.5")
		require.NoError(t, err)

		var res taxonomy.Result
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, taxonomy.DirectionBullish, res.Classification.MarketDirection)
		assert.Equal(t, taxonomy.CompanyAction, res.Classification.EventType)
		assert.Equal(t, taxonomy.ImpactHigh, res.Classification.ImpactStrength)
		assert.Equal(t, taxonomy.NoRisk, res.Classification.RiskSignal)
		assert.Len(t, res.TopK, taxonomy.DefaultTopK)
	})

	t.Run("top-k flag", func(t *testing.T) {
		out, err := run(t, "map", "--logits=-2,-0.5,-1", "-k", "2")
		require.NoError(t, err)

		var res taxonomy.Result
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, taxonomy.DirectionBearish, res.Classification.MarketDirection)
		assert.Len(t, res.TopK, 2)
	})

	t.Run("shape error", func(t *testing.T) {
		_, err := run(t, "map", "--logits", "1,2")
		assert.ErrorIs(t, err, taxonomy.ErrShape)
	})

	t.Run("invalid temperature", func(t *testing.T) {
		_, err := run(t, "map", "--logits", "1,2,3", "--temperature", "0")
		assert.ErrorIs(t, err, taxonomy.ErrInvalidParameter)
	})

	t.Run("logits required", func(t *testing.T) {
		_, err := run(t, "map")
		assert.Error(t, err)
	})
}

func TestClassifyCmd_Errors(t *testing.T) {
	_, err := run(t, "classify")
	assert.Error(t, err)

	_, err = run(t, "classify", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "text")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
