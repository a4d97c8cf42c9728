package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faithwalk/anonboard/internal/model"
)

func sev(s model.Severity) *model.Severity { return &s }

func TestDecideCleanContent(t *testing.T) {
	decision := Decide(MatchResult{IsClean: true, FlaggedWords: []string{}})

	assert.Equal(t, model.ApprovalStatusPending, decision.Status)
	assert.Nil(t, decision.FlaggedWords)
	assert.False(t, decision.AutoRejected)
}

func TestDecideLowSeverityFlagsForReview(t *testing.T) {
	decision := Decide(MatchResult{
		FlaggedWords:    []string{"mad"},
		HighestSeverity: sev(model.SeverityLow),
	})

	// 低/中级别命中不拦截，仅标记交人工审核
	assert.Equal(t, model.ApprovalStatusPending, decision.Status)
	require.NotNil(t, decision.FlaggedWords)
	assert.Equal(t, "mad", *decision.FlaggedWords)
	assert.False(t, decision.AutoRejected)
}

func TestDecideMediumSeverityFlagsForReview(t *testing.T) {
	decision := Decide(MatchResult{
		FlaggedWords:    []string{"death", "mad"},
		HighestSeverity: sev(model.SeverityMedium),
	})

	assert.Equal(t, model.ApprovalStatusPending, decision.Status)
	require.NotNil(t, decision.FlaggedWords)
	assert.Equal(t, "death, mad", *decision.FlaggedWords)
	assert.False(t, decision.AutoRejected)
}

func TestDecideHighSeverityAutoRejects(t *testing.T) {
	decision := Decide(MatchResult{
		FlaggedWords:    []string{"hate", "mad"},
		HighestSeverity: sev(model.SeverityHigh),
	})

	assert.Equal(t, model.ApprovalStatusRejected, decision.Status)
	require.NotNil(t, decision.FlaggedWords)
	assert.Equal(t, "hate, mad", *decision.FlaggedWords)
	assert.True(t, decision.AutoRejected)
}
