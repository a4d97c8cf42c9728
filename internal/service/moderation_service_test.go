package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/faithwalk/anonboard/internal/model"
	"github.com/faithwalk/anonboard/internal/pkg/errors"
)

func newModerationFixture(t *testing.T) (*ModerationService, *fakePostRepo, *fakeLogRepo) {
	t.Helper()
	posts := newFakePostRepo()
	logs := &fakeLogRepo{}
	return NewModerationService(fakeTransactor{}, posts, logs), posts, logs
}

func TestModerateApprove(t *testing.T) {
	svc, posts, logs := newModerationFixture(t)
	ctx := context.Background()

	require.NoError(t, posts.Create(ctx, &model.Post{Content: "hi", ApprovalStatus: model.ApprovalStatusPending}))

	post, err := svc.Moderate(ctx, 1, model.ModerationActionApprove, nil, "alice")
	require.NoError(t, err)
	assert.Equal(t, model.ApprovalStatusApproved, post.ApprovalStatus)

	// 每次审核操作都在台账中留痕
	require.Len(t, logs.entries, 1)
	entry := logs.entries[0]
	assert.Equal(t, 1, entry.PostID)
	assert.Equal(t, model.ModerationActionApprove, entry.Action)
	assert.Equal(t, "alice", entry.AdminUsername)
	assert.Nil(t, entry.Reason)
}

func TestModerateRejectWithReason(t *testing.T) {
	svc, posts, logs := newModerationFixture(t)
	ctx := context.Background()

	require.NoError(t, posts.Create(ctx, &model.Post{Content: "hi", ApprovalStatus: model.ApprovalStatusPending}))

	reason := "off topic"
	post, err := svc.Moderate(ctx, 1, model.ModerationActionReject, &reason, "alice")
	require.NoError(t, err)
	assert.Equal(t, model.ApprovalStatusRejected, post.ApprovalStatus)

	require.Len(t, logs.entries, 1)
	require.NotNil(t, logs.entries[0].Reason)
	assert.Equal(t, "off topic", *logs.entries[0].Reason)
}

func TestRemoderationAllowed(t *testing.T) {
	svc, posts, logs := newModerationFixture(t)
	ctx := context.Background()

	require.NoError(t, posts.Create(ctx, &model.Post{Content: "hi", ApprovalStatus: model.ApprovalStatusPending}))

	_, err := svc.Moderate(ctx, 1, model.ModerationActionApprove, nil, "alice")
	require.NoError(t, err)

	// 已通过的帖子允许改判，改判同样留痕
	post, err := svc.Moderate(ctx, 1, model.ModerationActionReject, nil, "bob")
	require.NoError(t, err)
	assert.Equal(t, model.ApprovalStatusRejected, post.ApprovalStatus)
	assert.Len(t, logs.entries, 2)
}

func TestModerateInvalidAction(t *testing.T) {
	svc, posts, logs := newModerationFixture(t)
	ctx := context.Background()

	require.NoError(t, posts.Create(ctx, &model.Post{Content: "hi"}))

	for _, action := range []model.ModerationAction{model.ModerationActionDelete, "publish", ""} {
		_, err := svc.Moderate(ctx, 1, action, nil, "alice")
		assert.True(t, errors.IsCode(err, errors.CodeInvalidAction), "action=%q", action)
	}
	assert.Empty(t, logs.entries)
}

func TestModerateMissingPost(t *testing.T) {
	svc, _, logs := newModerationFixture(t)

	_, err := svc.Moderate(context.Background(), 42, model.ModerationActionApprove, nil, "alice")
	assert.True(t, errors.Is(err, errors.ErrorTypeNotFound))
	assert.Empty(t, logs.entries)
}

func TestDeletePost(t *testing.T) {
	svc, posts, logs := newModerationFixture(t)
	ctx := context.Background()

	require.NoError(t, posts.Create(ctx, &model.Post{Content: "hi"}))

	reason := "spam"
	require.NoError(t, svc.Delete(ctx, 1, &reason, "alice"))

	_, err := posts.GetByID(ctx, 1)
	assert.True(t, errors.Is(err, errors.ErrorTypeNotFound))

	// 台账不随帖子删除而消失
	require.Len(t, logs.entries, 1)
	assert.Equal(t, model.ModerationActionDelete, logs.entries[0].Action)
	assert.Equal(t, 1, logs.entries[0].PostID)
}

func TestDeleteMissingPost(t *testing.T) {
	svc, _, logs := newModerationFixture(t)

	err := svc.Delete(context.Background(), 42, nil, "alice")
	assert.True(t, errors.Is(err, errors.ErrorTypeNotFound))

	// 删除失败时不能留下孤立台账记录
	assert.Empty(t, logs.entries)
}

func TestListPostsInvalidStatus(t *testing.T) {
	svc, _, _ := newModerationFixture(t)

	_, _, err := svc.ListPosts(context.Background(), "published", 50, 0)
	assert.True(t, errors.IsCode(err, errors.CodeInvalidStatus))
}

func TestStats(t *testing.T) {
	svc, posts, logs := newModerationFixture(t)
	ctx := context.Background()

	require.NoError(t, posts.Create(ctx, &model.Post{ApprovalStatus: model.ApprovalStatusPending}))
	require.NoError(t, posts.Create(ctx, &model.Post{ApprovalStatus: model.ApprovalStatusApproved}))
	require.NoError(t, posts.Create(ctx, &model.Post{ApprovalStatus: model.ApprovalStatusApproved}))
	require.NoError(t, posts.Create(ctx, &model.Post{ApprovalStatus: model.ApprovalStatusRejected}))

	require.NoError(t, logs.InsertTx(ctx, bun.Tx{}, &model.ModerationLog{PostID: 2, Action: model.ModerationActionApprove, AdminUsername: "alice"}))

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 2, stats.Approved)
	assert.Equal(t, 1, stats.Rejected)
	assert.Equal(t, 4, stats.Total)
	require.Len(t, stats.RecentActions, 1)
	assert.Equal(t, "alice", stats.RecentActions[0].AdminUsername)
}
