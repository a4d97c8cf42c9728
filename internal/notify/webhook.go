// Package notify 提供审核事件的出站通知
package notify

import (
	"context"
	"time"

	"github.com/faithwalk/anonboard/internal/model"
	"github.com/faithwalk/anonboard/internal/pkg/httpclient"
	"github.com/faithwalk/anonboard/internal/pkg/logger"
)

// 通知事件类型
const (
	EventPostAutoRejected = "post.auto_rejected"
	EventPostFlagged      = "post.flagged"
)

// Event 通知载荷
type Event struct {
	Event        string    `json:"event"`
	PostID       int       `json:"post_id"`
	Status       string    `json:"status"`
	FlaggedWords *string   `json:"flagged_words,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// WebhookNotifier 审核事件 Webhook 通知器。
// 尽力而为：发送失败只记日志，永不影响提交主流程
type WebhookNotifier struct {
	client *httpclient.Client
	url    string
}

// NewWebhookNotifier 创建 Webhook 通知器；url 为空时通知被禁用
func NewWebhookNotifier(url string, timeout time.Duration) *WebhookNotifier {
	cfg := httpclient.DefaultConfig()
	if timeout > 0 {
		cfg.Timeout = timeout
	}

	return &WebhookNotifier{
		client: httpclient.New(cfg),
		url:    url,
	}
}

// Enabled 通知是否已配置
func (n *WebhookNotifier) Enabled() bool {
	return n.url != ""
}

// NotifyPost 发送帖子审核事件
func (n *WebhookNotifier) NotifyPost(ctx context.Context, event string, post *model.Post) {
	if !n.Enabled() {
		return
	}

	payload := Event{
		Event:        event,
		PostID:       post.ID,
		Status:       string(post.ApprovalStatus),
		FlaggedWords: post.FlaggedWords,
		OccurredAt:   time.Now(),
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(n.url)

	if err != nil {
		logger.Warn().
			Err(err).
			Str("event", event).
			Int("post_id", post.ID).
			Msg("审核事件通知发送失败")
		return
	}

	if resp.IsError() {
		logger.Warn().
			Int("status_code", resp.StatusCode()).
			Str("event", event).
			Int("post_id", post.ID).
			Msg("审核事件通知被拒绝")
	}
}
