package moderation

import (
	"strings"

	"github.com/faithwalk/anonboard/internal/model"
)

// Decision 创建时审核裁决：帖子落库前由状态机一次性给出
type Decision struct {
	// Status 帖子的初始审核状态
	Status model.ApprovalStatus

	// FlaggedWords 命中词列表（逗号连接）；仅命中时非 nil
	FlaggedWords *string

	// AutoRejected 因高严重级别命中被自动拒绝。
	// 被拒帖子仍会落库（供台账与审计），但提交方只收到笼统的
	// 违规提示，不会得知触发词
	AutoRejected bool
}

// Decide 根据匹配结果给出帖子的初始状态。
// 规则：最高级别为 high 立即拒绝；有低/中级别命中则保持 pending
// 并记录命中词，交人工优先审核；干净内容保持 pending、命中词为空
func Decide(result MatchResult) Decision {
	decision := Decision{Status: model.ApprovalStatusPending}

	if len(result.FlaggedWords) > 0 {
		joined := strings.Join(result.FlaggedWords, ", ")
		decision.FlaggedWords = &joined
	}

	if result.HighestSeverity != nil && *result.HighestSeverity == model.SeverityHigh {
		decision.Status = model.ApprovalStatusRejected
		decision.AutoRejected = true
	}

	return decision
}
