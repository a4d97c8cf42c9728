package model

// ApprovalStatus 帖子审核状态
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"  // 待审核
	ApprovalStatusApproved ApprovalStatus = "approved" // 已通过
	ApprovalStatusRejected ApprovalStatus = "rejected" // 已拒绝
)

// IsValid 检查审核状态是否合法
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		return true
	}
	return false
}

// Severity 过滤词严重级别
type Severity string

const (
	SeverityLow    Severity = "low"    // 低：仅标记
	SeverityMedium Severity = "medium" // 中：标记并交人工优先审核
	SeverityHigh   Severity = "high"   // 高：提交时自动拒绝
)

// Rank 返回严重级别的排序权重，low(1) < medium(2) < high(3)
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	}
	return 0
}

// IsValid 检查严重级别是否合法
func (s Severity) IsValid() bool {
	return s.Rank() > 0
}

// MaxSeverity 返回两个级别中较高的一个
func MaxSeverity(a, b Severity) Severity {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// ModerationAction 管理员审核动作
type ModerationAction string

const (
	ModerationActionApprove ModerationAction = "approve"
	ModerationActionReject  ModerationAction = "reject"
	ModerationActionDelete  ModerationAction = "delete"
)

// StatusAfter 返回动作执行后的帖子状态（delete 不产生状态，返回空值）
func (a ModerationAction) StatusAfter() ApprovalStatus {
	switch a {
	case ModerationActionApprove:
		return ApprovalStatusApproved
	case ModerationActionReject:
		return ApprovalStatusRejected
	}
	return ""
}
