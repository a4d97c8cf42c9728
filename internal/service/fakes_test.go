package service

import (
	"context"
	"sort"
	"strings"

	"github.com/uptrace/bun"

	"github.com/faithwalk/anonboard/internal/model"
	"github.com/faithwalk/anonboard/internal/pkg/errors"
	"github.com/faithwalk/anonboard/internal/repository"
)

// fakeTransactor 直接执行事务函数，供业务逻辑测试使用
type fakeTransactor struct{}

func (fakeTransactor) RunInTransaction(ctx context.Context, fn repository.TxFunc) error {
	return fn(ctx, bun.Tx{})
}

// fakePostRepo 内存版 PostRepository
type fakePostRepo struct {
	posts     map[int]*model.Post
	nextID    int
	createErr error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[int]*model.Post{}, nextID: 1}
}

func (f *fakePostRepo) DB() *bun.DB { return nil }

func (f *fakePostRepo) Create(_ context.Context, post *model.Post) error {
	if f.createErr != nil {
		return f.createErr
	}
	post.ID = f.nextID
	f.nextID++
	copied := *post
	f.posts[post.ID] = &copied
	return nil
}

func (f *fakePostRepo) GetByID(_ context.Context, id int) (*model.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, errors.NewNotFoundError("Post")
	}
	copied := *post
	return &copied, nil
}

func (f *fakePostRepo) ListByStatus(_ context.Context, status model.ApprovalStatus, p *repository.Pagination) ([]*model.Post, int, error) {
	return f.listWhere(func(post *model.Post) bool { return post.ApprovalStatus == status })
}

func (f *fakePostRepo) ListApproved(_ context.Context, p *repository.Pagination) ([]*model.Post, int, error) {
	return f.listWhere(func(post *model.Post) bool { return post.IsApproved() })
}

func (f *fakePostRepo) listWhere(keep func(*model.Post) bool) ([]*model.Post, int, error) {
	var result []*model.Post
	for _, post := range f.posts {
		if keep(post) {
			copied := *post
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, len(result), nil
}

func (f *fakePostRepo) UpdateStatusTx(_ context.Context, _ bun.Tx, id int, status model.ApprovalStatus) error {
	post, ok := f.posts[id]
	if !ok {
		return errors.NewNotFoundError("Post")
	}
	post.ApprovalStatus = status
	return nil
}

func (f *fakePostRepo) DeleteTx(_ context.Context, _ bun.Tx, id int) error {
	if _, ok := f.posts[id]; !ok {
		return errors.NewNotFoundError("Post")
	}
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) StatusCounts(_ context.Context) (map[model.ApprovalStatus]int, int, error) {
	counts := map[model.ApprovalStatus]int{}
	for _, post := range f.posts {
		counts[post.ApprovalStatus]++
	}
	return counts, len(f.posts), nil
}

// fakeFilterRepo 内存版 WordFilterRepository
type fakeFilterRepo struct {
	filters []model.WordFilter
	nextID  int
}

func newFakeFilterRepo(filters ...model.WordFilter) *fakeFilterRepo {
	repo := &fakeFilterRepo{nextID: 1}
	for _, f := range filters {
		f.ID = repo.nextID
		repo.nextID++
		repo.filters = append(repo.filters, f)
	}
	return repo
}

func (f *fakeFilterRepo) DB() *bun.DB { return nil }

func (f *fakeFilterRepo) List(_ context.Context) ([]model.WordFilter, error) {
	result := make([]model.WordFilter, len(f.filters))
	copy(result, f.filters)
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Severity.Rank() != result[j].Severity.Rank() {
			return result[i].Severity.Rank() > result[j].Severity.Rank()
		}
		return result[i].Word < result[j].Word
	})
	return result, nil
}

func (f *fakeFilterRepo) Create(_ context.Context, filter *model.WordFilter) error {
	for _, existing := range f.filters {
		if strings.EqualFold(existing.Word, filter.Word) {
			return errors.NewConflictError(
				"This word already exists in the filter list",
				errors.CodeDuplicateWord,
			)
		}
	}
	filter.ID = f.nextID
	f.nextID++
	f.filters = append(f.filters, *filter)
	return nil
}

func (f *fakeFilterRepo) Delete(_ context.Context, id int) error {
	for i, existing := range f.filters {
		if existing.ID == id {
			f.filters = append(f.filters[:i], f.filters[i+1:]...)
			return nil
		}
	}
	return errors.NewNotFoundError("Filter")
}

// fakeLogRepo 内存版 ModerationLogRepository
type fakeLogRepo struct {
	entries []model.ModerationLog
}

func (f *fakeLogRepo) DB() *bun.DB { return nil }

func (f *fakeLogRepo) InsertTx(_ context.Context, _ bun.Tx, entry *model.ModerationLog) error {
	entry.ID = len(f.entries) + 1
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeLogRepo) ListRecent(_ context.Context, n int) ([]model.ModerationLog, error) {
	if n < 1 {
		n = 10
	}
	result := make([]model.ModerationLog, len(f.entries))
	copy(result, f.entries)
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	if len(result) > n {
		result = result[:n]
	}
	return result, nil
}

// fakeAdminRepo 内存版 AdminUserRepository
type fakeAdminRepo struct {
	users map[string]*model.AdminUser
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{users: map[string]*model.AdminUser{}}
}

func (f *fakeAdminRepo) DB() *bun.DB { return nil }

func (f *fakeAdminRepo) GetByUsername(_ context.Context, username string) (*model.AdminUser, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, errors.NewNotFoundError("Admin user")
	}
	copied := *user
	return &copied, nil
}

func (f *fakeAdminRepo) Create(_ context.Context, user *model.AdminUser) error {
	user.ID = len(f.users) + 1
	copied := *user
	f.users[user.Username] = &copied
	return nil
}

func (f *fakeAdminRepo) Count(_ context.Context) (int, error) {
	return len(f.users), nil
}

func (f *fakeAdminRepo) UpdatePassword(_ context.Context, username, passwordHash string) error {
	user, ok := f.users[username]
	if !ok {
		return errors.NewNotFoundError("Admin user")
	}
	user.PasswordHash = passwordHash
	return nil
}

// fakeNotifier 记录收到的通知事件；通知在 goroutine 中发送，用通道同步
type fakeNotifier struct {
	events chan string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{events: make(chan string, 4)}
}

func (f *fakeNotifier) Enabled() bool { return true }

func (f *fakeNotifier) NotifyPost(_ context.Context, event string, _ *model.Post) {
	f.events <- event
}
