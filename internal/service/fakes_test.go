package service

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/maheshrc27/creatorflow/internal/models"
)

type fakeUsers struct {
	mu    sync.Mutex
	users map[int64]*models.User
	next  int64
}

func newFakeUsers(users ...*models.User) *fakeUsers {
	f := &fakeUsers{users: map[int64]*models.User{}}
	for _, u := range users {
		f.next++
		u.ID = f.next
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUsers) find(match func(*models.User) bool) (*models.User, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if match(u) {
			c := *u
			return &c, true, nil
		}
	}
	return nil, false, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*models.User, bool, error) {
	return f.find(func(u *models.User) bool { return u.ID == id })
}

func (f *fakeUsers) GetByGoogleID(_ context.Context, googleID string) (*models.User, bool, error) {
	return f.find(func(u *models.User) bool { return u.GoogleID != "" && u.GoogleID == googleID })
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, bool, error) {
	return f.find(func(u *models.User) bool { return u.Email == email })
}

func (f *fakeUsers) Create(_ context.Context, _ *sql.Tx, user *models.User) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	c := *user
	c.ID = f.next
	f.users[c.ID] = &c
	return c.ID, nil
}

func (f *fakeUsers) Update(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := *user
	f.users[user.ID] = &c
	return nil
}

type fakeProfiles struct {
	profiles map[int64]*models.BrandProfile
	err      error
}

func newFakeProfiles(ps ...*models.BrandProfile) *fakeProfiles {
	f := &fakeProfiles{profiles: map[int64]*models.BrandProfile{}}
	for _, p := range ps {
		f.profiles[p.UserID] = p
	}
	return f
}

func (f *fakeProfiles) GetByUserID(_ context.Context, userID int64) (*models.BrandProfile, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	p, ok := f.profiles[userID]
	return p, ok, nil
}

func (f *fakeProfiles) Upsert(_ context.Context, p *models.BrandProfile) (*models.BrandProfile, error) {
	c := *p
	c.ID = p.UserID
	c.UpdatedAt = time.Now()
	f.profiles[p.UserID] = &c
	return &c, nil
}

type fakeContent struct {
	mu    sync.Mutex
	items map[int64]*models.ContentItem
	next  int64
}

func newFakeContent() *fakeContent {
	return &fakeContent{items: map[int64]*models.ContentItem{}}
}

func (f *fakeContent) ReplaceForUser(_ context.Context, userID int64, items []*models.ContentItem) ([]*models.ContentItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, it := range f.items {
		if it.UserID == userID {
			delete(f.items, id)
		}
	}
	out := make([]*models.ContentItem, 0, len(items))
	for _, it := range items {
		f.next++
		c := *it
		c.ID = f.next
		f.items[c.ID] = &c
		cc := c
		out = append(out, &cc)
	}
	return out, nil
}

func (f *fakeContent) ListByUserID(_ context.Context, userID int64, limit int) ([]*models.ContentItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.ContentItem
	for _, it := range f.items {
		if it.UserID == userID {
			c := *it
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeContent) GetByIDForUser(_ context.Context, id, userID int64) (*models.ContentItem, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.items[id]
	if !ok || it.UserID != userID {
		return nil, false, nil
	}
	c := *it
	return &c, true, nil
}

func (f *fakeContent) Update(_ context.Context, item *models.ContentItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[item.ID]; !ok {
		return sql.ErrNoRows
	}
	c := *item
	f.items[item.ID] = &c
	return nil
}

type fakeAccounts struct {
	mu       sync.Mutex
	accounts map[int64]*models.SocialAccount
	next     int64
}

func newFakeAccounts(as ...*models.SocialAccount) *fakeAccounts {
	f := &fakeAccounts{accounts: map[int64]*models.SocialAccount{}}
	for _, a := range as {
		f.next++
		a.ID = f.next
		f.accounts[a.ID] = a
	}
	return f
}

func (f *fakeAccounts) Upsert(_ context.Context, sa *models.SocialAccount) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.UserID == sa.UserID && a.Platform == sa.Platform {
			id, refresh := a.ID, a.RefreshToken
			*a = *sa
			a.ID = id
			if sa.RefreshToken == "" {
				a.RefreshToken = refresh
			}
			a.IsActive = true
			return a.ID, nil
		}
	}
	f.next++
	c := *sa
	c.ID = f.next
	c.IsActive = true
	f.accounts[c.ID] = &c
	return c.ID, nil
}

func (f *fakeAccounts) GetByID(_ context.Context, id int64) (*models.SocialAccount, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[id]
	if !ok {
		return nil, false, nil
	}
	c := *a
	return &c, true, nil
}

func (f *fakeAccounts) GetByIDForUser(ctx context.Context, id, userID int64) (*models.SocialAccount, bool, error) {
	a, ok, err := f.GetByID(ctx, id)
	if err != nil || !ok || a.UserID != userID {
		return nil, false, err
	}
	return a, true, nil
}

func (f *fakeAccounts) ListActiveByUserID(_ context.Context, userID int64) ([]*models.SocialAccount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.SocialAccount
	for _, a := range f.accounts {
		if a.UserID == userID && a.IsActive {
			c := *a
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAccounts) ListExpiring(_ context.Context, platform string, before time.Time) ([]*models.SocialAccount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.SocialAccount
	for _, a := range f.accounts {
		if a.Platform == platform && a.IsActive && a.RefreshToken != "" && a.TokenExpiresAt.Before(before) {
			c := *a
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeAccounts) SetToken(_ context.Context, id int64, oldAccessToken string, sa *models.SocialAccount) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[id]
	if !ok || a.AccessToken != oldAccessToken {
		return errors.New("no rows affected; account may have been refreshed already")
	}
	if sa.AccessToken != "" {
		a.AccessToken = sa.AccessToken
	}
	if sa.RefreshToken != "" {
		a.RefreshToken = sa.RefreshToken
	}
	if !sa.TokenExpiresAt.IsZero() {
		a.TokenExpiresAt = sa.TokenExpiresAt
	}
	return nil
}

func (f *fakeAccounts) Deactivate(_ context.Context, id, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.accounts[id]; ok && a.UserID == userID {
		a.IsActive = false
	}
	return nil
}

type fakePutter struct {
	inputs []*s3.PutObjectInput
	err    error
}

func (f *fakePutter) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.inputs = append(f.inputs, params)
	return &s3.PutObjectOutput{}, f.err
}
