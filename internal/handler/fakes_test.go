package handler_test

// In-memory fakes implementing the handler store interfaces. They mirror
// the SQL layer's observable behavior: sentinel errors, alphabetical
// member listing, and the leaderboard's score-desc / id-asc order.

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/synapsehq/leaderboard-api/internal/model"
	"github.com/synapsehq/leaderboard-api/internal/repository"
	"github.com/synapsehq/leaderboard-api/internal/utils"
)

type fakeStore struct {
	mu      sync.Mutex
	admins  map[string]model.AdminUser
	members map[uint64]model.Member
	nextID  uint64
	weekly  map[uint64]map[string]model.WeeklyStat
	monthly map[uint64]map[string]model.MonthlyStat
	audits  []model.AuditEntry
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		admins:  make(map[string]model.AdminUser),
		members: make(map[uint64]model.Member),
		weekly:  make(map[uint64]map[string]model.WeeklyStat),
		monthly: make(map[uint64]map[string]model.MonthlyStat),
	}
}

func (f *fakeStore) GetByUsername(_ context.Context, username string) (model.AdminUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.admins[username]
	if !ok {
		return model.AdminUser{}, sql.ErrNoRows
	}
	return u, nil
}

func (f *fakeStore) List(_ context.Context) ([]model.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	members := []model.Member{}
	for _, m := range f.members {
		members = append(members, m)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })
	return members, nil
}

func (f *fakeStore) Create(_ context.Context, name, avatar string) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.members {
		if m.Name == name {
			return 0, repository.ErrMemberExists
		}
	}
	f.nextID++
	f.members[f.nextID] = model.Member{ID: f.nextID, Name: name, Avatar: avatar}
	return f.nextID, nil
}

func (f *fakeStore) DeleteWithStats(_ context.Context, id uint64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.members[id]
	if !ok {
		return "", repository.ErrMemberNotFound
	}
	delete(f.weekly, id)
	delete(f.monthly, id)
	delete(f.members, id)
	return m.Name, nil
}

func (f *fakeStore) UpsertWeekly(_ context.Context, s model.WeeklyStat) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.members[s.MemberID]
	if !ok {
		return "", repository.ErrMemberNotFound
	}
	if f.weekly[s.MemberID] == nil {
		f.weekly[s.MemberID] = make(map[string]model.WeeklyStat)
	}
	f.weekly[s.MemberID][s.WeekStart] = s
	return m.Name, nil
}

func (f *fakeStore) UpsertMonthly(_ context.Context, s model.MonthlyStat) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.members[s.MemberID]
	if !ok {
		return "", repository.ErrMemberNotFound
	}
	if f.monthly[s.MemberID] == nil {
		f.monthly[s.MemberID] = make(map[string]model.MonthlyStat)
	}
	f.monthly[s.MemberID][s.MonthYear] = s
	return m.Name, nil
}

func (f *fakeStore) DeleteWeekly(_ context.Context, memberID uint64, weekStart string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.weekly[memberID][weekStart]; !ok {
		return repository.ErrEntryNotFound
	}
	delete(f.weekly[memberID], weekStart)
	return nil
}

func (f *fakeStore) DeleteMonthly(_ context.Context, memberID uint64, monthYear string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.monthly[memberID][monthYear]; !ok {
		return repository.ErrEntryNotFound
	}
	delete(f.monthly[memberID], monthYear)
	return nil
}

func (f *fakeStore) WeeklyLeaderboard(_ context.Context, weekStart string) ([]model.LeaderboardEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries := []model.LeaderboardEntry{}
	for id, m := range f.members {
		e := model.LeaderboardEntry{ID: id, Name: m.Name, Avatar: m.Avatar}
		if s, ok := f.weekly[id][weekStart]; ok {
			e.SessionsAttended = s.SessionsAttended
			e.AssessmentsSubmitted = s.AssessmentsSubmitted
			e.BonusPoints = s.BonusPoints
		}
		entries = append(entries, e)
	}
	sortEntries(entries)
	return entries, nil
}

func (f *fakeStore) MonthlyLeaderboard(_ context.Context, monthYear string) ([]model.LeaderboardEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries := []model.LeaderboardEntry{}
	for id, m := range f.members {
		e := model.LeaderboardEntry{ID: id, Name: m.Name, Avatar: m.Avatar}
		if s, ok := f.monthly[id][monthYear]; ok {
			e.SessionsAttended = s.SessionsAttended
			e.AssessmentsSubmitted = s.AssessmentsSubmitted
			e.BonusPoints = s.BonusPoints
		}
		entries = append(entries, e)
	}
	sortEntries(entries)
	return entries, nil
}

// sortEntries applies the SQL ordering: score descending, id ascending.
func sortEntries(entries []model.LeaderboardEntry) {
	sort.Slice(entries, func(i, j int) bool {
		si := utils.Score(entries[i].SessionsAttended, entries[i].AssessmentsSubmitted, entries[i].BonusPoints)
		sj := utils.Score(entries[j].SessionsAttended, entries[j].AssessmentsSubmitted, entries[j].BonusPoints)
		if si != sj {
			return si > sj
		}
		return entries[i].ID < entries[j].ID
	})
}

func (f *fakeStore) Record(_ context.Context, actor, action, details string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.audits = append(f.audits, model.AuditEntry{
		ID:            uint64(len(f.audits) + 1),
		AdminUsername: actor,
		Action:        action,
		Details:       details,
		Timestamp:     time.Now(),
	})
	return nil
}

func (f *fakeStore) Recent(_ context.Context, limit int) ([]model.AuditEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries := []model.AuditEntry{}
	for i := len(f.audits) - 1; i >= 0 && len(entries) < limit; i-- {
		entries = append(entries, f.audits[i])
	}
	return entries, nil
}

// actions returns the recorded audit tags in order, for assertions.
func (f *fakeStore) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	tags := make([]string, 0, len(f.audits))
	for _, e := range f.audits {
		tags = append(tags, e.Action)
	}
	return tags
}

func (f *fakeStore) memberCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.members)
}
