package waitlist

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asharptechsolutions/stylist-scheduler/internal/domain"
	waitlistRepo "github.com/asharptechsolutions/stylist-scheduler/internal/infra/storage/waitlist"
	"github.com/asharptechsolutions/stylist-scheduler/internal/service/waitlist/models"
	"github.com/asharptechsolutions/stylist-scheduler/pkg/ptr"
)

var testNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeRepo struct {
	entries map[string]domain.WaitlistEntry
	updates int
}

func newFakeRepo(entries ...domain.WaitlistEntry) *fakeRepo {
	r := &fakeRepo{entries: make(map[string]domain.WaitlistEntry)}
	for _, e := range entries {
		r.entries[e.ID] = e
	}
	return r
}

func (r *fakeRepo) Create(_ context.Context, entry *domain.WaitlistEntry) error {
	r.entries[entry.ID] = *entry
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*domain.WaitlistEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, waitlistRepo.ErrEntryNotFound
	}
	return &e, nil
}

func (r *fakeRepo) GetByShop(_ context.Context, shopID string, status *domain.WaitlistStatus) ([]domain.WaitlistEntry, error) {
	out := make([]domain.WaitlistEntry, 0)
	for _, e := range r.entries {
		if e.ShopID != shopID {
			continue
		}
		if status != nil && e.Status != *status {
			continue
		}
		out = append(out, e)
	}
	// порядок намеренно не по created_at
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, entries []domain.WaitlistEntry) error {
	for _, e := range entries {
		r.entries[e.ID] = e
		r.updates++
	}
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMetrics struct{ observed []int }

func (m *fakeMetrics) ObserveWaitlistMatches(count int) {
	m.observed = append(m.observed, count)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeRepo, m *fakeMetrics) *Service {
	return NewService(repo, fakeTxManager{}, m, nopLogger{}).WithTimeProvider(fixedClock{now: testNow})
}

func entry(id string, status domain.WaitlistStatus, createdMinutesAgo int) domain.WaitlistEntry {
	return domain.WaitlistEntry{
		ID:         id,
		ShopID:     "shop-1",
		ClientName: "client " + id,
		Status:     status,
		CreatedAt:  testNow.Add(-time.Duration(createdMinutesAgo) * time.Minute),
	}
}

func TestJoin(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeMetrics{})

	resp, err := svc.Join(context.Background(), "shop-1", &models.JoinRequest{
		ClientName:         "Bob",
		ServiceID:          ptr.Ptr("haircut"),
		StaffID:            ptr.Ptr("any"),
		PreferredDays:      []string{"Monday", "monday", " friday "},
		PreferredTimeRange: &models.TimeRangeRequest{Start: "09:00", End: "12:30"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, string(domain.WaitlistStatusWaiting), resp.Status)
	assert.Equal(t, testNow, resp.CreatedAt)
	assert.Equal(t, []string{"monday", "friday"}, resp.PreferredDays)
	require.NotNil(t, resp.StaffID)
	assert.Equal(t, "any", *resp.StaffID)
	assert.Equal(t, &models.TimeRangeResponse{Start: "09:00", End: "12:30"}, resp.PreferredTimeRange)

	stored := repo.entries[resp.ID]
	assert.Equal(t, domain.StaffPreferenceAny, stored.Staff.Kind)
}

func TestJoin_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.JoinRequest
	}{
		{name: "empty name", req: models.JoinRequest{}},
		{name: "bad date", req: models.JoinRequest{ClientName: "A", PreferredDate: ptr.Ptr("01.05.2024")}},
		{name: "bad weekday", req: models.JoinRequest{ClientName: "A", PreferredDays: []string{"funday"}}},
		{name: "bad range start", req: models.JoinRequest{ClientName: "A", PreferredTimeRange: &models.TimeRangeRequest{Start: "9", End: "10:00"}}},
		{name: "inverted range", req: models.JoinRequest{ClientName: "A", PreferredTimeRange: &models.TimeRangeRequest{Start: "12:00", End: "09:00"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := newTestService(repo, &fakeMetrics{})

			_, err := svc.Join(context.Background(), "shop-1", &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, repo.entries)
		})
	}
}

func TestList_FilterByStatus(t *testing.T) {
	repo := newFakeRepo(
		entry("a", domain.WaitlistStatusWaiting, 10),
		entry("b", domain.WaitlistStatusNotified, 5),
	)
	svc := newTestService(repo, &fakeMetrics{})

	all, err := svc.List(context.Background(), "shop-1", nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	notified, err := svc.List(context.Background(), "shop-1", ptr.Ptr("notified"))
	require.NoError(t, err)
	require.Len(t, notified, 1)
	assert.Equal(t, "b", notified[0].ID)

	_, err = svc.List(context.Background(), "shop-1", ptr.Ptr("lost"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNotify_WithSlot(t *testing.T) {
	repo := newFakeRepo(entry("a", domain.WaitlistStatusWaiting, 10))
	svc := newTestService(repo, &fakeMetrics{})

	resp, err := svc.Notify(context.Background(), "shop-1", "a", &models.SlotRequest{
		Date: ptr.Ptr("2024-05-01"),
		Time: ptr.Ptr("10:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.WaitlistStatusNotified), resp.Status)
	require.NotNil(t, resp.NotifiedAt)
	assert.Equal(t, testNow, *resp.NotifiedAt)
	require.NotNil(t, resp.NotifiedSlot)
	assert.Equal(t, "2024-05-01", *resp.NotifiedSlot.Date)
	assert.Equal(t, "10:00", *resp.NotifiedSlot.Time)
	assert.Equal(t, domain.WaitlistStatusNotified, repo.entries["a"].Status)
}

func TestNotify_Rejected(t *testing.T) {
	other := entry("x", domain.WaitlistStatusWaiting, 1)
	other.ShopID = "shop-2"
	repo := newFakeRepo(entry("n", domain.WaitlistStatusNotified, 10), other)
	svc := newTestService(repo, &fakeMetrics{})

	_, err := svc.Notify(context.Background(), "shop-1", "n", nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.Notify(context.Background(), "shop-1", "x", nil)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	_, err = svc.Notify(context.Background(), "shop-1", "missing", nil)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	_, err = svc.Notify(context.Background(), "shop-1", "n", &models.SlotRequest{Time: ptr.Ptr("25:00")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Zero(t, repo.updates)
}

func TestExpireAndBook(t *testing.T) {
	repo := newFakeRepo(
		entry("w", domain.WaitlistStatusWaiting, 10),
		entry("n", domain.WaitlistStatusNotified, 5),
		entry("b", domain.WaitlistStatusBooked, 20),
	)
	svc := newTestService(repo, &fakeMetrics{})

	resp, err := svc.Expire(context.Background(), "shop-1", "w")
	require.NoError(t, err)
	assert.Equal(t, string(domain.WaitlistStatusExpired), resp.Status)

	resp, err = svc.Book(context.Background(), "shop-1", "n")
	require.NoError(t, err)
	assert.Equal(t, string(domain.WaitlistStatusBooked), resp.Status)

	_, err = svc.Expire(context.Background(), "shop-1", "b")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.Book(context.Background(), "shop-1", "w")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestNotifyBulk(t *testing.T) {
	repo := newFakeRepo(
		entry("a", domain.WaitlistStatusWaiting, 10),
		entry("b", domain.WaitlistStatusWaiting, 5),
		entry("c", domain.WaitlistStatusWaiting, 1),
	)
	svc := newTestService(repo, &fakeMetrics{})

	resp, err := svc.NotifyBulk(context.Background(), "shop-1", &models.NotifyBulkRequest{
		EntryIDs: []string{"a", "c", "a"},
		Slot:     &models.SlotRequest{StaffID: ptr.Ptr("staff1")},
	})
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, domain.WaitlistStatusNotified, repo.entries["a"].Status)
	assert.Equal(t, domain.WaitlistStatusWaiting, repo.entries["b"].Status)
	assert.Equal(t, domain.WaitlistStatusNotified, repo.entries["c"].Status)
	assert.Equal(t, "staff1", *repo.entries["c"].NotifiedSlot.StaffID)
}

func TestNotifyBulk_AllOrNothing(t *testing.T) {
	repo := newFakeRepo(
		entry("a", domain.WaitlistStatusWaiting, 10),
		entry("n", domain.WaitlistStatusNotified, 5),
	)
	svc := newTestService(repo, &fakeMetrics{})

	_, err := svc.NotifyBulk(context.Background(), "shop-1", &models.NotifyBulkRequest{EntryIDs: []string{"a", "n"}})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.NotifyBulk(context.Background(), "shop-1", &models.NotifyBulkRequest{EntryIDs: []string{"a", "ghost"}})
	assert.ErrorIs(t, err, ErrEntryNotFound)

	_, err = svc.NotifyBulk(context.Background(), "shop-1", &models.NotifyBulkRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Zero(t, repo.updates)
	assert.Equal(t, domain.WaitlistStatusWaiting, repo.entries["a"].Status)
}

func TestFindMatches_OldestFirst(t *testing.T) {
	haircut := entry("old", domain.WaitlistStatusWaiting, 60)
	haircut.ServiceID = ptr.Ptr("haircut")
	haircut.Staff = domain.AnyStaff()

	newer := entry("new", domain.WaitlistStatusWaiting, 5)

	monday := entry("mon", domain.WaitlistStatusWaiting, 30)
	monday.PreferredDays = []string{"monday"}

	notified := entry("done", domain.WaitlistStatusNotified, 90)

	m := &fakeMetrics{}
	svc := newTestService(newFakeRepo(newer, monday, haircut, notified), m)

	resp, err := svc.FindMatches(context.Background(), "shop-1", &models.SlotRequest{
		Date:      ptr.Ptr("2024-05-07"),
		Time:      ptr.Ptr("10:00"),
		ServiceID: ptr.Ptr("haircut"),
		StaffID:   ptr.Ptr("staff1"),
	})
	require.NoError(t, err)

	ids := make([]string, 0, len(resp.Matches))
	for _, e := range resp.Matches {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"old", "new"}, ids)
	assert.Equal(t, "2024-05-07", *resp.Slot.Date)
	assert.Equal(t, []int{2}, m.observed)
}

func TestFindMatches_InvalidSlot(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeMetrics{})

	_, err := svc.FindMatches(context.Background(), "shop-1", &models.SlotRequest{Date: ptr.Ptr("tomorrow")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
