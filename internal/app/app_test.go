package app

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shepherd-cli/shepherd/internal/errors"
	"github.com/shepherd-cli/shepherd/internal/model"
	"github.com/shepherd-cli/shepherd/internal/storage"
	"github.com/shepherd-cli/shepherd/internal/testfixtures"
)

// fakeToaster records toast messages for assertions.
type fakeToaster struct {
	toasts []string
}

func (f *fakeToaster) Toast(title, message string, severity Severity) {
	f.toasts = append(f.toasts, title)
}

type testEnv struct {
	app   *App
	clock *testfixtures.Clock
	store *storage.StateStore
	toast *fakeToaster
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	clock := testfixtures.NewClock(time.Time{})
	store := storage.NewStateStore(db)
	toast := &fakeToaster{}

	a, err := New(Options{Store: store, Toaster: toast, Now: clock.NowFunc()})
	require.NoError(t, err)

	return &testEnv{app: a, clock: clock, store: store, toast: toast}
}

func TestAddMember(t *testing.T) {
	env := newTestEnv(t)

	t.Run("happy_path", func(t *testing.T) {
		m, err := env.app.AddMember(MemberParams{Name: "Mary Smith", Phone: "555-0100"})
		require.NoError(t, err)
		assert.NotEmpty(t, m.ID)
		assert.Equal(t, env.clock.Now(), m.JoinDate)

		// Joins the current call sheet as todo
		sheet := env.app.CallSheet()
		require.Len(t, sheet, 1)
		assert.Equal(t, m.ID, sheet[0].Member.ID)
		assert.Equal(t, model.CallTodo, sheet[0].Call.Status)
	})

	t.Run("name_required", func(t *testing.T) {
		_, err := env.app.AddMember(MemberParams{Name: "   "})
		var userErr *errors.UserError
		assert.ErrorAs(t, err, &userErr)
	})

	t.Run("persists", func(t *testing.T) {
		doc, err := env.store.Load()
		require.NoError(t, err)
		assert.Len(t, doc.Members, 1)
		assert.Len(t, doc.WeeklyCalls, 1)
	})
}

func TestMemberLookups(t *testing.T) {
	env := newTestEnv(t)
	m, err := env.app.AddMember(MemberParams{Name: "Mary Smith"})
	require.NoError(t, err)

	got, err := env.app.Member(m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)

	got, err = env.app.MemberByName("mary smith")
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)

	_, err = env.app.Member("missing")
	assert.ErrorIs(t, err, errors.ErrMemberNotFound)
}

func TestDeleteMemberCascade(t *testing.T) {
	env := newTestEnv(t)

	m, err := env.app.AddMember(MemberParams{Name: "Mary Smith", Address: "12 Chapel Lane"})
	require.NoError(t, err)
	keep, err := env.app.AddMember(MemberParams{Name: "John Baker"})
	require.NoError(t, err)

	v, err := env.app.AddVisit(VisitParams{
		MemberID: m.ID,
		Purpose:  "Follow-up",
		Date:     env.clock.Now().AddDate(0, 0, 1),
	})
	require.NoError(t, err)

	require.NoError(t, env.app.DeleteMember(m.ID))

	// Gone from the register and the call sheet
	_, err = env.app.Member(m.ID)
	assert.ErrorIs(t, err, errors.ErrMemberNotFound)
	sheet := env.app.CallSheet()
	require.Len(t, sheet, 1)
	assert.Equal(t, keep.ID, sheet[0].Member.ID)

	// The visit survives, orphaned, with its snapshot intact
	orphan, err := env.app.Visit(v.ID)
	require.NoError(t, err)
	assert.True(t, orphan.Orphaned)
	assert.Equal(t, "Mary Smith", orphan.MemberName)
	assert.Equal(t, "12 Chapel Lane", orphan.Address)
}

func TestAddVisitUnknownMember(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.app.AddVisit(VisitParams{MemberID: "nope", Purpose: "x", Date: env.clock.Now()})
	var userErr *errors.UserError
	require.ErrorAs(t, err, &userErr)

	// Nothing was recorded
	assert.Empty(t, env.app.Visits())
	doc, err := env.store.Load()
	require.NoError(t, err)
	assert.Empty(t, doc.Visits)
}

func TestUpdateVisitResync(t *testing.T) {
	env := newTestEnv(t)

	mary, err := env.app.AddMember(MemberParams{Name: "Mary Smith", Address: "12 Chapel Lane"})
	require.NoError(t, err)
	john, err := env.app.AddMember(MemberParams{Name: "John Baker", Address: "3 Mill Road"})
	require.NoError(t, err)

	v, err := env.app.AddVisit(VisitParams{MemberID: mary.ID, Purpose: "Follow-up", Date: env.clock.Now()})
	require.NoError(t, err)

	updated, err := env.app.UpdateVisit(v.ID, VisitParams{
		MemberID: john.ID,
		Purpose:  v.Purpose,
		Date:     v.Date,
		Status:   model.VisitPending,
	})
	require.NoError(t, err)
	assert.Equal(t, "John Baker", updated.MemberName)
	assert.Equal(t, "3 Mill Road", updated.Address)
}

func TestCompleteVisitIdempotent(t *testing.T) {
	env := newTestEnv(t)

	m, err := env.app.AddMember(MemberParams{Name: "Mary Smith"})
	require.NoError(t, err)
	v, err := env.app.AddVisit(VisitParams{MemberID: m.ID, Purpose: "x", Date: env.clock.Now()})
	require.NoError(t, err)

	require.NoError(t, env.app.CompleteVisit(v.ID))
	require.NoError(t, env.app.CompleteVisit(v.ID))

	got, err := env.app.Visit(v.ID)
	require.NoError(t, err)
	assert.Equal(t, model.VisitCompleted, got.Status)
}

func TestSermonStatusValidation(t *testing.T) {
	env := newTestEnv(t)

	s, err := env.app.AddSermon(SermonParams{Title: "The Good Shepherd", Date: env.clock.Now()})
	require.NoError(t, err)
	assert.Equal(t, model.SermonDraft, s.Status)

	_, err = env.app.UpdateSermon(s.ID, SermonParams{Title: s.Title, Date: s.Date, Status: "bogus"})
	var userErr *errors.UserError
	assert.ErrorAs(t, err, &userErr)

	updated, err := env.app.UpdateSermon(s.ID, SermonParams{Title: s.Title, Date: s.Date, Status: model.SermonReady})
	require.NoError(t, err)
	assert.Equal(t, model.SermonReady, updated.Status)
}

func TestSortingOrders(t *testing.T) {
	env := newTestEnv(t)
	now := env.clock.Now()

	m, err := env.app.AddMember(MemberParams{Name: "Mary Smith"})
	require.NoError(t, err)

	// Sermons newest first
	for _, d := range []int{1, 3, 2} {
		_, err := env.app.AddSermon(SermonParams{
			Title: fmt.Sprintf("Sermon %d", d),
			Date:  now.AddDate(0, 0, d),
		})
		require.NoError(t, err)
	}
	sermons := env.app.Sermons()
	require.Len(t, sermons, 3)
	assert.True(t, sermons[0].Date.After(sermons[1].Date))
	assert.True(t, sermons[1].Date.After(sermons[2].Date))

	// Visits soonest first
	for _, d := range []int{3, 1, 2} {
		_, err := env.app.AddVisit(VisitParams{MemberID: m.ID, Purpose: "x", Date: now.AddDate(0, 0, d)})
		require.NoError(t, err)
	}
	visits := env.app.Visits()
	require.Len(t, visits, 3)
	assert.True(t, visits[0].Date.Before(visits[1].Date))
	assert.True(t, visits[1].Date.Before(visits[2].Date))

	// Events soonest first
	for _, d := range []int{2, 1} {
		_, err := env.app.AddEvent(EventParams{Title: fmt.Sprintf("Event %d", d), Date: now.AddDate(0, 0, d)})
		require.NoError(t, err)
	}
	events := env.app.Events()
	require.Len(t, events, 2)
	assert.True(t, events[0].Date.Before(events[1].Date))
}

func TestActivityCap(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < model.MaxActivities+5; i++ {
		_, err := env.app.AddSermon(SermonParams{
			Title: fmt.Sprintf("Sermon %d", i),
			Date:  env.clock.Now(),
		})
		require.NoError(t, err)
	}

	activities := env.app.Activities()
	assert.Len(t, activities, model.MaxActivities)
	// Newest first
	assert.Contains(t, activities[0].Description, fmt.Sprintf("Sermon %d", model.MaxActivities+4))
}

func TestClearAllData(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.app.AddMember(MemberParams{Name: "Mary Smith"})
	require.NoError(t, err)
	require.NoError(t, env.app.ClearAllData())

	assert.Empty(t, env.app.Members())
	assert.Empty(t, env.app.CallSheet())
	assert.Empty(t, env.app.WeekIdentifier())

	doc, err := env.store.Load()
	require.NoError(t, err)
	assert.Empty(t, doc.Members)
}

func TestOverviewCounters(t *testing.T) {
	env := newTestEnv(t)
	now := env.clock.Now()

	m, err := env.app.AddMember(MemberParams{Name: "Mary Smith"})
	require.NoError(t, err)
	_, err = env.app.AddEvent(EventParams{Title: "Bible study", Date: now.Add(3 * time.Hour)})
	require.NoError(t, err)
	_, err = env.app.AddVisit(VisitParams{MemberID: m.ID, Purpose: "x", Date: now.AddDate(0, 0, 1)})
	require.NoError(t, err)
	env.app.AddNotification(model.NotifyInfo, "t", "m", model.Target{})

	o := env.app.Overview()
	assert.Equal(t, 1, o.MemberCount)
	assert.Equal(t, 1, o.TodayEvents)
	assert.Equal(t, 1, o.VisitsThisWeek)
	assert.Equal(t, 1, o.Unread)
	assert.Equal(t, 0, o.CallsDone)
	assert.Equal(t, 1, o.CallsTotal)
	assert.NotEmpty(t, o.WeekIdentifier)
}

func TestUpcomingItems(t *testing.T) {
	env := newTestEnv(t)
	now := env.clock.Now()

	m, err := env.app.AddMember(MemberParams{Name: "Mary Smith"})
	require.NoError(t, err)
	_, err = env.app.AddEvent(EventParams{Title: "Bible study", Date: now.Add(2 * time.Hour)})
	require.NoError(t, err)
	v, err := env.app.AddVisit(VisitParams{MemberID: m.ID, Purpose: "x", Date: now.Add(time.Hour)})
	require.NoError(t, err)

	// Completed visits never show up
	done, err := env.app.AddVisit(VisitParams{MemberID: m.ID, Purpose: "y", Date: now.Add(3 * time.Hour)})
	require.NoError(t, err)
	require.NoError(t, env.app.CompleteVisit(done.ID))

	items := env.app.UpcomingItems(10)
	require.Len(t, items, 2)
	assert.Equal(t, "visit", items[0].Kind)
	assert.Equal(t, v.ID, items[0].ID)
	assert.Equal(t, "event", items[1].Kind)
}
