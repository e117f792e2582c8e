package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shepherd-cli/shepherd/internal/model"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestStateStoreFirstRun(t *testing.T) {
	store := NewStateStore(openTestDB(t))

	doc, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, doc.Members)
	assert.Empty(t, doc.WeeklyCalls)
	assert.Empty(t, doc.WeekIdentifier)
	assert.True(t, doc.LastSaved.IsZero())
}

func TestStateStoreRoundTrip(t *testing.T) {
	store := NewStateStore(openTestDB(t))

	joined := time.Date(2023, 6, 1, 0, 0, 0, 0, time.Local)
	m := model.NewMember("Mary Smith", joined)
	m.Phone = "555-0100"
	birth := time.Date(1957, 3, 4, 0, 0, 0, 0, time.Local)
	m.BirthDate = &birth

	s := model.NewSermon("The Good Shepherd", "John 10:11-18",
		time.Date(2024, 3, 17, 10, 0, 0, 0, time.Local))
	v := model.NewVisit(m, "Follow-up", time.Date(2024, 3, 14, 15, 0, 0, 0, time.Local))
	e := model.NewEvent("Bible study", time.Date(2024, 3, 14, 19, 0, 0, 0, time.Local), "Parish hall")

	doc := NewDocument()
	doc.Members = append(doc.Members, m)
	doc.Sermons = append(doc.Sermons, s)
	doc.Visits = append(doc.Visits, v)
	doc.Events = append(doc.Events, e)
	doc.WeeklyCalls = append(doc.WeeklyCalls, &model.WeeklyCall{MemberID: m.ID, Status: model.CallTodo})
	doc.WeekIdentifier = "2024-W11"

	require.NoError(t, store.Save(doc))
	assert.False(t, doc.LastSaved.IsZero())

	loaded, err := store.Load()
	require.NoError(t, err)

	require.Len(t, loaded.Members, 1)
	got := loaded.Members[0]
	assert.Equal(t, m.ID, got.ID)
	assert.Equal(t, "Mary Smith", got.Name)
	assert.True(t, got.JoinDate.Equal(joined))
	require.NotNil(t, got.BirthDate)
	assert.True(t, got.BirthDate.Equal(birth))

	require.Len(t, loaded.Sermons, 1)
	assert.Equal(t, model.SermonDraft, loaded.Sermons[0].Status)
	assert.True(t, loaded.Sermons[0].Date.Equal(s.Date))

	require.Len(t, loaded.Visits, 1)
	assert.Equal(t, "Mary Smith", loaded.Visits[0].MemberName)

	require.Len(t, loaded.Events, 1)
	assert.Equal(t, "19:00", loaded.Events[0].Time)

	require.Len(t, loaded.WeeklyCalls, 1)
	assert.Equal(t, "2024-W11", loaded.WeekIdentifier)
}

func TestStateStoreMalformedBlob(t *testing.T) {
	db := openTestDB(t)
	store := NewStateStore(db)

	require.NoError(t, db.SetBytes(StateKey, []byte("{not json")))

	doc, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, doc.Members)
	assert.Empty(t, doc.WeekIdentifier)
}

func TestStateStoreClear(t *testing.T) {
	store := NewStateStore(openTestDB(t))

	doc := NewDocument()
	doc.WeekIdentifier = "2024-W11"
	require.NoError(t, store.Save(doc))

	require.NoError(t, store.Clear())
	// Clearing twice is fine
	require.NoError(t, store.Clear())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded.WeekIdentifier)
}

func TestDocumentNormalize(t *testing.T) {
	doc := &Document{}
	doc.normalize()
	assert.NotNil(t, doc.Members)
	assert.NotNil(t, doc.Sermons)
	assert.NotNil(t, doc.Visits)
	assert.NotNil(t, doc.Events)
	assert.NotNil(t, doc.Activities)
	assert.NotNil(t, doc.Notifications)
	assert.NotNil(t, doc.WeeklyCalls)
}

func TestWebhookRepo(t *testing.T) {
	repo := NewWebhookRepo(openTestDB(t))

	t.Run("create_and_get", func(t *testing.T) {
		w := model.NewWebhook("study-group", model.WebhookTypeDiscord, "https://discord.com/api/webhooks/1/a")
		require.NoError(t, repo.Create(w))

		got, err := repo.Get("study-group")
		require.NoError(t, err)
		assert.Equal(t, model.WebhookTypeDiscord, got.Type)
		assert.True(t, got.Enabled)
	})

	t.Run("exists", func(t *testing.T) {
		ok, err := repo.Exists("study-group")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Exists("nope")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("get_missing", func(t *testing.T) {
		_, err := repo.Get("nope")
		assert.True(t, IsErrKeyNotFound(err))
	})

	t.Run("list_enabled", func(t *testing.T) {
		w := model.NewWebhook("archived", model.WebhookTypeSlack, "https://hooks.slack.com/services/x")
		w.Enabled = false
		require.NoError(t, repo.Create(w))

		enabled, err := repo.ListEnabled()
		require.NoError(t, err)
		require.Len(t, enabled, 1)
		assert.Equal(t, "study-group", enabled[0].Name)

		all, err := repo.List()
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("set_enabled", func(t *testing.T) {
		require.NoError(t, repo.SetEnabled("archived", true))
		enabled, err := repo.ListEnabled()
		require.NoError(t, err)
		assert.Len(t, enabled, 2)
	})

	t.Run("update_last_used", func(t *testing.T) {
		require.NoError(t, repo.UpdateLastUsed("study-group", assert.AnError))
		got, err := repo.Get("study-group")
		require.NoError(t, err)
		assert.False(t, got.LastUsed.IsZero())
		assert.NotEmpty(t, got.LastError)

		require.NoError(t, repo.UpdateLastUsed("study-group", nil))
		got, err = repo.Get("study-group")
		require.NoError(t, err)
		assert.Empty(t, got.LastError)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete("archived"))
		_, err := repo.Get("archived")
		assert.True(t, IsErrKeyNotFound(err))
	})
}
