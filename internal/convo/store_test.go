package convo

import (
	"testing"

	"github.com/stupiduntilnot/localagent/internal/db"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()
	database, err := db.OpenDB(t.TempDir() + "/agent.db")
	if err != nil {
		t.Fatal(err)
	}
	if err := db.InitSchema(database); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { database.Close() })
	return &SQLiteStore{DB: database}
}

func TestSQLiteStore_AppendAndLoad(t *testing.T) {
	store := testStore(t)

	exchanges := []Exchange{
		{UserText: "q1", AgentText: "a1"},
		{UserText: "q2", AgentText: "a2"},
		{UserText: "q3", AgentText: "a3"},
	}
	for _, e := range exchanges {
		if err := store.Append(e); err != nil {
			t.Fatal(err)
		}
	}

	got, err := store.Load(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 exchanges, got %d", len(got))
	}
	for i, e := range exchanges {
		if got[i] != e {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], e)
		}
	}
}

func TestSQLiteStore_LoadRespectsLimit(t *testing.T) {
	store := testStore(t)

	for i := 0; i < 15; i++ {
		if err := store.Append(Exchange{UserText: userAt(i), AgentText: "a"}); err != nil {
			t.Fatal(err)
		}
	}

	got, err := store.Load(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 10 {
		t.Fatalf("expected 10 exchanges, got %d", len(got))
	}
	// Most recent 10, chronological.
	if got[0].UserText != userAt(5) {
		t.Errorf("oldest loaded = %q, want %q", got[0].UserText, userAt(5))
	}
	if got[9].UserText != userAt(14) {
		t.Errorf("newest loaded = %q, want %q", got[9].UserText, userAt(14))
	}
}

func TestSQLiteStore_LoadEmpty(t *testing.T) {
	store := testStore(t)
	got, err := store.Load(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(got))
	}
}
