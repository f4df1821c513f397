package state

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := Open(MemoryPath, nil)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func mustCreate(t *testing.T, store *SQLiteStore, name, rollNo, course string) *Student {
	t.Helper()
	st, err := store.CreateStudent(context.Background(), Student{Name: name, RollNo: rollNo, Course: course})
	if err != nil {
		t.Fatalf("failed to create student %q: %v", rollNo, err)
	}
	return st
}

func TestSQLiteStore_OpenClose(t *testing.T) {
	store := NewSQLiteStore(nil)

	if err := store.Open(MemoryPath); err != nil {
		t.Fatalf("failed to open in-memory store: %v", err)
	}

	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	if _, err := store.ListStudents(context.Background()); err == nil {
		t.Error("expected error after close")
	}
}

func TestSQLiteStore_Migrate(t *testing.T) {
	store := setupTestStore(t)

	rows, err := store.db.Query("SELECT id, name, roll_no, course FROM students LIMIT 1")
	if err != nil {
		t.Fatalf("students table does not exist: %v", err)
	}
	_ = rows.Close()

	ok, err := store.HasSchema()
	if err != nil {
		t.Fatalf("failed to inspect schema: %v", err)
	}
	if !ok {
		t.Error("expected students table to exist")
	}

	// Running again is a no-op.
	if err := store.Migrate(); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}
}

func TestSQLiteStore_AdoptsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "students.db")

	store := NewSQLiteStore(nil)
	if err := store.Open(path); err != nil {
		t.Fatalf("failed to open: %v", err)
	}
	// A file written by an older build already has the table but no goose version table.
	if _, err := store.db.Exec(`CREATE TABLE students (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		roll_no TEXT UNIQUE NOT NULL,
		course TEXT NOT NULL)`); err != nil {
		t.Fatalf("failed to create legacy table: %v", err)
	}
	if _, err := store.db.Exec(`INSERT INTO students (name, roll_no, course) VALUES ('Ada', 'R1', 'Math')`); err != nil {
		t.Fatalf("failed to seed legacy row: %v", err)
	}
	_ = store.Close()

	reopened, err := Open(path, nil)
	if err != nil {
		t.Fatalf("failed to reopen legacy file: %v", err)
	}
	defer reopened.Close()

	students, err := reopened.ListStudents(context.Background())
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(students) != 1 || students[0].RollNo != "R1" {
		t.Errorf("expected legacy row to survive, got %+v", students)
	}

	tables := tableNames(t, reopened)
	if want := []string{"sqlite_sequence", "students"}; !slices.Equal(tables, want) {
		t.Errorf("expected tables %v, got %v", want, tables)
	}
}

func TestSQLiteStore_FreshFileHasOnlyStudentsTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.db")

	store, err := Open(path, nil)
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}
	defer store.Close()

	if err := store.Migrate(); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}
	if _, err := store.CreateStudent(context.Background(), Student{Name: "Ada", RollNo: "R1", Course: "Math"}); err != nil {
		t.Fatalf("failed to create student: %v", err)
	}

	tables := tableNames(t, store)
	if want := []string{"sqlite_sequence", "students"}; !slices.Equal(tables, want) {
		t.Errorf("expected tables %v, got %v", want, tables)
	}
}

func tableNames(t *testing.T, store *SQLiteStore) []string {
	t.Helper()
	rows, err := store.db.Query(`SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`)
	if err != nil {
		t.Fatalf("failed to list tables: %v", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatalf("failed to scan table name: %v", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("failed to list tables: %v", err)
	}
	return names
}

func TestSQLiteStore_StudentLifecycle(t *testing.T) {
	tests := []struct {
		name   string
		verify func(t *testing.T, store *SQLiteStore)
	}{
		{
			name: "insert with unused roll number appears in listing",
			verify: func(t *testing.T, store *SQLiteStore) {
				st := mustCreate(t, store, "Ada Lovelace", "CS-001", "Computing")
				if st.ID == 0 {
					t.Error("expected id to be assigned")
				}
				students, err := store.ListStudents(context.Background())
				if err != nil {
					t.Fatalf("failed to list: %v", err)
				}
				if len(students) != 1 || students[0] != *st {
					t.Errorf("expected [%+v], got %+v", *st, students)
				}
			},
		},
		{
			name: "duplicate roll number rejected and count unchanged",
			verify: func(t *testing.T, store *SQLiteStore) {
				mustCreate(t, store, "Ada", "CS-001", "Computing")
				_, err := store.CreateStudent(context.Background(), Student{Name: "Grace", RollNo: "CS-001", Course: "Navy"})
				if !errors.Is(err, ErrDuplicateRollNo) {
					t.Fatalf("expected ErrDuplicateRollNo, got %v", err)
				}
				n, err := store.CountStudents(context.Background())
				if err != nil {
					t.Fatalf("failed to count: %v", err)
				}
				if n != 1 {
					t.Errorf("expected 1 row, got %d", n)
				}
			},
		},
		{
			name: "update course keeping roll number",
			verify: func(t *testing.T, store *SQLiteStore) {
				st := mustCreate(t, store, "Ada", "CS-001", "Computing")
				st.Course = "Mathematics"
				if err := store.UpdateStudent(context.Background(), *st); err != nil {
					t.Fatalf("update failed: %v", err)
				}
				got, err := store.GetStudent(context.Background(), st.ID)
				if err != nil {
					t.Fatalf("get failed: %v", err)
				}
				if got.Course != "Mathematics" || got.RollNo != "CS-001" {
					t.Errorf("unexpected row after update: %+v", got)
				}
			},
		},
		{
			name: "update onto another roll number rejected",
			verify: func(t *testing.T, store *SQLiteStore) {
				mustCreate(t, store, "Ada", "CS-001", "Computing")
				grace := mustCreate(t, store, "Grace", "CS-002", "Navy")
				grace.RollNo = "CS-001"
				err := store.UpdateStudent(context.Background(), *grace)
				if !errors.Is(err, ErrDuplicateRollNo) {
					t.Fatalf("expected ErrDuplicateRollNo, got %v", err)
				}
				got, _ := store.GetStudent(context.Background(), grace.ID)
				if got.RollNo != "CS-002" {
					t.Errorf("row changed despite conflict: %+v", got)
				}
			},
		},
		{
			name: "update missing id",
			verify: func(t *testing.T, store *SQLiteStore) {
				err := store.UpdateStudent(context.Background(), Student{ID: 42, Name: "x", RollNo: "y", Course: "z"})
				if !errors.Is(err, ErrStudentNotFound) {
					t.Errorf("expected ErrStudentNotFound, got %v", err)
				}
			},
		},
		{
			name: "delete removes exactly one row",
			verify: func(t *testing.T, store *SQLiteStore) {
				a := mustCreate(t, store, "Ada", "CS-001", "Computing")
				b := mustCreate(t, store, "Grace", "CS-002", "Navy")
				c := mustCreate(t, store, "Alan", "CS-003", "Logic")
				if err := store.DeleteStudent(context.Background(), b.ID); err != nil {
					t.Fatalf("delete failed: %v", err)
				}
				students, err := store.ListStudents(context.Background())
				if err != nil {
					t.Fatalf("failed to list: %v", err)
				}
				if len(students) != 2 || students[0] != *a || students[1] != *c {
					t.Errorf("expected [%v %v], got %v", *a, *c, students)
				}
			},
		},
		{
			name: "delete missing id",
			verify: func(t *testing.T, store *SQLiteStore) {
				err := store.DeleteStudent(context.Background(), 7)
				if !errors.Is(err, ErrStudentNotFound) {
					t.Errorf("expected ErrStudentNotFound, got %v", err)
				}
			},
		},
		{
			name: "get missing id",
			verify: func(t *testing.T, store *SQLiteStore) {
				_, err := store.GetStudent(context.Background(), 99)
				if !errors.Is(err, ErrStudentNotFound) {
					t.Errorf("expected ErrStudentNotFound, got %v", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.verify(t, setupTestStore(t))
		})
	}
}

func TestSQLiteStore_ListAfterAddsAndDeletes(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	const adds, deletes = 12, 5
	var ids []int64
	for i := 0; i < adds; i++ {
		st := mustCreate(t, store, "Student", "R-"+string(rune('A'+i)), "Course")
		ids = append(ids, st.ID)
	}
	for _, id := range ids[:deletes] {
		if err := store.DeleteStudent(ctx, id); err != nil {
			t.Fatalf("delete %d failed: %v", id, err)
		}
	}

	students, err := store.ListStudents(ctx)
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(students) != adds-deletes {
		t.Errorf("expected %d rows, got %d", adds-deletes, len(students))
	}
	for i := 1; i < len(students); i++ {
		if students[i-1].ID >= students[i].ID {
			t.Errorf("listing not ordered by id: %v", students)
		}
	}
}
