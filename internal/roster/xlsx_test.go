package roster

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(SheetName, cell, &r))
	}
	buf := new(bytes.Buffer)
	require.NoError(t, f.Write(buf))
	return buf
}

func TestService_ExportImport(t *testing.T) {
	ctx := context.Background()
	src := newTestService(t)
	for _, f := range []Form{{"Ada", "CS-001", "Computing"}, {"Grace", "CS-002", "Navy"}} {
		_, err := src.Add(ctx, f)
		require.NoError(t, err)
	}

	buf := new(bytes.Buffer)
	n, err := src.Export(ctx, buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	dst := newTestService(t)
	result, err := dst.Import(ctx, buf)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Added)
	assert.Empty(t, result.Skipped)

	want, err := src.List(ctx)
	require.NoError(t, err)
	got, err := dst.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, FormFromStudent(want[i]), FormFromStudent(got[i]))
	}
}

func TestService_ImportSkipsBadRows(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	_, err := svc.Add(ctx, Form{"Ada", "CS-001", "Computing"})
	require.NoError(t, err)

	buf := workbook(t, [][]interface{}{
		{"Course", "Roll No", "Name"},
		{"Navy", "CS-002", "Grace"},
		{"Logic", "CS-001", "Alan"},
		{"", "", ""},
		{"Physics", "CS-004", ""},
		{"Chemistry", "CS-005", "Marie"},
	})

	result, err := svc.Import(ctx, buf)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Added)
	assert.Equal(t, []SkippedRow{
		{Row: 3, Reason: "Roll number must be unique."},
		{Row: 5, Reason: "All fields are required."},
	}, result.Skipped)

	students, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, students, 3)
	assert.Equal(t, "Grace", students[1].Name)
	assert.Equal(t, "Navy", students[1].Course)
}

func TestService_ImportWithoutHeader(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	buf := workbook(t, [][]interface{}{
		{"Ada", "CS-001", "Computing"},
		{"Grace", "CS-002", "Navy"},
	})

	result, err := svc.Import(ctx, buf)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Added)
}

func TestService_ImportRejectsGarbage(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Import(context.Background(), bytes.NewBufferString("not a workbook"))
	assert.Error(t, err)
}
