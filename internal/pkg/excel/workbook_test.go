package excel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetNamerSanitizes(t *testing.T) {
	n := NewSheetNamer()
	got := n.Name(`a/b\c:d*e?f[g]`)
	assert.Equal(t, "a-b-c-d-e-f-g-", got)
}

func TestSheetNamerTruncatesRunes(t *testing.T) {
	n := NewSheetNamer()
	long := "สรุปประจำเดือนของฝ่ายซ่อมบำรุงและวิศวกรรมประจำปี"
	got := n.Name(long)
	assert.LessOrEqual(t, len([]rune(got)), 31)
	assert.Equal(t, string([]rune(long)[:31]), got)
}

func TestSheetNamerDeduplicates(t *testing.T) {
	n := NewSheetNamer()
	first := n.Name("รายชื่อ-ฝ่ายเทคนิค")
	second := n.Name("รายชื่อ-ฝ่ายเทคนิค")
	third := n.Name("รายชื่อ-ฝ่ายเทคนิค")

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, second, third)
	assert.Equal(t, first+"-1", second)
	assert.Equal(t, first+"-2", third)
	for _, name := range []string{first, second, third} {
		assert.LessOrEqual(t, len([]rune(name)), 31)
	}
}

func TestSheetNamerDeduplicatesAtLengthCap(t *testing.T) {
	n := NewSheetNamer()
	long := "0123456789012345678901234567890XYZ" // 34 runes, truncates identically
	first := n.Name(long)
	second := n.Name(long)

	assert.Len(t, []rune(first), 31)
	assert.Len(t, []rune(second), 31)
	assert.NotEqual(t, first, second)
	// The suffix must still fit inside the 31-rune cap.
	assert.Equal(t, "-1", second[len(second)-2:])
}

func TestSheetNamerEmptyBase(t *testing.T) {
	n := NewSheetNamer()
	assert.Equal(t, "Sheet", n.Name(""))
	assert.Equal(t, "Sheet-1", n.Name(""))
}

func TestWorkbookAppendSheet(t *testing.T) {
	wb := NewWorkbook()
	name, err := wb.AppendSheet("รายชื่อพนักงาน",
		[]string{"วันที่", "ชื่อพนักงาน"},
		[][]interface{}{
			{"01/02/2567", "สมชาย ใจดี"},
			{"01/02/2567", "สมหญิง สุขใจ"},
		})
	require.NoError(t, err)
	assert.Equal(t, "รายชื่อพนักงาน", name)

	rows, err := wb.File().GetRows(name)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"วันที่", "ชื่อพนักงาน"}, rows[0])
	assert.Equal(t, "สมชาย ใจดี", rows[1][1])
}

func TestWorkbookEmptySheetGetsPlaceholder(t *testing.T) {
	wb := NewWorkbook()
	name, err := wb.AppendSheet("สรุปประจำวัน", []string{"รายการ", "รวม"}, nil)
	require.NoError(t, err)

	rows, err := wb.File().GetRows(name)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "หมายเหตุ", rows[0][0])
	assert.Equal(t, "ไม่พบข้อมูล", rows[1][0])
}

func TestWorkbookReusesDefaultSheet(t *testing.T) {
	wb := NewWorkbook()
	_, err := wb.AppendSheet("first", []string{"a"}, [][]interface{}{{"1"}})
	require.NoError(t, err)
	_, err = wb.AppendSheet("second", []string{"a"}, [][]interface{}{{"2"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, wb.File().GetSheetList())
	idx, err := wb.File().GetSheetIndex("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, -1, idx)
}
