package csvutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWellFormed(t *testing.T) {
	text := "序號,姓名,班級,email\n1,王小明,三年二班,ming@example.com\n2,李小華,五年一班,hua@example.com\n"

	rows := Parse(text)
	require.Len(t, rows, 2)
	assert.Equal(t, "王小明", rows[0]["姓名"])
	assert.Equal(t, "三年二班", rows[0]["班級"])
	assert.Equal(t, "hua@example.com", rows[1]["email"])
	assert.Equal(t, "2", rows[1]["序號"])
}

func TestParseTrimsWhitespaceAndCarriageReturns(t *testing.T) {
	text := "序號 , 姓名\r\n 1 , 王小明 \r\n"

	rows := Parse(text)
	require.Len(t, rows, 1)
	assert.Equal(t, "王小明", rows[0]["姓名"])
	assert.Equal(t, "1", rows[0]["序號"])
}

func TestParseDropsAllEmptyRows(t *testing.T) {
	text := "a,b,c\n,,\n,,\n\n"
	assert.Empty(t, Parse(text))
}

func TestParseEmptyInput(t *testing.T) {
	assert.Empty(t, Parse(""))
}

func TestParseShortRowLeavesMissingFieldsUnset(t *testing.T) {
	rows := Parse("a,b,c\n1,2\n")
	require.Len(t, rows, 1)

	assert.Equal(t, "1", rows[0]["a"])
	assert.Equal(t, "2", rows[0]["b"])
	_, ok := rows[0]["c"]
	assert.False(t, ok)
}

func TestParseHeaderOnly(t *testing.T) {
	assert.Empty(t, Parse("a,b,c\n"))
}
