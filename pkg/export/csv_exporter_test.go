package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	data := Dataset{
		Headers: []string{"日期", "學生", "教練", "時數"},
		Rows: []map[string]string{
			{"日期": "2024-01-01", "學生": "王小明", "教練": "陳教練", "時數": "1小時30分鐘"},
			{"日期": "2024-01-02", "學生": "李小華", "教練": "陳教練", "時數": "0小時45分鐘"},
		},
	}

	out, err := NewCSVExporter().Render(data)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "日期,學生,教練,時數", lines[0])
	assert.Equal(t, "2024-01-01,王小明,陳教練,1小時30分鐘", lines[1])
}

func TestCSVExporterRenderWithBOM(t *testing.T) {
	data := Dataset{Headers: []string{"a"}, Rows: []map[string]string{{"a": "1"}}}

	out, err := NewCSVExporter().RenderWithBOM(data)
	require.NoError(t, err)
	require.True(t, len(out) > 3)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, out[:3])
	assert.Equal(t, "a\n1\n", string(out[3:]))
}

func TestCSVExporterQuotesWhenNeeded(t *testing.T) {
	data := Dataset{Headers: []string{"a", "b"}, Rows: []map[string]string{{"a": "x,y", "b": "plain"}}}

	out, err := NewCSVExporter().Render(data)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"x,y"`)
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	data := Dataset{
		Headers: []string{"Date", "Student", "Coach", "Duration"},
		Rows: []map[string]string{
			{"Date": "2024-01-01", "Student": "Ming", "Coach": "Chen", "Duration": "1h30m"},
		},
	}

	out, err := NewPDFExporter().Render(data, "Lesson Records")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestPDFExporterRequiresHeaders(t *testing.T) {
	_, err := NewPDFExporter().Render(Dataset{}, "")
	assert.Error(t, err)
}
