package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	csv := `text,created_at,source
"great food",2025-10-01T10:00:00,Tweet
"bad parking",2025-10-02T14:21:00,Review
`
	records, err := Load(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "great food", records[0].Text)
	assert.Equal(t, "2025-10-01T10:00:00", records[0].Metadata["created_at"])
	assert.Equal(t, "Tweet", records[0].Metadata["source"])
	assert.Equal(t, "bad parking", records[1].Text)
}

func TestLoadTextColumnNotFirst(t *testing.T) {
	csv := "id,text\n1,hello\n"
	records, err := Load(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "hello", records[0].Text)
	assert.Equal(t, "1", records[0].Metadata["id"])
}

func TestLoadMissingTextColumn(t *testing.T) {
	_, err := Load(strings.NewReader("body,source\nhello,Tweet\n"))
	assert.ErrorIs(t, err, ErrMissingTextColumn)
}

func TestLoadEmptyInput(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrMissingTextColumn)
}

func TestLoadShortRowPadsWithEmpty(t *testing.T) {
	csv := "text,source\nhello\n"
	records, err := Load(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "hello", records[0].Text)
	assert.Equal(t, "", records[0].Metadata["source"])
}

func TestLoadMalformedCSV(t *testing.T) {
	_, err := Load(strings.NewReader("text,source\n\"unterminated,Tweet\n"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingTextColumn)
}

func TestLoadHeaderOnly(t *testing.T) {
	records, err := Load(strings.NewReader("text,source\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSample(t *testing.T) {
	records := Sample()
	require.Len(t, records, 8)

	for _, rec := range records {
		assert.NotEmpty(t, rec.Text)
		assert.NotEmpty(t, rec.Metadata["created_at"])
		assert.NotEmpty(t, rec.Metadata["source"])
	}

	assert.Contains(t, records[0].Text, "BlueBean")
}
