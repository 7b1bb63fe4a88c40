package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/yungbote/dailyfeels-backend/internal/domain"
)

func TestRenderPDFProducesDocument(t *testing.T) {
	entries := []*types.MoodEntry{
		entry("2024-01-01", "happy", "😀", ptr("walked the dog")),
		entry("2024-01-02", "sad", "😢", ptr(strings.Repeat("long note ", 30))),
	}
	doc := Build(entries, types.DefaultMoods(), "2024-01-01", "2024-01-31")

	var buf bytes.Buffer
	require.NoError(t, doc.RenderPDF(&buf))

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "output should be a PDF")
	assert.Greater(t, len(out), 1000)
}

func TestRenderPDFEmptyReport(t *testing.T) {
	doc := Build(nil, types.DefaultMoods(), "", "")

	var buf bytes.Buffer
	require.NoError(t, doc.RenderPDF(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestRenderPDFManyRowsPaginates(t *testing.T) {
	var entries []*types.MoodEntry
	for i := 1; i <= 28; i++ {
		entries = append(entries, entry(fmt.Sprintf("2024-01-%02d", i), "meh", "😐", ptr(strings.Repeat("x", 200))))
	}
	doc := Build(entries, types.DefaultMoods(), "2024-01-01", "2024-01-31")

	var buf bytes.Buffer
	require.NoError(t, doc.RenderPDF(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
