package plaintext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfplens-labs/rfplens-cli/internal/core/domain"
)

func TestSupportedMIMETypes(t *testing.T) {
	e := New()
	mimeTypes := e.SupportedMIMETypes()

	require.NotEmpty(t, mimeTypes)
	assert.Contains(t, mimeTypes, "text/plain")
	assert.Contains(t, mimeTypes, "text/markdown")
}

func TestExtract_Success(t *testing.T) {
	e := New()

	raw := &domain.RawDocument{
		FileName: "rfp.txt",
		MIMEType: "text/plain",
		Content:  []byte("Proposals must be submitted by June 1."),
	}

	text, err := e.Extract(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "Proposals must be submitted by June 1.", text)
}

func TestExtract_NilDocument(t *testing.T) {
	e := New()

	text, err := e.Extract(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, text)
}

func TestExtract_EmptyContent(t *testing.T) {
	e := New()

	raw := &domain.RawDocument{MIMEType: "text/plain", Content: []byte("")}

	text, err := e.Extract(context.Background(), raw)
	require.NoError(t, err)
	assert.Empty(t, text)
}
