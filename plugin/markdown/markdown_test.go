package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderHTML(t *testing.T) {
	svc := NewService()

	out, err := svc.RenderHTML("# Groceries\n\n- [ ] milk\n- [x] eggs")
	require.NoError(t, err)
	require.Contains(t, out, "<h1>Groceries</h1>")
	require.Contains(t, out, "checkbox")
}

func TestRenderHTMLEscapesRawHTML(t *testing.T) {
	svc := NewService()

	out, err := svc.RenderHTML(`<script>alert("hi")</script>`)
	require.NoError(t, err)
	require.NotContains(t, out, "<script>")
}
