package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigMarkdown(t *testing.T) {
	md, err := configMarkdown()
	require.NoError(t, err)

	assert.Contains(t, md, "## Defaults")
	assert.Contains(t, md, "```yaml")
	assert.Contains(t, md, "animation:")
	assert.Contains(t, md, "slots:")
}

func TestRenderMarkdown(t *testing.T) {
	out, err := renderMarkdown("# Title\n\nsome text", 60)
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "some text")
}

func TestDocCmd_Raw(t *testing.T) {
	tests := []struct {
		topic string
		want  string
	}{
		{topic: "guide", want: "# drawer"},
		{topic: "config", want: "## Defaults"},
	}

	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			var buf bytes.Buffer
			app := newTestApp(&buf)
			app = NewDocCmd(&Flags{}).Register(app)

			err := app.Run(context.Background(), []string{"drawer", "doc", tt.topic, "--raw"})
			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}
