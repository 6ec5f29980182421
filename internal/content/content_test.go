package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultDocumentPreservesConfiguredOrder(t *testing.T) {
	t.Parallel()

	site, err := Default()
	require.NoError(t, err)

	require.Equal(t, "TrenchSniffer", site.Brand.Name)
	require.Equal(t, "/logo.png", site.Brand.Logo)

	require.Len(t, site.Nav, 2)
	require.Equal(t, NavEntry{Label: "Features", Anchor: "#features", Icon: "cube"}, site.Nav[0])
	require.Equal(t, NavEntry{Label: "Roadmap", Anchor: "#roadmap", Icon: "road"}, site.Nav[1])

	var titles []string
	for _, f := range site.Features.Items {
		titles = append(titles, f.Title)
	}
	require.Equal(t, []string{"AI Analysis", "Smart Tracking", "Neural Networks", "Live Monitoring"}, titles)

	require.Len(t, site.Roadmap.Milestones, 3)
	require.Equal(t, StatusCompleted, site.Roadmap.Milestones[0].Status)
	require.Equal(t, StatusCurrent, site.Roadmap.Milestones[1].Status)
	require.Equal(t, StatusUpcoming, site.Roadmap.Milestones[2].Status)
	require.Equal(t, []string{"Multi-chain Support", "Mobile App", "API Integration"}, site.Roadmap.Milestones[2].Items)

	require.Equal(t, "https://t.me/trenchsnifferbot", site.Links.Bot)
	require.Equal(t, "https://t.me/+FkA5vAAt6UQwNzFk", site.Links.Community)
	require.Equal(t, "© 2024 TrenchSniffer. All rights reserved.", site.Footer.Copyright)
}

func TestHeroBodyRenderedAsParagraph(t *testing.T) {
	t.Parallel()

	site := MustDefault()
	body := string(site.Hero.BodyHTML())
	require.True(t, strings.HasPrefix(body, "<p>"), "body=%s", body)
	require.Contains(t, body, "Advanced blockchain analytics powered by artificial intelligence.")
}

func TestRenderMarkdownStripsScripts(t *testing.T) {
	t.Parallel()

	out, err := RenderMarkdown("**bold** <script>alert(1)</script> [x](https://example.com)")
	require.NoError(t, err)
	s := string(out)
	require.Contains(t, s, "<strong>bold</strong>")
	require.NotContains(t, s, "<script")
	require.Contains(t, s, `rel="nofollow`)
	require.Contains(t, s, `target="_blank"`)
}

func TestParseRejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	raw := strings.Replace(string(defaultDocument), "status: upcoming", "status: someday", 1)
	_, err := Parse([]byte(raw))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidContent))
	require.Contains(t, err.Error(), `roadmap.milestones[2].status "someday"`)
}

func TestParseRejectsBareAnchorAndUnknownIcon(t *testing.T) {
	t.Parallel()

	raw := strings.Replace(string(defaultDocument), `anchor: "#roadmap"`, `anchor: "roadmap"`, 1)
	raw = strings.Replace(raw, "icon: wallet", "icon: piggy", 1)
	_, err := Parse([]byte(raw))
	require.ErrorIs(t, err, ErrInvalidContent)
	require.Contains(t, err.Error(), "nav[1].anchor")
	require.Contains(t, err.Error(), `features.items[1].icon "piggy"`)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := Parse(append([]byte("extra: true\n"), defaultDocument...))
	require.Error(t, err)
}

func TestLoadFromDisk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	raw := strings.Replace(string(defaultDocument), "title: Advanced Features", "title: Even Better Features", 1)
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	site, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Even Better Features", site.Features.Title)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
