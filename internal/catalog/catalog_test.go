package catalog_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/catalog"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/catalog/mockcatalog"
	"github.com/promac3k/sistema-gestao-atualizacoes/internal/models"
)

func TestRegistry(t *testing.T) {
	a := mockcatalog.New(models.SourceWinget, nil)
	b := mockcatalog.New(models.SourceChocolatey, nil)
	reg := catalog.NewRegistry(a, b)

	t.Run("All keeps registration order", func(t *testing.T) {
		all := reg.All()
		require.Len(t, all, 2)
		assert.Equal(t, models.SourceWinget, all[0].Info().ID)
		assert.Equal(t, models.SourceChocolatey, all[1].Info().ID)
		assert.Equal(t, []models.CatalogInfo{a.Info(), b.Info()}, reg.Infos())
	})

	t.Run("Get", func(t *testing.T) {
		c, ok := reg.Get(models.SourceChocolatey)
		require.True(t, ok)
		assert.Equal(t, b, c)
		_, ok = reg.Get(models.SourceGitHub)
		assert.False(t, ok)
	})

	t.Run("Panic on duplicate registration", func(t *testing.T) {
		assert.Panics(t, func() {
			reg.Register(mockcatalog.New(models.SourceWinget, nil))
		})
	})
}

func TestResolver(t *testing.T) {
	r := catalog.NewResolver([]catalog.Mapping{
		{Key: "notepad++", ID: "npp"},
		{Key: "git", ID: "git-for-windows"},
		{Key: "keepassxc", ID: "kpxc"},
		{Key: "keepass", ID: "kp"},
		{Key: "git", ID: "shadowed"},
	})

	tests := []struct {
		name   string
		wantID string
		wantOK bool
	}{
		{"notepad++", "npp", true},
		{"keepass", "kp", true},          // exact beats an earlier containing key
		{"git", "git-for-windows", true}, // first duplicate key wins
		{"github desktop", "git-for-windows", true},
		{"notepad", "npp", true}, // key contains name
		{"keepassx", "kpxc", true},
		{"", "", false},
		{"   ", "", false},
		{"zoom", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := r.Resolve(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}

	assert.Equal(t, 5, r.Len())
	assert.Equal(t, []string{"notepad++", "git", "keepassxc", "keepass", "git"}, r.Keys())
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, models.OutcomeMatched, catalog.Outcome(nil))
	assert.Equal(t, models.OutcomeNotMapped, catalog.Outcome(catalog.ErrNotMapped))
	assert.Equal(t, models.OutcomeNotFound, catalog.Outcome(fmt.Errorf("%w: 404", catalog.ErrNotFound)))
	assert.Equal(t, models.OutcomeParse, catalog.Outcome(&catalog.LookupError{Catalog: "x", Err: catalog.ErrParse}))
	assert.Equal(t, models.OutcomeTransport, catalog.Outcome(errors.New("boom")))
}

func newChain() (*mockcatalog.Catalog, *mockcatalog.Catalog, *mockcatalog.Catalog, *catalog.Lookup) {
	a := mockcatalog.New(models.SourceWinget, []catalog.Mapping{
		{Key: "chrome", ID: "Google.Chrome"},
		{Key: "vlc", ID: "VideoLAN.VLC"},
	})
	b := mockcatalog.New(models.SourceChocolatey, []catalog.Mapping{
		{Key: "chrome", ID: "googlechrome"},
		{Key: "vlc", ID: "vlc"},
		{Key: "putty", ID: "putty"},
	})
	c := mockcatalog.New(models.SourceGitHub, []catalog.Mapping{
		{Key: "notepad++", ID: "notepad-plus-plus/notepad-plus-plus"},
		{Key: "putty", ID: "putty/putty"},
	})
	return a, b, c, catalog.NewLookup(catalog.NewRegistry(a, b, c), nil)
}

func TestLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("First catalog wins", func(t *testing.T) {
		a, b, _, l := newChain()
		a.SetVersion("Google.Chrome", "121.0")
		b.SetVersion("googlechrome", "120.0")

		m, err := l.Lookup(ctx, "Google Chrome")
		require.NoError(t, err)
		assert.True(t, m.Found)
		assert.Equal(t, models.SourceWinget, m.Source)
		assert.Equal(t, "121.0", m.Version)
		assert.Equal(t, "Google.Chrome", m.Identifier)
		assert.Empty(t, b.Calls())
		require.Len(t, m.Attempts, 1)
		assert.Equal(t, models.OutcomeMatched, m.Attempts[0].Outcome)
	})

	t.Run("Transport failure falls through", func(t *testing.T) {
		a, b, _, l := newChain()
		a.SetFailure("VideoLAN.VLC", fmt.Errorf("%w: connection refused", catalog.ErrTransport))
		b.SetVersion("vlc", "3.0.20")

		m, err := l.Lookup(ctx, "VLC media player")
		require.NoError(t, err)
		assert.True(t, m.Found)
		assert.Equal(t, models.SourceChocolatey, m.Source)
		assert.Equal(t, "3.0.20", m.Version)
		require.Len(t, m.Attempts, 2)
		assert.Equal(t, models.OutcomeTransport, m.Attempts[0].Outcome)
		assert.Contains(t, m.Attempts[0].Error, "connection refused")
		assert.Equal(t, models.OutcomeMatched, m.Attempts[1].Outcome)
	})

	t.Run("Unmapped catalogs are skipped", func(t *testing.T) {
		a, _, c, l := newChain()
		c.SetVersion("notepad-plus-plus/notepad-plus-plus", "8.6.2")

		m, err := l.Lookup(ctx, "Notepad++ (64-bit x64)")
		require.NoError(t, err)
		assert.True(t, m.Found)
		assert.Equal(t, models.SourceGitHub, m.Source)
		assert.Empty(t, a.Calls())
		require.Len(t, m.Attempts, 3)
		assert.Equal(t, models.OutcomeNotMapped, m.Attempts[0].Outcome)
		assert.Equal(t, models.OutcomeNotMapped, m.Attempts[1].Outcome)
	})

	t.Run("Nothing found", func(t *testing.T) {
		_, b, c, l := newChain()
		b.SetFailure("putty", fmt.Errorf("%w: bad xml", catalog.ErrParse))

		m, err := l.Lookup(ctx, "PuTTY")
		require.NoError(t, err)
		assert.False(t, m.Found)
		assert.Empty(t, m.Version)
		assert.Equal(t, []string{"putty/putty"}, c.Calls())
		require.Len(t, m.Attempts, 3)
		assert.Equal(t, models.OutcomeNotMapped, m.Attempts[0].Outcome)
		assert.Equal(t, models.OutcomeParse, m.Attempts[1].Outcome)
		assert.Equal(t, models.OutcomeNotFound, m.Attempts[2].Outcome)
		assert.Equal(t, "not mapped: winget; not found: github; unreachable: chocolatey", m.Error)
	})

	t.Run("Not mapped anywhere", func(t *testing.T) {
		_, _, _, l := newChain()
		m, err := l.Lookup(ctx, "Some Internal Tool")
		require.NoError(t, err)
		assert.False(t, m.Found)
		assert.Equal(t, "not mapped in any catalog", m.Error)
	})

	t.Run("Empty name", func(t *testing.T) {
		_, _, _, l := newChain()
		m, err := l.Lookup(ctx, "Microsoft Corporation")
		require.NoError(t, err)
		assert.False(t, m.Found)
		assert.Empty(t, m.Attempts)
	})

	t.Run("Cancelled context is returned", func(t *testing.T) {
		a, _, _, l := newChain()
		a.SetVersion("Google.Chrome", "121.0")
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		m, err := l.Lookup(cctx, "Chrome")
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, m.Found)
	})
}

func TestSuggest(t *testing.T) {
	_, _, _, l := newChain()
	got := l.Registry().Suggest("notepd", 3)
	require.NotEmpty(t, got)
	assert.Equal(t, "notepad++", got[0].Key)
	assert.LessOrEqual(t, len(got), 3)

	assert.Nil(t, l.Registry().Suggest("", 3))
}
