package theme

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Its-donkey/portfolio/internal/ui/dom/domtest"
	"github.com/Its-donkey/portfolio/internal/ui/model"
	"github.com/Its-donkey/portfolio/internal/ui/schedule"
)

type fixture struct {
	store *MemoryStore
	root  *domtest.Element
	icon  *domtest.Element
	clock *schedule.Virtual
	mgr   *Manager
}

func newFixture(store Store) fixture {
	f := fixture{
		root:  domtest.NewElement("html", ""),
		icon:  domtest.NewElement("i", "", "fas"),
		clock: schedule.NewVirtual(),
	}
	if ms, ok := store.(*MemoryStore); ok {
		f.store = ms
	}
	f.mgr = NewManager(Options{
		Store:     store,
		Key:       "theme",
		Root:      f.root,
		Icon:      f.icon,
		Scheduler: f.clock,
		IconDelay: 150 * time.Millisecond,
	})
	return f
}

func TestParse(t *testing.T) {
	assert.Equal(t, Dark, Parse("dark"))
	assert.Equal(t, Light, Parse("light"))
	assert.Equal(t, Light, Parse(""))
	assert.Equal(t, Light, Parse("solarized"))
}

func TestInitDefaultsToLight(t *testing.T) {
	f := newFixture(NewMemoryStore())
	assert.Equal(t, Light, f.mgr.Init())
	assert.Equal(t, "light", f.root.Attr(model.ThemeAttr))
	assert.True(t, f.icon.HasClass(model.IconLightClass))
}

func TestInitReadsStoredPreference(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set("theme", "dark"))
	f := newFixture(store)

	assert.Equal(t, Dark, f.mgr.Init())
	assert.Equal(t, "dark", f.root.Attr(model.ThemeAttr))
	assert.True(t, f.icon.HasClass(model.IconDarkClass))
}

func TestTogglePersistsAndRenders(t *testing.T) {
	f := newFixture(NewMemoryStore())
	f.mgr.Init()

	assert.Equal(t, Dark, f.mgr.Toggle())
	stored, ok := f.store.Get("theme")
	require.True(t, ok)
	assert.Equal(t, "dark", stored)
	assert.Equal(t, stored, f.root.Attr(model.ThemeAttr))

	// the icon scales down first and swaps glyph after the delay
	assert.Equal(t, "scale(0)", f.icon.Style("transform"))
	assert.True(t, f.icon.HasClass(model.IconLightClass))

	f.clock.Advance(150 * time.Millisecond)
	assert.Equal(t, "scale(1)", f.icon.Style("transform"))
	assert.True(t, f.icon.HasClass(model.IconDarkClass))
	assert.False(t, f.icon.HasClass(model.IconLightClass))
}

func TestToggleTwiceRestoresOriginal(t *testing.T) {
	f := newFixture(NewMemoryStore())
	f.mgr.Init()

	f.mgr.Toggle()
	f.mgr.Toggle()
	f.clock.Advance(time.Second)

	assert.Equal(t, Light, f.mgr.Current())
	stored, _ := f.store.Get("theme")
	assert.Equal(t, "light", stored)
	assert.Equal(t, "light", f.root.Attr(model.ThemeAttr))
	assert.True(t, f.icon.HasClass(model.IconLightClass))
}

type failingStore struct{ *MemoryStore }

func (failingStore) Set(string, string) error { return errors.New("quota exceeded") }

func TestToggleIgnoresStorageFailure(t *testing.T) {
	f := newFixture(&failingStore{NewMemoryStore()})
	f.mgr.Init()

	assert.NotPanics(t, func() { f.mgr.Toggle() })
	assert.Equal(t, "dark", f.root.Attr(model.ThemeAttr))
}
