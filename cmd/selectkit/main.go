package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/selectkit/app"
	"github.com/jask/selectkit/core"
	"github.com/jask/selectkit/internal/config"
	"github.com/jask/selectkit/internal/database"
	"github.com/jask/selectkit/internal/prefs"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path, "migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if _, err := database.PruneHistory(ctx, db); err != nil {
		log.Printf("warn: prune history: %v", err)
	}

	for name, wrap := range cfg.UI.WrapOverrides {
		role, ok := core.ParseRole(name)
		if !ok {
			log.Printf("warn: unknown role %q in wrap_overrides", name)
			continue
		}
		core.SetWrapOverride(role, wrap)
	}

	saved, err := prefs.Load()
	if err != nil {
		log.Printf("warn: load prefs: %v", err)
	}
	accent := cfg.UI.AccentColor
	if saved.Accent != "" {
		accent = saved.Accent
	}
	core.SetAccent(accent)

	history := database.NewHistoryStore(db)

	keys := core.NewKeyRegistry(core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keys.Actions))
	commands := core.NewCommandRegistry(nil)

	pages := app.Tabs(history, accent, func(hex string) {
		saved.Accent = hex
		if err := prefs.Save(saved); err != nil {
			log.Printf("warn: save prefs: %v", err)
		}
	})

	m := core.NewModel(pages, keys, commands, history)
	app.ConfigureModel(&m)
	for i, page := range pages {
		if page.ID() == saved.LastTab {
			m.SwitchTab(i)
			break
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if fm, ok := final.(core.Model); ok {
		if tab := fm.ActiveTab(); tab != nil {
			saved.LastTab = tab.ID()
			if err := prefs.Save(saved); err != nil {
				log.Printf("warn: save prefs: %v", err)
			}
		}
	}
}
