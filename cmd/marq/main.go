package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/skmtko/marq/internal/api"
	"github.com/skmtko/marq/internal/engine"
	"github.com/skmtko/marq/internal/exporter"
	"github.com/skmtko/marq/internal/importer"
	"github.com/skmtko/marq/internal/model"
	"github.com/skmtko/marq/internal/picker"
	"github.com/skmtko/marq/internal/remote"
	"github.com/skmtko/marq/internal/storage"
	"github.com/skmtko/marq/internal/tui"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "sync":
			runSync()
			return
		case "upload":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: marq upload <file.json>\n")
				os.Exit(1)
			}
			runUpload(os.Args[2])
			return
		case "import":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: marq import <file.html>\n")
				os.Exit(1)
			}
			runImport(os.Args[2])
			return
		case "export":
			var outputPath string
			if len(os.Args) >= 3 {
				outputPath = os.Args[2]
			}
			runExport(outputPath)
			return
		default:
			// Treat as search query (join all remaining args)
			query := strings.Join(os.Args[1:], " ")
			runQuickSearch(query)
			return
		}
	}

	// No args - run full TUI
	runTUI()
}

func printHelp() {
	help := `marq - saved post organizer

Usage:
  marq                  Open interactive TUI
  marq <query>          Quick search → select → copy text
  marq sync             Sync categories from the server
  marq upload <file>    Upload a JSON export for categorization
  marq import <file>    Import saved posts from HTML
  marq export [path]    Export posts to JSON
  marq help             Show this help

TUI Keybindings:
  Navigation:
    j/k         Move down/up
    h/l         Switch between scopes and posts
    gg/G        Jump to top/bottom

  Actions:
    Enter       Toggle folder/filter scope
    /           Search posts
    m           Edit folder memberships
    y           Copy post text to clipboard
    r           Sync categories

  Editing:
    A           Add folder
    c           Add category (server)
    d           Delete post/folder

  Other:
    ?           Show help overlay
    q           Quit

Data Storage:
  ~/.config/marq/bookmarks.json (or bookmarks.db)
  ~/.config/marq/config.json
`
	fmt.Print(help)
}

// loadStore opens the snapshot backend and rehydrates the store.
func loadStore() (storage.Storage, *model.Store) {
	backend, err := storage.OpenStorage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}

	store, err := backend.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading posts: %v\n", err)
		os.Exit(1)
	}
	return backend, store
}

// newCoordinator builds the sync coordinator from the config file.
func newCoordinator() *remote.Coordinator {
	configPath, err := storage.DefaultConfigFilePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config path: %v\n", err)
		os.Exit(1)
	}

	cfg, err := storage.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	client := api.NewClientWithTimeout(cfg.BaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second)
	return remote.NewCoordinator(client)
}

// runTUI runs the full interactive TUI.
func runTUI() {
	backend, store := loadStore()

	app := tui.NewApp(tui.AppParams{
		Store:  store,
		Saver:  backend,
		Remote: newCoordinator(),
	})
	p := tea.NewProgram(app, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}

	finalApp := finalModel.(tui.App)
	if err := backend.Save(finalApp.Store()); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving posts: %v\n", err)
		os.Exit(1)
	}
}

// runQuickSearch performs a fuzzy search and copies the selected post's
// text to the clipboard.
func runQuickSearch(query string) {
	_, store := loadStore()

	results := engine.FuzzySearch(store, query)
	if len(results) == 0 {
		fmt.Printf("No posts found for '%s'\n", query)
		os.Exit(0)
	}

	var selected *model.Bookmark

	if len(results) == 1 {
		selected = results[0].Bookmark
	} else {
		p := picker.New(results, query)
		program := tea.NewProgram(p)
		finalModel, err := program.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
			os.Exit(1)
		}

		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			os.Exit(0)
		}
		selected = finalPicker.SelectedBookmark()
	}

	if selected == nil {
		os.Exit(0)
	}

	if err := clipboard.WriteAll(selected.Content); err != nil {
		fmt.Fprintf(os.Stderr, "Error copying to clipboard: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Copied post by %s\n", selected.Handle)
}

// runSync refreshes the category taxonomy and persists the snapshot.
func runSync() {
	backend, store := loadStore()
	coordinator := newCoordinator()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := coordinator.SyncCategories(ctx, store); err != nil {
		fmt.Fprintf(os.Stderr, "Error syncing categories: %v\n", err)
		os.Exit(1)
	}

	if err := backend.Save(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving posts: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Synced %d categories\n", len(store.Categories))
}

// runUpload sends a JSON export to the categorization endpoint.
func runUpload(filePath string) {
	configPath, err := storage.DefaultConfigFilePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config path: %v\n", err)
		os.Exit(1)
	}

	cfg, err := storage.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	client := api.NewClientWithTimeout(cfg.BaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := client.Categorize(ctx, filePath); err != nil {
		fmt.Fprintf(os.Stderr, "Error uploading: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Uploaded %s for categorization\n", filePath)
}

// runImport handles the import subcommand.
func runImport(filePath string) {
	backend, store := loadStore()

	file, err := os.Open(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	bookmarks, err := importer.ParseHTMLPosts(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing HTML: %v\n", err)
		os.Exit(1)
	}

	for _, b := range bookmarks {
		store.AddBookmark(b)
	}

	if err := backend.Save(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving posts: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d posts\n", len(bookmarks))
}

// runExport handles the export subcommand.
func runExport(outputPath string) {
	if outputPath == "" {
		var err error
		outputPath, err = exporter.DefaultExportPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting default export path: %v\n", err)
			os.Exit(1)
		}
	}

	_, store := loadStore()

	if err := exporter.WriteFile(store, outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d posts to %s\n", len(store.Bookmarks), outputPath)
}
