package cmd

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var (
	previewPort int
	previewDir  string
)

// previewCmd renders a spec file, serves the result locally and
// re-renders whenever the spec file changes.
var previewCmd = &cobra.Command{
	Use:   "preview <spec.json>",
	Short: "Serves a live preview of a spec file and re-renders on change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		specPath := args[0]

		rebuild := func() error {
			html, err := renderSpecFile(specPath)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(previewDir, 0755); err != nil {
				return fmt.Errorf("create preview dir: %w", err)
			}
			return os.WriteFile(filepath.Join(previewDir, "index.html"), []byte(html), 0644)
		}

		log.Println("Performing initial render...")
		if err := rebuild(); err != nil {
			return fmt.Errorf("initial render failed: %w", err)
		}
		log.Println("Initial render successful.")

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("create file watcher: %w", err)
		}
		defer watcher.Close()

		go func() {
			// Debounce: editors often fire several events per save.
			var rebuildTimer *time.Timer
			const debounce = 500 * time.Millisecond

			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return
					}
					if event.Name != specPath && filepath.Base(event.Name) != filepath.Base(specPath) {
						continue
					}
					if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
						log.Printf("Change detected: %s (%s)", event.Name, event.Op.String())
						if rebuildTimer != nil {
							rebuildTimer.Stop()
						}
						rebuildTimer = time.AfterFunc(debounce, func() {
							if err := rebuild(); err != nil {
								log.Printf("Error during re-render: %v", err)
							} else {
								log.Println("Preview re-rendered.")
							}
						})
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return
					}
					log.Printf("Watcher error: %v", err)
				}
			}
		}()

		// Watch the directory, not the file: rename-based saves replace
		// the inode and would silently drop a file watch.
		if err := watcher.Add(filepath.Dir(specPath)); err != nil {
			return fmt.Errorf("watch %s: %w", specPath, err)
		}

		addr := fmt.Sprintf(":%d", previewPort)
		log.Printf("Serving preview on http://localhost%s", addr)
		log.Println("Press Ctrl+C to stop the server.")

		fs := http.FileServer(http.Dir(previewDir))
		http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			// No caching during preview, the document changes on every save.
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
			fs.ServeHTTP(w, r)
		})

		if err := http.ListenAndServe(addr, nil); err != nil {
			return fmt.Errorf("preview server: %w", err)
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().IntVarP(&previewPort, "port", "p", 1313, "port to serve the preview on")
	previewCmd.Flags().StringVar(&previewDir, "dir", ".preview", "directory for rendered preview output")
	rootCmd.AddCommand(previewCmd)
}
