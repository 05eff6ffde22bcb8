package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"sitegen_server/internal/render"
	"sitegen_server/internal/types"
)

var renderOut string

// renderCmd renders a spec file into a standalone HTML artifact, the
// same document the API's render endpoint would return.
var renderCmd = &cobra.Command{
	Use:   "render <spec.json>",
	Short: "Renders a website spec file to a static HTML document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		html, err := renderSpecFile(args[0])
		if err != nil {
			return err
		}
		if err := os.WriteFile(renderOut, []byte(html), 0644); err != nil {
			return fmt.Errorf("write %s: %w", renderOut, err)
		}
		log.Printf("Rendered %s to %s (%d bytes)", args[0], renderOut, len(html))
		return nil
	},
}

// specFile is the accepted on-disk shape: an envelope with a spec or a
// blocks array, or a bare WebsiteSpec.
type specFile struct {
	Spec   *types.WebsiteSpec `json:"spec"`
	Blocks []types.Block      `json:"blocks"`
}

// renderSpecFile loads a JSON spec file and renders it to a document.
func renderSpecFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	var file specFile
	if err := json.Unmarshal(data, &file); err != nil {
		return "", fmt.Errorf("parse %s: %w", path, err)
	}
	if file.Spec == nil && file.Blocks == nil {
		// Fall back to a bare spec at the top level.
		var spec types.WebsiteSpec
		if err := json.Unmarshal(data, &spec); err != nil {
			return "", fmt.Errorf("parse %s: %w", path, err)
		}
		file.Spec = &spec
	}

	renderer := render.New()
	if file.Spec != nil && file.Spec.Sections != nil {
		return renderer.RenderDocument(file.Spec)
	}
	if file.Blocks != nil {
		return renderer.RenderBlocksDocument(file.Blocks, types.Theme{Primary: types.ColorBlue})
	}
	return renderer.RenderDocument(file.Spec)
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "site.html", "output file")
	rootCmd.AddCommand(renderCmd)
}
