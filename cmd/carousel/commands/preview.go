package commands

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/agiangrant/carousel"
	"github.com/agiangrant/carousel/internal/preview"
	"github.com/agiangrant/carousel/retained"
)

var (
	previewSlides  int
	previewLogFile string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Run a carousel in the terminal",
	Long: `preview mounts a carousel on an in-memory element tree and renders it in
the terminal. Without a config file, pager and controls are turned on.

Keys: ←/→ prev/next, 1-9 pager dots, h toggles hover, s/S swipe left/right,
q quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if previewSlides < 1 {
			return errors.Errorf("--slides must be at least 1, got %d", previewSlides)
		}

		fallback := carousel.DefaultOptions()
		fallback.Pager = true
		fallback.Controls = true
		opts, path, err := loadOptions(fallback)
		if err != nil {
			return err
		}

		log, closeLog, err := previewLogger()
		if err != nil {
			return err
		}
		defer closeLog()
		if path != "" {
			log.Info("loaded config", "path", path)
		}
		opts.Logger = log

		doc, c, err := mountPreview(opts, previewSlides)
		if err != nil {
			return err
		}
		defer c.Close()

		return preview.Run(doc, c, tea.WithAltScreen())
	},
}

func init() {
	previewCmd.Flags().IntVar(&previewSlides, "slides", 4, "number of slides")
	previewCmd.Flags().StringVar(&previewLogFile, "log", "", "write logs to this file (the terminal is taken by the preview)")
	rootCmd.AddCommand(previewCmd)
}

// mountPreview builds a document holding n text slides under the configured
// element id and mounts a carousel on it.
func mountPreview(opts carousel.Options, n int) (*retained.Document, *carousel.Carousel, error) {
	id := opts.ElementID
	if id == "" {
		id = carousel.DefaultElementID
	}

	texts := make([]string, n)
	for i := range texts {
		texts[i] = fmt.Sprintf("Slide %d", i+1)
	}

	doc := retained.NewDocument(nil)
	doc.Body().AddChild(retained.SlideDeck(id, texts...))

	c, err := carousel.New(doc, opts)
	if err != nil {
		return nil, nil, err
	}
	return doc, c, nil
}

func previewLogger() (*slog.Logger, func(), error) {
	if previewLogFile == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(previewLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open log file")
	}
	return newLogger(f, true), func() { f.Close() }, nil
}
