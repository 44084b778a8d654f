package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/cottand/kif/formula"
	"github.com/cottand/kif/internal/log"
	"github.com/cottand/kif/kb"
	"github.com/cottand/kif/sexp"
)

var logger = log.DefaultLogger.With("section", "cmd")

var (
	logLevel    = int(slog.LevelWarn)
	logSections []string
	kbPath      string
)

// AddGlobalFlags registers the flags every subcommand understands on root
func AddGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().IntVarP(&logLevel, "log-level", "l", int(slog.LevelWarn), "log level")
	root.PersistentFlags().StringSliceVar(&logSections, "log-sections", nil, "sections to show records below warn for, e.g. formula,rowvars")
	root.PersistentFlags().StringVar(&kbPath, "kb", "", "knowledge base YAML file")
}

func setupLogging() {
	log.SetLevel(slog.Level(logLevel))
	log.EnableSections(logSections...)
}

// loadKB loads the knowledge base given by --kb, or an empty one named
// after the file being processed
func loadKB(target string) (*kb.Static, error) {
	if kbPath == "" {
		return kb.New(filepath.Base(target)), nil
	}
	loaded, err := kb.Load(kbPath)
	if err != nil {
		return nil, fmt.Errorf("could not load knowledge base: %w", err)
	}
	return loaded, nil
}

// readFormulas returns every top-level formula of the KIF file at path
func readFormulas(path string) ([]*formula.Formula, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	forms, err := sexp.SplitForms(string(raw))
	if err != nil {
		return nil, fmt.Errorf("could not split %s into formulas: %w", path, err)
	}
	formulas := make([]*formula.Formula, 0, len(forms))
	for _, form := range forms {
		formulas = append(formulas, formula.New(form.Text, formula.Source{
			File:            path,
			StartLine:       form.StartLine,
			EndLine:         form.EndLine,
			EndFilePosition: -1,
		}))
	}
	logger.Debug("read formulas", "path", path, "count", len(formulas))
	return formulas, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
