package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jask/selectbox/core"
	"github.com/jask/selectbox/internal/config"
	"github.com/jask/selectbox/internal/demo"
	"github.com/jask/selectbox/internal/logging"
	"github.com/jask/selectbox/widgets"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logFile    string
		width      int
	)
	cmd := &cobra.Command{
		Use:          "selectdemo",
		Short:        "Dropdown select widgets in the terminal",
		Long:         "selectdemo shows single and multiple dropdown selects driven by keyboard and mouse.",
		Version:      Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-file") {
				cfg.Log.Path = logFile
			}
			if cmd.Flags().Changed("width") {
				cfg.UI.Width = width
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			return run(cfg)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/selectdemo/config.toml)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "width of each select in cells")

	cmd.AddCommand(newInitConfigCmd())
	return cmd
}

func run(cfg config.Config) error {
	log, closeLog, err := logging.Open(logging.Config{
		Path:   cfg.Log.Path,
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	if err != nil {
		return err
	}
	defer closeLog()

	m, err := buildModel(cfg, log)
	if err != nil {
		return err
	}
	defer m.Close()

	log.Info().Int("selects", len(cfg.Selects)).Int("options", len(cfg.Options)).Msg("starting")
	p := tea.NewProgram(m, programOptions()...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// programOptions reports all mouse motion; hover arrives with no button held.
func programOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	}
}

// buildModel turns a validated config into the demo host.
func buildModel(cfg config.Config, log zerolog.Logger) (*demo.Model, error) {
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}
	selects := make([]demo.Select, 0, len(cfg.Selects))
	for _, s := range cfg.Selects {
		selects = append(selects, demo.Select{
			Title:    s.Title,
			Multiple: s.Multiple,
			Initial:  s.InitialOptions(catalog),
		})
	}
	accent, _ := widgets.Accent(cfg.UI.Accent)
	theme := widgets.NewTheme(accent)
	return demo.New(demo.Options{
		Catalog:     catalog,
		Selects:     selects,
		Width:       cfg.UI.Width,
		MaxVisible:  cfg.UI.MaxVisible,
		Placeholder: cfg.UI.Placeholder,
		Theme:       &theme,
		Keys:        core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keys),
		Logger:      log,
	}), nil
}
