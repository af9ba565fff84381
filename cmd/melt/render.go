package main

import (
	"bufio"
	stderrors "errors"

	"github.com/spf13/cobra"

	"github.com/meltui/melt/internal/config"
	"github.com/meltui/melt/internal/errors"
	"github.com/meltui/melt/internal/gallery"
	"github.com/meltui/melt/pkg/reactive"
	"github.com/meltui/melt/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		configPath string
		themeFile  string
		themeName  string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "render <demo>",
		Short: "Render one demo page to stdout",
		Long: `Render a demo page as static HTML, without the live client.

Examples:
  melt render select
  melt render radio --theme=brand.yaml --pretty
  melt render tabbar --theme-name=dark`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, configPath)
			if err != nil {
				return err
			}
			if themeFile != "" {
				cfg.Theme.File = themeFile
			}
			if themeName != "" {
				cfg.Theme.Name = themeName
			}
			if pretty {
				cfg.Server.Pretty = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			th, err := cfg.LoadTheme()
			if err != nil {
				return err
			}

			reg, err := gallery.Default()
			if err != nil {
				return err
			}
			d, err := reg.Get(args[0])
			if stderrors.Is(err, gallery.ErrUnknownDemo) {
				return errors.New("M021").WithDetail("no demo named " + args[0])
			}
			if err != nil {
				return err
			}

			sess := gallery.NewSession(d, reactive.NewSignal(th), render.RendererConfig{Pretty: cfg.Server.Pretty})
			defer sess.Close()

			out := bufio.NewWriter(cmd.OutOrStdout())
			if err := gallery.RenderDemoPage(out, reg, sess, gallery.PageOptions{
				Theme:  th,
				Pretty: cfg.Server.Pretty,
			}); err != nil {
				return errors.FromError(err, "M032")
			}
			return out.Flush()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.FileName, "Configuration file")
	cmd.Flags().StringVarP(&themeFile, "theme", "t", "", "Theme file (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&themeName, "theme-name", "", "Built-in theme: light or dark")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the HTML")

	return cmd
}
