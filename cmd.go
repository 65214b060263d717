package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"ytdlp-direct/config"
	"ytdlp-direct/extract"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newRootCmd(build appBuilder) *cobra.Command {
	root := &cobra.Command{
		Use:          "ytdlp-direct",
		Short:        "Web front-end that redirects to direct media URLs found by yt-dlp",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build(os.Stdout)
			if err != nil {
				return err
			}
			return serve(a)
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server (default)",
		Args:  cobra.NoArgs,
		RunE:  root.RunE,
	}

	formatsCmd := &cobra.Command{
		Use:   "formats <url>",
		Short: "List the redirectable formats of a video",
		Long: `List the formats the web page would offer for a video URL.

Examples:
  ytdlp-direct formats https://www.youtube.com/watch?v=dQw4w9WgXcQ`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			result, err := a.extractor.ListFormats(cmd.Context(), args[0])
			if err != nil {
				return friendly(err)
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("ID", "EXT", "QUALITY", "TYPE", "SIZE").
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return headerStyle
					}
					return cellStyle
				})
			for _, f := range result.Formats {
				t.Row(f.FormatID, f.Ext, f.Quality, f.Class.String(), f.Size)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(result.Title))
			fmt.Fprintln(out, t.Render())
			return nil
		},
	}

	resolveCmd := &cobra.Command{
		Use:   "resolve <url> <format_id>",
		Short: "Print a fresh direct URL for one format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			direct, err := a.extractor.ResolveDownloadURL(cmd.Context(), args[0], args[1])
			if err != nil {
				return friendly(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), direct)
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ytdlp-direct %s (built %s)\n", config.GetGitSHA(), config.GetBuildDate())

			a, err := build(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			v, err := a.versions.Version(cmd.Context())
			if err != nil {
				fmt.Fprintln(out, "yt-dlp unavailable")
				return nil
			}
			fmt.Fprintf(out, "yt-dlp %s\n", v)
			return nil
		},
	}

	root.AddCommand(serveCmd, formatsCmd, resolveCmd, versionCmd)
	return root
}

// friendly replaces an extraction failure with the message the web page
// would show, tagged with its kind.
func friendly(err error) error {
	return fmt.Errorf("%s (%s)", extract.UserMessage(err), extract.KindOf(err))
}
