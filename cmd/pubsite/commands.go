package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/pubsite"
)

var errDeployFailed = errors.New("deploy finished with errors")

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Publish new and updated drafts, refresh the index, commit and push",
	Long: `Deploy checks every draft in the drafts directory. Published drafts without a
post, or newer than their post, are rendered; unpublished drafts have their
post removed. The manifest, sitemap and feed are then rebuilt and, when
anything changed, the site is committed with git and pushed.

Examples:
  pubsite deploy
  pubsite deploy --no-push
  pubsite deploy --root ~/sites/blog`,
	Args: cobra.NoArgs,
	RunE: runDeploy,
}

var publishCmd = &cobra.Command{
	Use:   "publish <draft>",
	Short: "Render a single draft and refresh the index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := newSite().Publish(cmd.Context(), args[0])
		if errors.Is(err, pubsite.ErrNotPublished) {
			fmt.Fprintf(cmd.OutOrStdout(), "Skipping %s: frontmatter 'published' is not true.\n", args[0])
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Published "+path))
		return nil
	},
}

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Rebuild the manifest, sitemap and feed from the rendered posts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := newSite().RefreshIndex(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf("Indexed %d posts", len(posts))))
		return nil
	},
}

var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Create an unpublished draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := newSite().NewDraft(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Created "+path))
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default post template if none exists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, written, err := newSite().InitTemplate()
		if err != nil {
			return err
		}
		if !written {
			fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("Template already exists: "+path))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("Created "+path))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pubsite version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pubsite %s\n", version)
	},
}

func init() {
	deployCmd.Flags().Bool("no-push", false, "Skip the git commit and push")
	viper.BindPFlag("noPush", deployCmd.Flags().Lookup("no-push"))

	rootCmd.AddCommand(deployCmd, publishCmd, manifestCmd, newCmd, initCmd, versionCmd)
}

func runDeploy(cmd *cobra.Command, args []string) error {
	var opts []pubsite.Option
	if !viper.GetBool("noPush") {
		opts = append(opts, pubsite.WithVersionControl(&pubsite.Git{
			Dir:    loadConfig().Root,
			Stdout: os.Stderr,
		}))
	}
	site := newSite(opts...)

	report, err := site.Deploy(cmd.Context())
	if err != nil {
		return err
	}
	printReport(cmd.OutOrStdout(), report, viper.GetBool("quiet"))
	if report.Failed() {
		return errDeployFailed
	}
	return nil
}
