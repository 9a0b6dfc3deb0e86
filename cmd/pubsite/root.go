package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/pubsite"
)

var (
	rootPath string
	cfgFile  string
	quiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "pubsite",
	Short: "pubsite - publish Markdown drafts as a static blog",
	Long: `pubsite renders Markdown drafts with frontmatter into HTML posts, rebuilds
the post manifest, sitemap and RSS feed, and commits and pushes the site.

Configuration is read from .pubsite.yaml (or .yml/.json) in the site root,
PUBSITE_* environment variables and command line flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "Site root directory (default current directory)")
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default <root>/.pubsite.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress per-draft diagnostics")
	rootCmd.PersistentFlags().String("url", "", "Canonical base URL of the site")

	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("url", rootCmd.PersistentFlags().Lookup("url"))
}

func initConfig() {
	viper.SetEnvPrefix("PUBSITE")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
			os.Exit(1)
		}
		return
	}
	for _, name := range []string{".pubsite.yaml", ".pubsite.yml", ".pubsite.json"} {
		path := filepath.Join(viper.GetString("root"), name)
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				os.Exit(1)
			}
			break
		}
	}
}

// loadConfig builds the site configuration from viper; unset values are
// left empty so pubsite applies its defaults.
func loadConfig() pubsite.SiteConfig {
	cfg := pubsite.SiteConfig{
		Name:           viper.GetString("name"),
		URL:            viper.GetString("url"),
		Description:    viper.GetString("description"),
		Language:       viper.GetString("language"),
		Root:           viper.GetString("root"),
		DraftsDir:      viper.GetString("drafts"),
		OutputDir:      viper.GetString("output"),
		BlogPath:       viper.GetString("blogPath"),
		TemplatePath:   viper.GetString("template"),
		ManifestPath:   viper.GetString("manifest"),
		SitemapPath:    viper.GetString("sitemap"),
		FeedPath:       viper.GetString("feed"),
		PhotosDir:      viper.GetString("photos"),
		PhotosPrefix:   viper.GetString("photosPrefix"),
		WordsPerMinute: viper.GetInt("wordsPerMinute"),
	}
	if viper.IsSet("staticPages") {
		cfg.StaticPages = viper.GetStringSlice("staticPages")
	}
	return cfg
}

// newSite builds a Site from the loaded configuration.
func newSite(opts ...pubsite.Option) *pubsite.Site {
	if viper.GetBool("quiet") {
		opts = append(opts, pubsite.WithLogger(log.New(io.Discard, "", 0)))
	}
	return pubsite.New(loadConfig(), opts...)
}
