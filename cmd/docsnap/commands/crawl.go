package commands

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/docsnap/docsnap/internal/config"
	"github.com/docsnap/docsnap/internal/crawler"
	"github.com/docsnap/docsnap/internal/extract"
	"github.com/docsnap/docsnap/internal/fetch"
	"github.com/docsnap/docsnap/internal/logger"
	"github.com/docsnap/docsnap/internal/output"
	"github.com/docsnap/docsnap/internal/progress"
)

var crawlCmd = &cobra.Command{
	Use:   "crawl",
	Short: "Crawl a documentation site into one markdown file",
	Long: `Crawl every same-domain page reachable from the start URL and write
one markdown record per page to the output file.

Pages are visited breadth-first. Each page is fetched once: failed fetches
are logged and skipped, non-HTML responses are skipped silently, and the
crawl ends when no undiscovered pages remain.

Examples:
  docsnap crawl --start-url "https://docs.example.com/"
  docsnap crawl --start-url "https://docs.example.com/" -o site.md --delay 250ms`,
	RunE: runCrawl,
}

func init() {
	rootCmd.AddCommand(crawlCmd)

	defaults := config.Default()
	flags := crawlCmd.Flags()

	flags.StringP("start-url", "u", defaults.StartURL, "root URL to start crawling from")
	flags.StringP("output", "o", defaults.Output, "output markdown file path")
	flags.Duration("timeout", defaults.Timeout, "HTTP request timeout")
	flags.Duration("delay", defaults.Delay, "pause between requests (0 = none)")
	flags.String("user-agent", defaults.UserAgent, "User-Agent header to send")
	flags.String("profiles", "", "path to site-profile YAML file")

	_ = viper.BindPFlag("start_url", flags.Lookup("start-url"))
	_ = viper.BindPFlag("output", flags.Lookup("output"))
	_ = viper.BindPFlag("timeout", flags.Lookup("timeout"))
	_ = viper.BindPFlag("delay", flags.Lookup("delay"))
	_ = viper.BindPFlag("user_agent", flags.Lookup("user-agent"))
	_ = viper.BindPFlag("profiles", flags.Lookup("profiles"))
}

func runCrawl(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	cfg := config.Config{
		StartURL:  viper.GetString("start_url"),
		Output:    viper.GetString("output"),
		Timeout:   viper.GetDuration("timeout"),
		Delay:     viper.GetDuration("delay"),
		UserAgent: viper.GetString("user_agent"),
		Profiles:  viper.GetString("profiles"),
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		return err
	}

	prof, err := siteProfile(cfg)
	if err != nil {
		logger.Error("failed to load site profiles", "error", err)
		return err
	}

	var extractOpts []extract.Option
	if len(prof.ContainerSelectors) > 0 {
		extractOpts = append(extractOpts, extract.WithContainerSelectors(prof.ContainerSelectors...))
	}
	if len(prof.RemoveSelectors) > 0 {
		extractOpts = append(extractOpts, extract.WithRemoveSelectors(prof.RemoveSelectors...))
	}

	fetcher := fetch.NewStatic(fetch.Options{
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
		Headers:   prof.Headers,
	})
	defer fetcher.Close()

	writer, err := output.NewFile(cfg.Output)
	if err != nil {
		logger.Error("failed to open output file", "path", cfg.Output, "error", err)
		return err
	}
	defer writer.Close()

	engine := crawler.New(fetcher, extract.New(extractOpts...), writer, progress.LogSink{}, crawler.Config{
		Delay: cfg.Delay,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	stats, err := engine.Run(ctx, cfg.StartURL)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("crawl interrupted", "pages", stats.Pages, "words", stats.Words)
		} else {
			logger.Error("crawl failed", "error", err)
		}
		return err
	}

	fmt.Fprintf(os.Stdout, "Done. Wrote %s pages (%s words) to %s\n",
		humanize.Comma(int64(stats.Pages)),
		humanize.Comma(int64(stats.Words)),
		cfg.Output)
	return nil
}

// siteProfile resolves the profile for the crawl root's host. Without a
// profiles file every host gets the zero profile.
func siteProfile(cfg config.Config) (config.Profile, error) {
	if cfg.Profiles == "" {
		return config.Profile{}, nil
	}

	profiles, err := config.LoadProfiles(cfg.Profiles)
	if err != nil {
		return config.Profile{}, err
	}

	u, err := url.Parse(cfg.StartURL)
	if err != nil {
		return config.Profile{}, fmt.Errorf("parse start URL: %w", err)
	}
	return profiles.For(u.Host), nil
}
