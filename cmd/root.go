package cmd

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/hestjs/hestjs-website/config"
	"github.com/hestjs/hestjs-website/handlers"
	"github.com/hestjs/hestjs-website/logging"
	"github.com/hestjs/hestjs-website/site"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	siteDir string
	env     config.Env
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "hestjs-website",
	Short: "HestJS website - the marketing and documentation site for HestJS",
	Long: `hestjs-website renders the HestJS home page and documentation in every
configured locale. It can serve the site directly or write it out as static files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		env, err = config.ParseEnv()
		if err != nil {
			return err
		}
		logger, err = logging.New(env.LogLevel, env.LogFormat)
		if err != nil {
			return err
		}
		if siteDir == "" {
			siteDir = env.SiteDir
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&siteDir, "site", "", "Directory with the site sources (defaults to the embedded site)")
}

func siteFS() fs.FS {
	if siteDir != "" {
		return os.DirFS(siteDir)
	}
	return site.FS()
}

func loadSite(skipScripts bool) (*handlers.Site, error) {
	return handlers.SetupRouter(handlers.Options{
		FS:          siteFS(),
		Origin:      env.Origin,
		Prod:        env.IsProd(),
		SkipScripts: skipScripts,
		Logger:      logger,
	})
}
