package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report missing translations and sidebar entries without a doc",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSite(true)
		if err != nil {
			return errors.Wrap(err, "error loading site")
		}

		problems := s.Check()
		for _, p := range problems {
			logger.Warn("content problem", zap.String("problem", p))
		}
		if len(problems) > 0 {
			return errors.Errorf("%d content problems found", len(problems))
		}

		logger.Info("site content is complete", zap.Strings("locales", s.Catalog().Locales()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
