package cli

import (
	"fmt"

	"cvision/internal/ats"

	"github.com/spf13/cobra"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords [industry]",
	Short: "List the keyword dictionary for an industry",
	Long: `List the ATS keyword dictionary used to score keyword coverage for an
industry. Without an argument the general dictionary is printed.

Known industries: software, marketing, finance, healthcare, general.
Unrecognized industries fall back to the general dictionary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		industry := ""
		if len(args) == 1 {
			industry = args[0]
		}

		fmt.Printf("Industry: %s\n", ats.ResolveIndustry(industry))
		for _, keyword := range ats.IndustryKeywords(industry) {
			fmt.Printf("  - %s\n", keyword)
		}
		return nil
	},
}
