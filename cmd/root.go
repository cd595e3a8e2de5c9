package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stocktagger",
		Short: "Stock-photo metadata tool with LLM-powered captions and SEO keywords",
		Long: `Stocktagger generates per-image captions and SEO keywords for stock-photo
contributors and exports them as marketplace-ready upload files.

Captioning and keyword extraction are delegated to a vision-capable model
provider (Ollama, OpenAI, Gemini, or Anthropic).`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newCategoriesCmd())

	return cmd
}
