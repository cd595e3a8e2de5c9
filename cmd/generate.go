package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nyskytigers/stocktagger/internal/batch"
	"github.com/nyskytigers/stocktagger/internal/config"
	"github.com/nyskytigers/stocktagger/internal/export"
	"github.com/nyskytigers/stocktagger/internal/ingest"
	"github.com/nyskytigers/stocktagger/internal/keywords"
	"github.com/nyskytigers/stocktagger/internal/models"
	"github.com/nyskytigers/stocktagger/internal/report"
	"github.com/nyskytigers/stocktagger/internal/storage"
)

// defaultOutput names the export file per format, matching what the
// marketplaces expect to receive.
func defaultOutput(format string) string {
	switch format {
	case "adobe":
		return "adobestock_upload.csv"
	case "istock":
		return "istock_metadata.zip"
	case "parquet":
		return "stocktagger_session.parquet"
	default:
		return export.DefaultFilename
	}
}

func newGenerateCmd() *cobra.Command {
	var (
		configPath     string
		dir            string
		providerName   string
		model          string
		topK           int
		categories     []string
		editorial      bool
		mature         bool
		illustration   bool
		masterCaption  string
		masterKeywords string
		targets        []string
		format         string
		output         string
		reportPath     string
		adobeCategory  string
		adobeReleases  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate captions and keywords for a directory of images and export them",
		Long: `Ingests every image in a directory, generates a caption and SEO keywords
per image via the configured model provider, optionally applies a master
caption or keyword list to the whole batch, and writes the marketplace
upload file.

A provider failure on one image never aborts the batch: the record is
created with empty fields and the problem is logged (and recorded in the
session report, see --report).`,
		Example: `  # Shutterstock CSV for a directory of photos
  stocktagger generate --dir ./photos --category "Animals/Wildlife"

  # Apply one caption to every image, then export for Adobe Stock
  stocktagger generate --dir ./photos --master-caption "Autumn in Vermont" \
    --format adobe --adobe-category Landscapes --out adobestock_upload.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			cfg.ApplyEnv()

			// Flags beat config file beats env.
			if providerName != "" {
				cfg.Provider.Name = providerName
				cfg.Provider.Model = config.DefaultModel(providerName)
			}
			if model != "" {
				cfg.Provider.Model = model
			}
			if topK > 0 {
				cfg.Keywords.TopK = topK
			}
			if len(categories) > 0 {
				cfg.Defaults.Categories = categories
			}
			if cmd.Flags().Changed("editorial") {
				cfg.Defaults.Editorial = editorial
			}
			if cmd.Flags().Changed("mature") {
				cfg.Defaults.Mature = mature
			}
			if cmd.Flags().Changed("illustration") {
				cfg.Defaults.Illustration = illustration
			}
			if format != "" {
				cfg.Export.Format = format
			}
			if output != "" {
				cfg.Export.Output = output
			} else if cfg.Export.Output == export.DefaultFilename {
				cfg.Export.Output = defaultOutput(cfg.Export.Format)
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			captioner, keyworder, err := newProviders(cfg)
			if err != nil {
				return err
			}

			store := storage.New()
			adapter := ingest.NewAdapter(captioner, keyworder, cfg.Keywords.TopK)

			opts := ingest.Options{
				Categories:   cfg.Defaults.Categories,
				Editorial:    cfg.Defaults.Editorial,
				Mature:       cfg.Defaults.Mature,
				Illustration: cfg.Defaults.Illustration,
			}
			if _, err := adapter.IngestDir(cmd.Context(), store, dir, opts); err != nil {
				return err
			}

			if masterCaption != "" || masterKeywords != "" {
				req := models.BatchOverrideRequest{Targets: targets}
				if masterCaption != "" {
					req.MasterCaption = &masterCaption
				}
				if masterKeywords != "" {
					kws := keywords.Split(masterKeywords)
					req.MasterKeywords = &kws
				}
				if _, err := batch.Apply(store, req); err != nil {
					return err
				}
			}

			records := store.All()

			var data []byte
			switch cfg.Export.Format {
			case "shutterstock":
				data, err = export.Shutterstock(records)
			case "adobe":
				data, err = export.AdobeStock(records, adobeCategory, adobeReleases)
			case "istock":
				data, err = export.IStockZip(records)
			case "parquet":
				data, err = export.Parquet(records)
			}
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			if err := os.WriteFile(cfg.Export.Output, data, 0644); err != nil {
				return fmt.Errorf("failed to write export file: %w", err)
			}
			slog.Info("Export written", "format", cfg.Export.Format, "output", cfg.Export.Output, "records", len(records))

			if reportPath != "" {
				if err := report.Write(reportPath, cfg.Provider.Name, cfg.Provider.Model, records); err != nil {
					return err
				}
				slog.Info("Session report written", "path", reportPath)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to TOML config file")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory of images to ingest (jpg, jpeg, png, gif, webp)")
	cmd.Flags().StringVar(&providerName, "provider", "", "Model provider: ollama, openai, gemini, anthropic")
	cmd.Flags().StringVar(&model, "model", "", "Model name (provider-specific default if empty)")
	cmd.Flags().IntVar(&topK, "top-k", 0, "Number of keywords to request per image")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "Shutterstock category, up to 2 (repeatable)")
	cmd.Flags().BoolVar(&editorial, "editorial", false, "Mark all images as editorial")
	cmd.Flags().BoolVar(&mature, "mature", false, "Mark all images as mature content")
	cmd.Flags().BoolVar(&illustration, "illustration", false, "Mark all images as illustrations")
	cmd.Flags().StringVar(&masterCaption, "master-caption", "", "Replace every target record's caption with this value")
	cmd.Flags().StringVar(&masterKeywords, "master-keywords", "", "Replace every target record's keywords with this comma-separated list")
	cmd.Flags().StringSliceVar(&targets, "targets", nil, "Image ids the master override applies to (default: all)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Export format: shutterstock, adobe, istock, parquet")
	cmd.Flags().StringVarP(&output, "out", "o", "", "Export file path (default "+export.DefaultFilename+")")
	cmd.Flags().StringVar(&reportPath, "report", "", "Write a YAML session report to this path")
	cmd.Flags().StringVar(&adobeCategory, "adobe-category", "", "Adobe Stock category name (adobe format only)")
	cmd.Flags().StringVar(&adobeReleases, "adobe-releases", "", "Adobe Stock release names (adobe format only)")

	if err := cmd.MarkFlagRequired("dir"); err != nil {
		slog.Error("Unable to mark flag required", "err", err)
	}

	return cmd
}
