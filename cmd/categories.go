package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nyskytigers/stocktagger/internal/models"
)

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the marketplace category taxonomies",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Shutterstock categories (up to 2 per image):")
			for _, c := range models.ShutterstockCategories {
				fmt.Printf("  %s\n", c)
			}

			fmt.Println("\nAdobe Stock categories (exactly 1 per batch):")
			for i, c := range models.AdobeStockCategories {
				fmt.Printf("  %2d  %s\n", i+1, c)
			}
		},
	}
}
