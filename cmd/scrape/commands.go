package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/user/catalog-service/internal/usecase"
)

func newProductCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "product <slug>",
		Short: "Scrape a product page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c usecase.Catalog) (interface{}, error) {
				return c.Product(ctx, args[0])
			})
		},
	}
}

func newBlogCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "blog <slug>",
		Short: "Scrape a blog post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c usecase.Catalog) (interface{}, error) {
				return c.BlogPost(ctx, args[0])
			})
		},
	}
}

func newCategoryCmd(opts *options) *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "category <slug>",
		Short: "Scrape one page of a product category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, func(ctx context.Context, c usecase.Catalog) (interface{}, error) {
				return c.Category(ctx, args[0], page)
			})
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Listing page number")
	return cmd
}

func newFeaturedCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "featured",
		Short: "Scrape the featured products of the home page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, func(ctx context.Context, c usecase.Catalog) (interface{}, error) {
				return c.Featured(ctx)
			})
		},
	}
}
