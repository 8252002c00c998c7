package cli

import (
	"fmt"
	"strconv"
	"strings"

	"wishlist-cli/internal/model"
	"wishlist-cli/internal/store"

	"github.com/spf13/cobra"
)

func newItemsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Item commands",
	}

	cmd.AddCommand(newItemsListCmd(app))
	cmd.AddCommand(newItemsShowCmd(app))
	cmd.AddCommand(newItemsAddCmd(app))
	cmd.AddCommand(newItemsEditCmd(app))
	cmd.AddCommand(newItemsRemoveCmd(app))

	return cmd
}

func newItemsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newStore(app)
			if err := s.Load(cmd.Context()); err != nil {
				return writeErr(cmd, err)
			}
			if s.Items == nil {
				return writeOut(cmd, app, []model.Item{})
			}
			return writeOut(cmd, app, s.Items)
		},
	}
}

func newItemsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			s := newStore(app)
			// The API exposes no single-item read, so fetch and match locally.
			if err := s.Load(cmd.Context()); err != nil {
				return writeErr(cmd, err)
			}
			it, ok := s.Find(id)
			if !ok {
				return writeErr(cmd, errNotFound("item", args[0]))
			}
			return writeOut(cmd, app, it)
		},
	}
}

func newItemsAddCmd(app *App) *cobra.Command {
	var url string
	var price string
	var category string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if category != "" && !model.ValidCategory(category) {
				return writeErr(cmd, fmt.Errorf("unknown category %q (one of: %s)", category, strings.Join(model.CategoryNames(), ", ")))
			}
			s := newStore(app)
			s.AddForm = store.AddForm{URL: url, Category: category, Price: price}
			it, err := s.Create(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, it)
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "Link to the wished-for item (required)")
	cmd.Flags().StringVar(&price, "price", "", "Price (required)")
	cmd.Flags().StringVar(&category, "category", "", "Category (default: "+model.DefaultCategory+")")

	return cmd
}

func newItemsEditCmd(app *App) *cobra.Command {
	var name string
	var price string
	var url string
	var category string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an item (unset flags keep current values)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if cmd.Flags().Changed("category") && !model.ValidCategory(category) {
				return writeErr(cmd, fmt.Errorf("unknown category %q (one of: %s)", category, strings.Join(model.CategoryNames(), ", ")))
			}

			s := newStore(app)
			if err := s.Load(cmd.Context()); err != nil {
				return writeErr(cmd, err)
			}
			it, ok := s.Find(id)
			if !ok {
				return writeErr(cmd, errNotFound("item", args[0]))
			}

			s.BeginEdit(it)
			if cmd.Flags().Changed("name") {
				s.EditForm.Name = name
			}
			if cmd.Flags().Changed("price") {
				s.EditForm.Price = price
			}
			if cmd.Flags().Changed("url") {
				s.EditForm.URL = url
			}
			if cmd.Flags().Changed("category") {
				s.EditForm.Category = category
			}

			updated, err := s.CommitEdit(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, updated)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&price, "price", "", "Price")
	cmd.Flags().StringVar(&url, "url", "", "Link to the item")
	cmd.Flags().StringVar(&category, "category", "", "Category")

	return cmd
}

func newItemsRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseItemID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			s := newStore(app)
			if err := s.Load(cmd.Context()); err != nil {
				return writeErr(cmd, err)
			}
			it, ok := s.Find(id)
			if !ok {
				return writeErr(cmd, errNotFound("item", args[0]))
			}
			if err := s.Remove(cmd.Context(), id); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, it)
		},
	}
}

func parseItemID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid item id %q", raw)
	}
	return id, nil
}
