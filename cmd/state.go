package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	trkerr "github.com/Vinillian/daily-tracker/internal/errors"
	"github.com/Vinillian/daily-tracker/internal/models"
	"github.com/Vinillian/daily-tracker/internal/state"
)

func stateCmd() *cli.Command {
	return &cli.Command{
		Name:  "state",
		Usage: "Manage wellbeing state categories",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List configured state categories in display order",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "additional",
						Usage: "list the curated additional catalog instead",
					},
				},
				Action: func(c *cli.Context) error {
					svc, err := stateService(c)
					if err != nil {
						return err
					}
					return runStateList(svc, c.Bool("additional"))
				},
			},
			{
				Name:      "add",
				Usage:     "Add a state category",
				ArgsUsage: "<name>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "type", Value: "percent", Usage: "percent, scale_1_10, text or yes_no"},
					&cli.StringFlag{Name: "emoji", Value: "⚪"},
					&cli.StringFlag{Name: "color", Value: "#808080", Usage: "HEX display color"},
					&cli.StringFlag{Name: "description"},
					&cli.IntFlag{Name: "order", Value: 100, Usage: "sort/display priority"},
				},
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return trkerr.Usage("missing category name").
							WithHint("usage: daily-tracker state add <name>")
					}
					svc, err := stateService(c)
					if err != nil {
						return err
					}
					return runStateAdd(svc, models.StateCategory{
						Name:        name,
						Type:        models.ParseValueType(c.String("type")),
						Emoji:       c.String("emoji"),
						Color:       c.String("color"),
						Description: c.String("description"),
						Order:       c.Int("order"),
					})
				},
			},
			{
				Name:      "update",
				Usage:     "Update a user-saved state category",
				ArgsUsage: "<name>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "type", Usage: "percent, scale_1_10, text or yes_no"},
					&cli.StringFlag{Name: "emoji"},
					&cli.StringFlag{Name: "color", Usage: "HEX display color"},
					&cli.StringFlag{Name: "description"},
					&cli.IntFlag{Name: "order"},
				},
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return trkerr.Usage("missing category name").
							WithHint("usage: daily-tracker state update <name> [flags]")
					}
					svc, err := stateService(c)
					if err != nil {
						return err
					}
					return runStateUpdate(svc, name, c)
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a user-added state category",
				ArgsUsage: "<name>",
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return trkerr.Usage("missing category name").
							WithHint("usage: daily-tracker state delete <name>")
					}
					svc, err := stateService(c)
					if err != nil {
						return err
					}
					return runStateDelete(svc, name)
				},
			},
			{
				Name:      "reorder",
				Usage:     "Reorder categories; unmentioned ones keep their relative order after",
				ArgsUsage: "<name>...",
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return trkerr.Usage("expected at least one category name").
							WithHint("usage: daily-tracker state reorder <name>...")
					}
					svc, err := stateService(c)
					if err != nil {
						return err
					}
					return runStateReorder(svc, c.Args().Slice())
				},
			},
		},
	}
}

func runStateList(svc *state.Service, additional bool) error {
	var (
		categories []models.StateCategory
		err        error
	)
	if additional {
		categories, err = svc.LoadAdditional()
	} else {
		categories, err = svc.LoadCategories()
	}
	if err != nil {
		return err
	}

	if len(categories) == 0 {
		fmt.Println("No categories.")
		return nil
	}
	for _, c := range categories {
		fmt.Printf("%2d. %s %s (%s)", c.Order, c.Emoji, c.Name, c.Type)
		if c.Description != "" {
			fmt.Printf(" — %s", c.Description)
		}
		fmt.Println()
	}
	return nil
}

func runStateAdd(svc *state.Service, category models.StateCategory) error {
	if err := svc.Add(category); err != nil {
		return err
	}
	fmt.Printf("Added state category %q.\n", category.Name)
	return nil
}

func runStateUpdate(svc *state.Service, name string, c *cli.Context) error {
	categories, err := svc.LoadCategories()
	if err != nil {
		return err
	}

	var current *models.StateCategory
	for i := range categories {
		if categories[i].Name == name {
			current = &categories[i]
			break
		}
	}
	if current == nil {
		return trkerr.NotFound("category " + name + " not found")
	}

	updated := *current
	if c.IsSet("type") {
		updated.Type = models.ParseValueType(c.String("type"))
	}
	if c.IsSet("emoji") {
		updated.Emoji = c.String("emoji")
	}
	if c.IsSet("color") {
		updated.Color = c.String("color")
	}
	if c.IsSet("description") {
		updated.Description = c.String("description")
	}
	if c.IsSet("order") {
		updated.Order = c.Int("order")
	}

	if err := svc.Update(name, updated); err != nil {
		return err
	}
	fmt.Printf("Updated state category %q.\n", name)
	return nil
}

func runStateDelete(svc *state.Service, name string) error {
	if err := svc.Delete(name); err != nil {
		return err
	}
	fmt.Printf("Deleted state category %q.\n", name)
	return nil
}

func runStateReorder(svc *state.Service, names []string) error {
	if err := svc.Reorder(names); err != nil {
		return err
	}
	fmt.Println("Reordered state categories.")
	return nil
}
