package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v2"

	trkerr "github.com/Vinillian/daily-tracker/internal/errors"
	"github.com/Vinillian/daily-tracker/internal/models"
	"github.com/Vinillian/daily-tracker/internal/project"
)

func projectCmd() *cli.Command {
	return &cli.Command{
		Name:  "project",
		Usage: "Work with project documents",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List stored projects",
				Action: func(c *cli.Context) error {
					svc, err := projectService(c)
					if err != nil {
						return err
					}
					return runProjectList(svc)
				},
			},
			{
				Name:      "show",
				Usage:     "Print a project with section progress",
				ArgsUsage: "<name>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "section",
						Usage: "print a single section instead of the whole project",
					},
				},
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return trkerr.Usage("missing project name").
							WithHint("usage: daily-tracker project show <name>")
					}
					svc, err := projectService(c)
					if err != nil {
						return err
					}
					return runProjectShow(svc, name, c.String("section"))
				},
			},
			{
				Name:      "create",
				Usage:     "Create and store a new project",
				ArgsUsage: "<name>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "template",
						Usage: "project template to seed from",
					},
				},
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return trkerr.Usage("missing project name").
							WithHint("usage: daily-tracker project create <name>")
					}
					svc, err := projectService(c)
					if err != nil {
						return err
					}
					return runProjectCreate(svc, name, c.String("template"))
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a project",
				ArgsUsage: "<name>",
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return trkerr.Usage("missing project name").
							WithHint("usage: daily-tracker project delete <name>")
					}
					svc, err := projectService(c)
					if err != nil {
						return err
					}
					return runProjectDelete(svc, name)
				},
			},
		},
	}
}

func runProjectList(svc *project.Service) error {
	projects, err := svc.List()
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Println("No projects yet. Create one with `project create <name>`.")
		return nil
	}
	for _, p := range projects {
		fmt.Println(p)
	}
	return nil
}

var (
	projTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	sectionHdrStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	projMetaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	overallHdrStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
)

func runProjectShow(svc *project.Service, name, sectionName string) error {
	p, err := svc.Load(name)
	if err != nil {
		return err
	}

	if sectionName != "" {
		s := p.SectionByName(sectionName)
		if s == nil {
			return trkerr.NotFound("section " + sectionName + " not found in project " + name)
		}
		printSection(s)
		return nil
	}

	fmt.Println(projTitleStyle.Render("🚀 " + p.Metadata.Name))
	fmt.Println(projMetaStyle.Render(fmt.Sprintf("%s · %s", p.Metadata.Version, p.Metadata.Date)))
	if p.Metadata.Description != "" {
		fmt.Println(projMetaStyle.Render(p.Metadata.Description))
	}

	for i := range p.Sections {
		fmt.Println()
		printSection(&p.Sections[i])
	}

	fmt.Println()
	fmt.Println(overallHdrStyle.Render("Overall"))
	fmt.Printf("  progress (all tasks): %s %d%%\n", bar(p.OverallProgress()), p.OverallProgress())
	fmt.Printf("  global: %d%%  stability: %d%%  boost: %+d\n",
		p.Overall.GlobalProgress, p.Overall.StabilityIndex, p.Overall.PerformanceBoost)
	fmt.Printf("  mobile ready: %v  web: %s\n", p.Overall.MobileReady, p.Overall.WebMode)
	return nil
}

func runProjectCreate(svc *project.Service, name, templateName string) error {
	if svc.Exists(name) {
		return trkerr.Validation("project " + name + " already exists")
	}

	p, err := svc.Create(name, templateName)
	if err != nil {
		return err
	}
	if err := svc.Save(name, p); err != nil {
		return err
	}

	if templateName != "" {
		fmt.Printf("Created project %q from template %q.\n", name, templateName)
	} else {
		fmt.Printf("Created project %q.\n", name)
	}
	return nil
}

func runProjectDelete(svc *project.Service, name string) error {
	if err := svc.Delete(name); err != nil {
		return err
	}
	fmt.Printf("Deleted project %q.\n", name)
	return nil
}

func printSection(s *models.ProjectSection) {
	fmt.Println(sectionHdrStyle.Render(s.Name) +
		projMetaStyle.Render(fmt.Sprintf("  %s %d%%", bar(s.Progress()), s.Progress())))
	for _, t := range s.Tasks {
		fmt.Printf("  %s %3d%%  %s\n", bar(t.Progress), t.Progress, t.Name)
	}
}

func bar(progress int) string {
	filled := progress / 10
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}
