package cmd

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v2"

	"github.com/Vinillian/daily-tracker/internal/autocat"
	"github.com/Vinillian/daily-tracker/internal/diary"
	trkerr "github.com/Vinillian/daily-tracker/internal/errors"
	"github.com/Vinillian/daily-tracker/internal/models"
	"github.com/Vinillian/daily-tracker/internal/state"
	"github.com/Vinillian/daily-tracker/internal/tui"
)

func dayCmd() *cli.Command {
	return &cli.Command{
		Name:  "day",
		Usage: "Work with day documents",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List stored days, most recent first",
				Action: func(c *cli.Context) error {
					svc, err := diaryService(c)
					if err != nil {
						return err
					}
					return runDayList(svc)
				},
			},
			{
				Name:      "show",
				Usage:     "Print a day document",
				ArgsUsage: "<date>",
				Action: func(c *cli.Context) error {
					date := c.Args().First()
					if date == "" {
						return trkerr.Usage("missing date").
							WithHint("usage: daily-tracker day show <YYYY-MM-DD>")
					}
					svc, err := diaryService(c)
					if err != nil {
						return err
					}
					return runDayShow(svc, date)
				},
			},
			{
				Name:      "create",
				Usage:     "Create and store a new day",
				ArgsUsage: "<date>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "template",
						Usage: "day template to seed from",
					},
				},
				Action: func(c *cli.Context) error {
					date := c.Args().First()
					if date == "" {
						return trkerr.Usage("missing date").
							WithHint("usage: daily-tracker day create <YYYY-MM-DD>")
					}
					svc, err := diaryService(c)
					if err != nil {
						return err
					}
					return runDayCreate(svc, date, c.String("template"))
				},
			},
			{
				Name:      "copy",
				Usage:     "Copy a day's task structure to another date",
				ArgsUsage: "<source-date> <target-date>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return trkerr.Usage("expected source and target dates").
							WithHint("usage: daily-tracker day copy <source> <target>")
					}
					svc, err := diaryService(c)
					if err != nil {
						return err
					}
					return runDayCopy(svc, c.Args().Get(0), c.Args().Get(1))
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a stored day",
				ArgsUsage: "<date>",
				Action: func(c *cli.Context) error {
					date := c.Args().First()
					if date == "" {
						return trkerr.Usage("missing date").
							WithHint("usage: daily-tracker day delete <YYYY-MM-DD>")
					}
					svc, err := diaryService(c)
					if err != nil {
						return err
					}
					return runDayDelete(svc, date)
				},
			},
			{
				Name:      "add",
				Usage:     "Add a task to a day",
				ArgsUsage: "<date> <task-name>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "period",
						Value: string(models.PeriodMorning),
						Usage: "day period (Утро, День, Вечер)",
					},
					&cli.StringFlag{
						Name:  "time",
						Usage: "time range, e.g. 07:00–08:00",
					},
					&cli.StringFlag{
						Name:  "category",
						Usage: "task category (auto-suggested when omitted)",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() < 2 {
						return trkerr.Usage("expected date and task name").
							WithHint("usage: daily-tracker day add <date> <task-name>")
					}
					svc, err := diaryService(c)
					if err != nil {
						return err
					}
					return runDayAdd(svc, c.Args().Get(0), c.Args().Get(1),
						c.String("period"), c.String("time"), c.String("category"))
				},
			},
			{
				Name:      "state",
				Usage:     "Record a wellbeing state value for a day",
				ArgsUsage: "<date> <category> <value>",
				Action: func(c *cli.Context) error {
					if c.NArg() < 3 {
						return trkerr.Usage("expected date, category and value").
							WithHint("usage: daily-tracker day state <date> <category> <value>")
					}
					svc, err := diaryService(c)
					if err != nil {
						return err
					}
					states, err := stateService(c)
					if err != nil {
						return err
					}
					return runDayState(svc, states,
						c.Args().Get(0), c.Args().Get(1), c.Args().Get(2))
				},
			},
			{
				Name:      "note",
				Usage:     "Append a note to a day",
				ArgsUsage: "<date> <text>",
				Action: func(c *cli.Context) error {
					if c.NArg() < 2 {
						return trkerr.Usage("expected date and note text").
							WithHint("usage: daily-tracker day note <date> <text>")
					}
					svc, err := diaryService(c)
					if err != nil {
						return err
					}
					return runDayNote(svc, c.Args().Get(0), c.Args().Get(1))
				},
			},
			{
				Name:      "template",
				Usage:     "Save a day verbatim as a reusable template",
				ArgsUsage: "<date> <template-name>",
				Action: func(c *cli.Context) error {
					if c.NArg() < 2 {
						return trkerr.Usage("expected date and template name").
							WithHint("usage: daily-tracker day template <date> <name>")
					}
					svc, err := diaryService(c)
					if err != nil {
						return err
					}
					return runDayTemplate(svc, c.Args().Get(0), c.Args().Get(1))
				},
			},
			{
				Name:      "edit",
				Usage:     "Edit a day interactively",
				ArgsUsage: "<date>",
				Action: func(c *cli.Context) error {
					date := c.Args().First()
					if date == "" {
						return trkerr.Usage("missing date").
							WithHint("usage: daily-tracker day edit <YYYY-MM-DD>")
					}
					svc, err := diaryService(c)
					if err != nil {
						return err
					}
					return runDayEdit(svc, date)
				},
			},
		},
	}
}

func runDayList(svc *diary.Service) error {
	days, err := svc.List()
	if err != nil {
		return err
	}
	if len(days) == 0 {
		fmt.Println("No days yet. Create one with `day create <YYYY-MM-DD>`.")
		return nil
	}
	for _, d := range days {
		fmt.Println(d)
	}
	return nil
}

var (
	dayTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	periodHdrStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func runDayShow(svc *diary.Service, dateKey string) error {
	day, err := svc.Load(dateKey)
	if err != nil {
		return err
	}

	fmt.Println(dayTitleStyle.Render("📅 " + dateKey))
	for _, p := range models.Periods() {
		tasks := day.Tasks(p)
		fmt.Println()
		fmt.Println(periodHdrStyle.Render(fmt.Sprintf("%s %s", p.Icon(), p)))
		if len(tasks) == 0 {
			fmt.Println(dimStyle.Render("  (no tasks)"))
			continue
		}
		for _, t := range tasks {
			line := fmt.Sprintf("  %s %s", t.Status.Icon(), t.Name)
			if t.Time != "" {
				line += dimStyle.Render("  " + t.Time)
			}
			line += dimStyle.Render(fmt.Sprintf("  %s  %d%%", t.Category, t.Progress))
			fmt.Println(line)
		}
	}

	if len(day.State.Values) > 0 {
		fmt.Println()
		fmt.Println(periodHdrStyle.Render("📊 Состояние"))
		for _, v := range day.State.Values {
			fmt.Printf("  %s: %s\n", v.Category,
				state.FormatValue(models.ParseValueType(v.ValueType), v.Value))
		}
	}

	if len(day.Notes) > 0 {
		fmt.Println()
		fmt.Println(periodHdrStyle.Render("📝 Заметки"))
		for _, n := range models.NotesFromStrings(day.Notes) {
			fmt.Println("  • " + n.Text)
		}
	}

	if progress := day.CategoryProgress(); len(progress) > 0 {
		cats := make([]string, 0, len(progress))
		for cat := range progress {
			cats = append(cats, cat)
		}
		sort.Strings(cats)

		fmt.Println()
		fmt.Println(periodHdrStyle.Render("📈 Прогресс по категориям"))
		for _, cat := range cats {
			fmt.Printf("  %s: %d%%\n", cat, progress[cat])
		}
	}
	return nil
}

func runDayCreate(svc *diary.Service, dateKey, templateName string) error {
	if svc.Exists(dateKey) {
		return trkerr.Validation("day " + dateKey + " already exists").
			WithHint("use `day edit " + dateKey + "` to change it")
	}

	day, err := svc.Create(dateKey, templateName)
	if err != nil {
		return err
	}
	if err := svc.Save(dateKey, day); err != nil {
		return err
	}

	if templateName != "" {
		fmt.Printf("Created %s from template %q.\n", dateKey, templateName)
	} else {
		fmt.Printf("Created empty day %s.\n", dateKey)
	}
	return nil
}

func runDayCopy(svc *diary.Service, source, target string) error {
	if err := svc.Copy(source, target); err != nil {
		return err
	}
	fmt.Printf("Copied %s to %s (progress and state reset).\n", source, target)
	return nil
}

func runDayAdd(svc *diary.Service, dateKey, name, period, timeRange, category string) error {
	p, ok := models.ParsePeriod(period)
	if !ok {
		return trkerr.Usage("unknown period " + period).
			WithHint("periods are Утро, День and Вечер")
	}

	var day *models.Day
	if svc.Exists(dateKey) {
		loaded, err := svc.Load(dateKey)
		if err != nil {
			return err
		}
		day = loaded
	} else {
		created, err := svc.Create(dateKey, "")
		if err != nil {
			return err
		}
		day = created
	}

	task, err := models.NewTask(name, timeRange)
	if err != nil {
		return err
	}
	if category != "" {
		task.Category = category
	} else {
		task.Category = autocat.Categorize(task.Name)
	}

	day.AddTask(p, task)
	if err := svc.Save(dateKey, day); err != nil {
		return err
	}
	fmt.Printf("Added %q to %s of %s [%s].\n", task.Name, p, dateKey, task.Category)
	return nil
}

func runDayDelete(svc *diary.Service, dateKey string) error {
	if err := svc.Delete(dateKey); err != nil {
		return err
	}
	fmt.Printf("Deleted %s.\n", dateKey)
	return nil
}

func runDayState(svc *diary.Service, states *state.Service, dateKey, category, value string) error {
	categories, err := states.LoadCategories()
	if err != nil {
		return err
	}
	var cat *models.StateCategory
	for i := range categories {
		if categories[i].Name == category {
			cat = &categories[i]
			break
		}
	}
	if cat == nil {
		return trkerr.NotFound("state category " + category + " not found").
			WithHint("see `daily-tracker state list` for the configured categories")
	}

	var day *models.Day
	if svc.Exists(dateKey) {
		loaded, err := svc.Load(dateKey)
		if err != nil {
			return err
		}
		day = loaded
	} else {
		created, err := svc.Create(dateKey, "")
		if err != nil {
			return err
		}
		day = created
	}

	day.State.Set(cat.Name, value, cat.Type)
	if err := svc.Save(dateKey, day); err != nil {
		return err
	}
	fmt.Printf("Recorded %s %s = %s for %s.\n",
		cat.Emoji, cat.Name, state.FormatValue(cat.Type, value), dateKey)
	return nil
}

func runDayTemplate(svc *diary.Service, dateKey, name string) error {
	if err := svc.SaveTemplate(dateKey, name); err != nil {
		return err
	}
	fmt.Printf("Saved %s as template %q.\n", dateKey, name)
	return nil
}

func runDayNote(svc *diary.Service, dateKey, text string) error {
	var day *models.Day
	if svc.Exists(dateKey) {
		loaded, err := svc.Load(dateKey)
		if err != nil {
			return err
		}
		day = loaded
	} else {
		created, err := svc.Create(dateKey, "")
		if err != nil {
			return err
		}
		day = created
	}

	note := models.NewNote(strings.TrimSpace(text))
	if note.Text == "" {
		return trkerr.Validation("note text cannot be empty")
	}
	day.Notes = models.NotesToStrings(append(models.NotesFromStrings(day.Notes), note))
	if err := svc.Save(dateKey, day); err != nil {
		return err
	}
	fmt.Printf("Noted at %s: %s\n", note.Time, note.Text)
	return nil
}

func runDayEdit(svc *diary.Service, dateKey string) error {
	day, err := svc.Load(dateKey)
	if err != nil {
		return err
	}

	m := tui.New(dateKey, day, func(d *models.Day) error {
		return svc.Save(dateKey, d)
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return trkerr.WrapIO("running day editor", err)
	}
	return nil
}
