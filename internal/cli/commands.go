package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/deepstack-engine/internal/app"
	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
)

func newStatusCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the program countdown, today's activity and streak",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.with(cmd, func(svc *app.Services, now time.Time) error {
				out := cmd.OutOrStdout()
				status := svc.Progress.Program(now)

				var banner string
				if status.Active {
					banner = fmt.Sprintf("Week %d of %d  %s %.0f%%",
						status.CurrentWeek, status.TotalWeeks, progressBar(status.ProgressPercent, 20), status.ProgressPercent)
				} else {
					banner = fmt.Sprintf("Program starts %s  (%d days to go)", status.StartDate, status.DaysUntilStart)
				}
				fmt.Fprintln(out, bannerStyle.Render(banner))

				current := svc.Schedule.Current(now)
				activity := current.Activity
				if activity == "" {
					activity = "nothing scheduled"
				}
				fmt.Fprintf(out, "%s %s\n", titleStyle.Render("Now:"), activity)

				week := svc.Schedule.CurrentWeekPlan(now)
				if week.Topic != "" {
					fmt.Fprintf(out, "%s %s\n", titleStyle.Render("Topic:"), week.Topic)
				}

				stats := svc.Progress.Stats(cmd.Context(), now)
				today := domain.NewActivityLog(svc.Progress.Logs(cmd.Context())).IsCompleted(domain.FormatDate(now.In(svc.Program.Location)))
				fmt.Fprintf(out, "%s %s  %s %s\n",
					titleStyle.Render("Today:"), check(today),
					titleStyle.Render("Streak:"), hotStyle.Render(fmt.Sprintf("%d days", stats.CurrentStreak)))
				return nil
			})
		},
	}
}

func newLogCmd(r *runner) *cobra.Command {
	var date string
	var undo bool

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Mark a day as completed (today by default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.with(cmd, func(svc *app.Services, now time.Time) error {
				day := date
				if day == "" {
					day = domain.FormatDate(now.In(svc.Program.Location))
				}
				entry, err := svc.Progress.SetDay(cmd.Context(), day, !undo, now)
				if err != nil {
					return err
				}
				state := doneStyle.Render("completed")
				if !entry.Completed {
					state = mutedStyle.Render("not completed")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s marked %s\n", entry.Date, state)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to log (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&undo, "undo", false, "mark the day as not completed")
	return cmd
}

func newStatsCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show streaks and completion rates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.with(cmd, func(svc *app.Services, now time.Time) error {
				s := svc.Progress.Stats(cmd.Context(), now)
				out := cmd.OutOrStdout()
				row := func(label string, value string) {
					fmt.Fprintf(out, "%-18s %s\n", mutedStyle.Render(label), value)
				}
				fmt.Fprintln(out, titleStyle.Render("Progress"))
				row("Current streak", hotStyle.Render(fmt.Sprintf("%d", s.CurrentStreak)))
				row("Longest streak", fmt.Sprintf("%d", s.LongestStreak))
				row("Completed days", fmt.Sprintf("%d / %d (%d%%)", s.CompletedDays, s.TotalDays, s.CompletionRate))
				row("Last 7 days", fmt.Sprintf("%d%%", s.WeekCompletionPercent))
				row("Last 30 days", fmt.Sprintf("%d/30 (%d%%)", s.MonthCompletionCount, s.MonthCompletionPercent))
				return nil
			})
		},
	}
}

func newAchievementsCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "List achievements and which are unlocked",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.with(cmd, func(svc *app.Services, now time.Time) error {
				list := svc.Progress.Achievements(cmd.Context(), now)
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Achievements %d/%d", domain.UnlockedCount(list), len(list))))
				for _, a := range list {
					fmt.Fprintf(out, "%s %s  %s\n", check(a.Unlocked), a.Title, mutedStyle.Render(a.Description))
				}
				return nil
			})
		},
	}
}

func newScheduleCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Show today's plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.with(cmd, func(svc *app.Services, now time.Time) error {
				printDayPlan(cmd.OutOrStdout(), svc.Schedule.Today(now))
				return nil
			})
		},
	}
}

func printDayPlan(out io.Writer, plan []domain.PlannedSlot) {
	if len(plan) == 0 {
		fmt.Fprintln(out, mutedStyle.Render("Nothing planned today."))
		return
	}
	for _, slot := range plan {
		line := fmt.Sprintf("%s  %s", slot.Time, slot.Activity)
		switch {
		case slot.Current:
			fmt.Fprintln(out, hotStyle.Render("> "+line))
		case slot.Past:
			fmt.Fprintln(out, mutedStyle.Render("  "+line))
		default:
			fmt.Fprintln(out, "  "+line)
		}
	}
}

func newNoteCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "note <date> [text...]",
		Short: "Write the note for a day; no text deletes it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.with(cmd, func(svc *app.Services, now time.Time) error {
				note, err := svc.Notes.Save(cmd.Context(), args[0], strings.Join(args[1:], " "), now)
				if err != nil {
					return err
				}
				if note.Note == "" {
					fmt.Fprintf(cmd.OutOrStdout(), "note for %s deleted\n", args[0])
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "note for %s saved\n", note.Date)
				return nil
			})
		},
	}
}

func newGoalsCmd(r *runner) *cobra.Command {
	var week int
	var toggle string

	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Show or toggle this week's goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.with(cmd, func(svc *app.Services, now time.Time) error {
				w := week
				if w == 0 {
					w = max(svc.Program.CurrentWeek(now), 1)
				}

				var goals []domain.WeeklyGoal
				var err error
				if toggle != "" {
					goals, err = svc.Goals.Toggle(cmd.Context(), w, toggle)
				} else {
					goals, err = svc.Goals.Goals(cmd.Context(), w)
				}
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s goals (%d%%)", domain.WeekLabel(w), domain.GoalsCompletion(goals))))
				for _, g := range goals {
					fmt.Fprintf(out, "%s %s. %s %s\n", check(g.Completed), g.ID, g.Title, mutedStyle.Render(g.Category))
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&week, "week", 0, "program week (defaults to the current one)")
	cmd.Flags().StringVar(&toggle, "toggle", "", "goal id to toggle")
	return cmd
}

func newArticlesCmd(r *runner) *cobra.Command {
	var asHTML bool

	cmd := &cobra.Command{
		Use:   "articles [id]",
		Short: "List the study journal or read one article",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.with(cmd, func(svc *app.Services, _ time.Time) error {
				out := cmd.OutOrStdout()
				if len(args) == 0 {
					articles := svc.Articles.List()
					fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Articles (%d)", len(articles))))
					for _, a := range articles {
						fmt.Fprintf(out, "%s  %s %s\n", a.Date, a.Title, mutedStyle.Render(a.ID+" · "+a.Category))
					}
					return nil
				}

				article, err := svc.Articles.Get(args[0])
				if err != nil {
					return err
				}
				if asHTML {
					fmt.Fprint(out, article.HTML)
					return nil
				}
				fmt.Fprintln(out, bannerStyle.Render(article.Title))
				fmt.Fprintln(out, mutedStyle.Render(article.Category+" · "+article.Date))
				fmt.Fprintln(out)
				fmt.Fprint(out, article.Markdown)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asHTML, "html", false, "print the rendered HTML instead of markdown")
	return cmd
}
