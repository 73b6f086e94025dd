package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"tempo/internal/services"
)

// SessionsCmd browses the completed session log
type SessionsCmd struct {
	List SessionsListCmd `cmd:"list" help:"List completed focus sessions" default:"1"`
}

// SessionsListCmd lists completed focus sessions, newest first
type SessionsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Limit  int    `help:"Maximum number of sessions to show" default:"50"`
}

// sessionOutput is the json form of a completed session
type sessionOutput struct {
	Category    string `json:"category"`
	CompletedAt string `json:"completed_at"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	ID          string `json:"id"`
	Task        string `json:"task"`
}

// Run executes the list command
func (s *SessionsListCmd) Run(cli *CLI) error {
	limit := s.Limit
	if limit <= 0 {
		limit = services.DefaultSessionListLimit
	}

	sessions, err := cli.Container.SessionService.List(context.Background(), limit)
	if err != nil {
		return err
	}

	if s.Format == "json" {
		out := make([]sessionOutput, 0, len(sessions))
		for _, sess := range sessions {
			out = append(out, sessionOutput{
				Category:    string(sess.Category),
				CompletedAt: sess.CompletedAt.UTC().Format(time.RFC3339),
				Date:        sess.Date,
				Duration:    sess.Duration,
				ID:          sess.ID,
				Task:        sess.Task,
			})
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(sessions) == 0 {
		fmt.Println("No completed sessions yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Completed\tTask\tCategory\tMinutes")
	fmt.Fprintln(w, "─────────\t────\t────────\t───────")
	for _, sess := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			humanize.Time(sess.CompletedAt),
			sess.Task,
			sess.Category,
			sess.Duration)
	}
	w.Flush()

	fmt.Printf("\n%s session(s)\n", humanize.Comma(int64(len(sessions))))
	return nil
}
