package notify

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
)

// LogNotifier prints reminders to a logger. It backs headless deployments
// where no push channel exists.
type LogNotifier struct {
	logger *log.Logger
}

func NewLogNotifier(w io.Writer) *LogNotifier {
	if w == nil {
		w = os.Stdout
	}
	return &LogNotifier{logger: log.New(w, "[REMINDER] ", log.LstdFlags)}
}

func (n *LogNotifier) Notify(ctx context.Context, occ domain.ReminderOccurrence) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return n.logger.Output(2, fmt.Sprintf("%s %s: %s", occ.At.Format("15:04"), occ.Title, occ.Body))
}
