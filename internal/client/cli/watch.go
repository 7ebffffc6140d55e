package cli

import (
	"context"
	"time"

	"github.com/globalstreet/postrack/internal/client/sync"
	"github.com/globalstreet/postrack/internal/models"
)

// runWatch keeps draining and polling in the background until the context
// is cancelled (Ctrl-C). Each poll prints a one-line summary.
func (c *Cli) runWatch(ctx context.Context) error {
	sess, err := c.session(ctx)
	if err != nil {
		return err
	}

	c.io.Println("Watching for changes. Press Ctrl-C to stop.")

	runner := sync.NewRunner(c.syncService, c.logger, func(st *models.AppState, online bool) {
		stamp := time.Now().Format("15:04:05")
		if online {
			c.io.Printf("[%s] online, %d row(s), %d report(s)\n", stamp, st.RowCount, len(st.Reports))
		} else {
			c.io.Printf("[%s] offline, serving %d cached row(s)\n", stamp, st.RowCount)
		}
	})

	runner.Wake()
	runner.Run(ctx, sess.AccessToken)

	c.io.Println()
	c.io.Println("Watch stopped.")
	return nil
}
