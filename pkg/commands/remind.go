package commands

import (
	"context"
	"fmt"
	"os"

	"lexcal/pkg/api"
)

// HandleRemindCommand triggers reminder dispatch for a single event
func HandleRemindCommand(client *api.Client, id int) {
	if err := client.SendReminder(context.Background(), id); err != nil {
		fmt.Printf("Error sending reminder: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Reminder sent for event %d\n", id)
}
