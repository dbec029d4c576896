package cli

import (
	"fmt"

	"github.com/kamanbo/techfolio/internal/client/forms"
	"github.com/kamanbo/techfolio/internal/client/models"
)

func formatLocation(location string, virtual bool) string {
	if virtual {
		if location == "" {
			return "virtual"
		}
		return location + " (virtual)"
	}
	return location
}

func printEvent(ev models.Event) {
	printlnFn(fmt.Sprintf("[%d] %s - %s, %s", ev.ID, ev.Name, ev.EventType, ev.Date))
	if loc := formatLocation(ev.Location, ev.IsVirtual); loc != "" {
		printlnFn("     " + loc)
	}
	if len(ev.TechStack) > 0 {
		printlnFn("     tech: " + forms.JoinList(ev.TechStack))
	}
	printlnFn(fmt.Sprintf("     %d attending - %s", ev.AttendeesCount, ev.RegistrationLink))
}

func printOpportunity(op models.Opportunity) {
	printlnFn(fmt.Sprintf("[%d] %s - %s (%s)", op.ID, op.Title, op.Organization, op.Type))
	printlnFn(fmt.Sprintf("     deadline %s - %s", op.Deadline, formatLocation(op.Location, op.IsVirtual)))
	if len(op.Fields) > 0 {
		printlnFn("     fields: " + forms.JoinList(op.Fields))
	}
	if op.Compensation != "" {
		printlnFn("     compensation: " + op.Compensation)
	}
	printlnFn(fmt.Sprintf("     %d likes - contact %s", op.Likes, op.ContactEmail))
}

func printProfile(u models.User) {
	printlnFn(u.Username + " <" + u.Email + ">")
	if u.FullName != "" {
		printlnFn(u.FullName)
	}
	if u.Bio != "" {
		printlnFn(u.Bio)
	}
	if len(u.Interests) > 0 {
		printlnFn("interests: " + forms.JoinList(u.Interests))
	}
	printlnFn(fmt.Sprintf("saved: %d events, %d opportunities",
		len(u.SavedEvents), len(u.SavedOpportunities)))
}
