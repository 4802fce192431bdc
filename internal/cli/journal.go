package cli

import (
	"fmt"
	"sort"
	"time"
)

type JournalWriteCmd struct {
	Content string `arg:"" help:"Entry text. Empty deletes the day's entry."`
	Date    string `help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *JournalWriteCmd) Run(ctx *Context) error {
	col, err := ctx.Collections()
	if err != nil {
		return err
	}
	dateKey, err := resolveDate(c.Date)
	if err != nil {
		return err
	}
	if err := col.WriteJournal(dateKey, c.Content, time.Now()); err != nil {
		return err
	}
	if c.Content == "" {
		fmt.Printf("Cleared journal entry for %s\n", dateKey)
	} else {
		fmt.Printf("Saved journal entry for %s\n", dateKey)
	}
	return nil
}

type JournalShowCmd struct {
	Date string `arg:"" optional:"" help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *JournalShowCmd) Run(ctx *Context) error {
	col, err := ctx.Collections()
	if err != nil {
		return err
	}
	dateKey, err := resolveDate(c.Date)
	if err != nil {
		return err
	}
	entry, ok := col.JournalFor(dateKey)
	if !ok {
		fmt.Printf("No journal entry for %s\n", dateKey)
		return nil
	}
	styles := ctx.Styles()
	fmt.Println(styles.Header.Render(entry.Date))
	fmt.Println(entry.Content)
	return nil
}

type JournalListCmd struct{}

func (c *JournalListCmd) Run(ctx *Context) error {
	col, err := ctx.Collections()
	if err != nil {
		return err
	}
	entries := col.Journal()
	if len(entries) == 0 {
		fmt.Println("No journal entries.")
		return nil
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date > entries[j].Date })
	for _, e := range entries {
		preview := e.Content
		if len(preview) > 60 {
			preview = preview[:57] + "..."
		}
		fmt.Printf("%s  %s\n", e.Date, preview)
	}
	return nil
}
