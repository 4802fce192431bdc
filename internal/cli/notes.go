package cli

import (
	"fmt"
	"time"

	"github.com/habito-app/habito/internal/models"
)

type NoteAddCmd struct {
	Content string `arg:"" help:"Note text."`
	Urgent  bool   `short:"u" help:"Flag the note as urgent."`
}

func (c *NoteAddCmd) Run(ctx *Context) error {
	col, err := ctx.Collections()
	if err != nil {
		return err
	}
	n, err := col.AddNote(c.Content, c.Urgent, time.Now())
	if err != nil {
		return err
	}
	fmt.Printf("Added note (%s)\n", n.ID[:8])
	return nil
}

type NoteListCmd struct {
	Urgent bool `short:"u" help:"Only urgent notes."`
}

func (c *NoteListCmd) Run(ctx *Context) error {
	col, err := ctx.Collections()
	if err != nil {
		return err
	}
	notes := col.Notes()
	styles := ctx.Styles()
	shown := 0
	for _, n := range notes {
		if c.Urgent && !n.IsUrgent {
			continue
		}
		flag := "  "
		if n.IsUrgent {
			flag = styles.Missed.Render("! ")
		}
		fmt.Printf("%s%s  (%s)\n", flag, n.Content, n.ID[:8])
		shown++
	}
	if shown == 0 {
		fmt.Println("No notes.")
	}
	return nil
}

type NoteDeleteCmd struct {
	ID string `arg:"" help:"Note id (prefix accepted)."`
}

func (c *NoteDeleteCmd) Run(ctx *Context) error {
	col, err := ctx.Collections()
	if err != nil {
		return err
	}
	id, err := expandID(c.ID, noteIDs(col.Notes()))
	if err != nil {
		return err
	}
	if err := col.DeleteNote(id); err != nil {
		return err
	}
	fmt.Println("Deleted note.")
	return nil
}

func noteIDs(notes []models.Note) []string {
	ids := make([]string, len(notes))
	for i, n := range notes {
		ids[i] = n.ID
	}
	return ids
}
